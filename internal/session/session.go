package session

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles issued by the backend.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts a backend role string into a [Role].
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// Valid reports whether the role is a member of the closed enumeration.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// CanEditContent reports whether the role may create, update, or delete
// catalog content (movies and actors).
func (r Role) CanEditContent() bool {
	return r == RoleAdmin
}

// Session holds the authenticated identity of the current user.
type Session struct {
	Token  string
	UserID string
	Role   Role
}

// Authenticated reports whether the full triple is present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != "" && s.Role != ""
}

// SanitizeToken strips quote characters and surrounding whitespace from a
// bearer token. Backends and copy-paste both occasionally wrap tokens in
// quotes; sanitization is idempotent.
func SanitizeToken(raw string) string {
	cleaned := strings.NewReplacer(`"`, "", "'", "").Replace(raw)
	return strings.TrimSpace(cleaned)
}
