package session

import (
	"context"

	"github.com/charmbracelet/log"
)

// Revalidator checks a bearer token against the backend's current-user
// endpoint, returning the authoritative user id and role.
//
// Implemented by the API client; abstracted here so bootstrap can be tested
// without a live backend.
type Revalidator interface {
	CurrentUser(ctx context.Context, token string) (userID string, role Role, err error)
}

// Bootstrap restores a persisted session and revalidates it against the backend.
//
// The returned session is nil when no session is stored or revalidation
// fails; in the failure case the store is cleared so subsequent restores see
// nothing. Revalidation refreshes the user id and role from the backend
// without changing the token, and persists the refreshed triple.
//
// Failure here is never fatal: commands treat a nil session as "please log
// in" and carry on.
func Bootstrap(ctx context.Context, store Store, rv Revalidator, logger *log.Logger) *Session {
	s, err := store.Restore()
	if err != nil {
		logger.Warn("failed to restore session", "error", err)
		return nil
	}
	if s == nil {
		return nil
	}

	userID, role, err := rv.CurrentUser(ctx, s.Token)
	if err != nil {
		logger.Debug("session revalidation failed, clearing session", "error", err)
		if clearErr := store.Clear(); clearErr != nil {
			logger.Warn("failed to clear stale session", "error", clearErr)
		}
		return nil
	}

	refreshed := Session{Token: s.Token, UserID: userID, Role: role}
	if err := store.Set(refreshed); err != nil {
		logger.Warn("failed to persist refreshed session", "error", err)
	}

	return &refreshed
}
