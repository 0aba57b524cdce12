package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/reelcli/reel/internal/session"
)

// AuthResult is the identity issued by a successful login.
type AuthResult struct {
	Token  string
	UserID string
	Role   session.Role
}

// RegisterRequest carries the registration payload. The backend assigns the
// "user" role to every new account.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Gender          int    `json:"user_gender"`
	OccupationLabel int    `json:"user_occupation_label"`
	Age             int    `json:"raw_user_age"`
}

// authResponse is the wire shape of login and current-user responses.
// user_id arrives as a number or string depending on backend version.
type authResponse struct {
	AccessToken string      `json:"access_token"`
	UserID      json.Number `json:"user_id"`
	Role        string      `json:"role"`
}

// Login exchanges credentials for a bearer token.
//
// POST /auth/login
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &resp, "Login failed"); err != nil {
		return nil, err
	}

	role, err := session.ParseRole(resp.Role)
	if err != nil {
		return nil, &RequestError{Message: "Login failed", Err: err}
	}

	return &AuthResult{
		Token:  session.SanitizeToken(resp.AccessToken),
		UserID: resp.UserID.String(),
		Role:   role,
	}, nil
}

// Register creates a new account. The caller logs in separately afterwards.
//
// POST /auth/register
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", nil, req, nil, "Registration failed")
}

// Logout invalidates the token server-side. Callers clear the local session
// regardless of the outcome.
//
// POST /auth/logout
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, struct{}{}, nil, "Logout failed")
}

// CurrentUser revalidates a bearer token, returning the authoritative user
// id and role. Implements [session.Revalidator].
//
// GET /auth/current-user
func (c *Client) CurrentUser(ctx context.Context, token string) (string, session.Role, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodGet, "/auth/current-user", token, nil, nil, &resp, "Session validation failed"); err != nil {
		return "", "", err
	}

	role, err := session.ParseRole(resp.Role)
	if err != nil {
		return "", "", &RequestError{Message: "Session validation failed", Err: err}
	}

	return resp.UserID.String(), role, nil
}
