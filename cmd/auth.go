package main

import (
	"context"
	"fmt"

	"github.com/reelcli/reel/internal/api"
	"github.com/reelcli/reel/internal/session"
	"github.com/reelcli/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin exchanges credentials for a bearer token and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	if email == "" || password == "" {
		return fmt.Errorf("%w: --email and --password are required", shared.ErrMissingArgument)
	}

	r.logger.Info("logging in", "email", email)

	result, err := r.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	sess := session.Session{
		Token:  result.Token,
		UserID: result.UserID,
		Role:   result.Role,
	}

	if err := r.store.Set(sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	r.sess = &sess

	r.logger.Info("login successful", "user_id", sess.UserID, "role", sess.Role)
	return r.writePlain("✓ Logged in as user %s (%s)\n", sess.UserID, sess.Role)
}

// AuthRegister creates a new account. The backend does not issue a token on
// registration, so the user logs in afterwards.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	req := api.RegisterRequest{
		Email:           cmd.String("email"),
		Password:        cmd.String("password"),
		Gender:          int(cmd.Int("gender")),
		OccupationLabel: int(cmd.Int("occupation")),
		Age:             int(cmd.Int("age")),
	}

	if req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: --email and --password are required", shared.ErrMissingArgument)
	}

	r.logger.Info("registering account", "email", req.Email)

	if err := r.client.Register(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	r.writePlain("✓ Account created\n")
	return r.writePlain("Run 'reel auth login --email %s' to sign in.\n", req.Email)
}

// AuthLogout ends the backend session and clears the stored triple. The local
// session is cleared even when the backend call fails.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	sess := r.loadSession(ctx)
	if sess == nil {
		return r.writePlain("Not logged in.\n")
	}

	if err := r.client.Logout(ctx, sess.Token); err != nil {
		r.logger.Warn("logout request failed", "error", err)
	}

	if err := r.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	r.sess = nil

	return r.writePlain("✓ Logged out\n")
}

// AuthWhoami revalidates the stored token and prints the current identity.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]string{
			"user_id": sess.UserID,
			"role":    sess.Role.String(),
		}, cmd.Bool("pretty"))
	}

	r.writePlain("User ID: %s\n", sess.UserID)
	r.writePlain("Role: %s\n", sess.Role)
	if sess.Role.CanEditContent() {
		r.writePlain("Permissions: catalog editing enabled\n")
	}
	return nil
}

// AuthStatus reports the local session state without requiring one.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	sess := r.loadSession(ctx)

	if sess == nil || !sess.Authenticated() {
		r.writePlain("Authentication: ✗ Not logged in\n")
		return r.writePlain("Backend: %s\n", r.client.BaseURL())
	}

	r.writePlain("Authentication: ✓ Logged in\n")
	r.writePlain("User ID: %s\n", sess.UserID)
	r.writePlain("Role: %s\n", sess.Role)
	return r.writePlain("Backend: %s\n", r.client.BaseURL())
}
