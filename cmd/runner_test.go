package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/reelcli/reel/internal/api"
	"github.com/reelcli/reel/internal/session"
	"github.com/reelcli/reel/internal/shared"
	tu "github.com/reelcli/reel/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			client := api.NewClient("http://example.test", nil)
			store := &tu.MemoryStore{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Client: client,
				Store:  store,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.client != client {
				t.Error("expected client to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil client builds one from config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Client: nil})

			if runner.client == nil {
				t.Error("expected a default client")
			}
		})

		t.Run("with nil engine builds one from client", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Engine: nil})

			if runner.engine == nil {
				t.Error("expected a default engine")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			data := map[string]string{"key": "value"}
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlainln", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlainln("line %d", 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.String() != "\nline 1\n" {
			t.Errorf("expected padded line, got %q", output.String())
		}
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})
}

// currentUserServer serves the current-user endpoint with a fixed identity.
func currentUserServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/current-user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRequireSession(t *testing.T) {
	t.Run("no stored session", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Store: &tu.MemoryStore{}})

		_, err := runner.requireSession(context.Background())
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if err == nil || !strings.Contains(err.Error(), "reel auth login") {
			t.Errorf("expected login hint, got %v", err)
		}
	})

	t.Run("valid session revalidated and cached", func(t *testing.T) {
		server := currentUserServer(t, http.StatusOK, `{"user_id": 7, "role": "admin"}`)

		store := &tu.MemoryStore{Session: &session.Session{
			Token:  "tok123",
			UserID: "7",
			Role:   session.RoleUser,
		}}
		runner := NewRunner(RunnerOpts{
			Client: api.NewClient(server.URL, server.Client()),
			Store:  store,
		})

		sess, err := runner.requireSession(context.Background())
		if err != nil {
			t.Fatalf("requireSession failed: %v", err)
		}
		if sess.Role != session.RoleAdmin {
			t.Errorf("expected revalidation to refresh role, got %s", sess.Role)
		}
		if sess.Token != "tok123" {
			t.Errorf("token should survive revalidation, got %s", sess.Token)
		}

		// The restored session is cached for the rest of the invocation.
		again, err := runner.requireSession(context.Background())
		if err != nil {
			t.Fatalf("second requireSession failed: %v", err)
		}
		if again != sess {
			t.Error("expected the cached session")
		}
	})

	t.Run("rejected token clears the store", func(t *testing.T) {
		server := currentUserServer(t, http.StatusUnauthorized, `{"message": "Token has expired"}`)

		store := &tu.MemoryStore{Session: &session.Session{
			Token:  "stale",
			UserID: "7",
			Role:   session.RoleUser,
		}}
		runner := NewRunner(RunnerOpts{
			Client: api.NewClient(server.URL, server.Client()),
			Store:  store,
		})

		if _, err := runner.requireSession(context.Background()); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if store.Session != nil {
			t.Error("expected stale session to be cleared")
		}
	})
}

func TestAPIErr(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		if err := runner.apiErr(nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-401 unchanged", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Store: &tu.MemoryStore{}})
		original := &api.RequestError{StatusCode: http.StatusConflict, Message: "Already exists"}

		err := runner.apiErr(original)
		if !errors.Is(err, original) {
			t.Errorf("expected original error, got %v", err)
		}
		if errors.Is(err, shared.ErrSessionExpired) {
			t.Error("conflict should not expire the session")
		}
	})

	t.Run("401 expires and clears the session", func(t *testing.T) {
		store := &tu.MemoryStore{Session: &session.Session{
			Token:  "tok123",
			UserID: "7",
			Role:   session.RoleUser,
		}}
		runner := NewRunner(RunnerOpts{Store: store})
		runner.sess = store.Session

		err := runner.apiErr(&api.RequestError{StatusCode: http.StatusUnauthorized, Message: "Token has expired"})
		if !errors.Is(err, shared.ErrSessionExpired) {
			t.Errorf("expected ErrSessionExpired, got %v", err)
		}
		if store.Session != nil {
			t.Error("expected stored session to be cleared")
		}
		if runner.sess != nil {
			t.Error("expected cached session to be dropped")
		}
	})
}
