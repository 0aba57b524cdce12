package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelcli/reel/internal/session"
)

func TestLogin(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"access_token": "tok", "user_id": 7, "role": "admin"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		result, err := client.Login(context.Background(), "a@b.com", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		if gotBody["email"] != "a@b.com" || gotBody["password"] != "hunter2" {
			t.Errorf("request body = %v", gotBody)
		}
		if result.Token != "tok" {
			t.Errorf("token = %q", result.Token)
		}
		if result.UserID != "7" {
			t.Errorf("user id = %q, want numeric id as string", result.UserID)
		}
		if result.Role != session.RoleAdmin {
			t.Errorf("role = %q", result.Role)
		}
	})

	t.Run("string user_id tolerated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token": "tok", "user_id": "7", "role": "user"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		result, err := client.Login(context.Background(), "a@b.com", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if result.UserID != "7" {
			t.Errorf("user id = %q", result.UserID)
		}
	})

	t.Run("quoted token sanitized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token": "\"tok\" ", "user_id": 7, "role": "user"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		result, err := client.Login(context.Background(), "a@b.com", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if result.Token != "tok" {
			t.Errorf("token not sanitized: %q", result.Token)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Invalid email or password"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.Login(context.Background(), "a@b.com", "wrong")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Invalid email or password" {
			t.Errorf("error message = %q", err.Error())
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token": "tok", "user_id": 7, "role": "root"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.Login(context.Background(), "a@b.com", "hunter2")
		if err == nil {
			t.Fatal("expected error for unknown role")
		}
		if err.Error() != "Login failed" {
			t.Errorf("error message = %q", err.Error())
		}
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/current-user" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer tok" {
				t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
			}
			w.Write([]byte(`{"user_id": 7, "role": "user"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		userID, role, err := client.CurrentUser(context.Background(), "tok")
		if err != nil {
			t.Fatalf("CurrentUser failed: %v", err)
		}
		if userID != "7" || role != session.RoleUser {
			t.Errorf("identity = (%q, %q)", userID, role)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Token has expired"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, _, err := client.CurrentUser(context.Background(), "stale")
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsUnauthorized(err) {
			t.Error("expected unauthorized error")
		}
	})
}

func TestRegister(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "hunter2",
		Age:      34,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if gotBody["email"] != "a@b.com" {
		t.Errorf("request body = %v", gotBody)
	}
	if gotBody["raw_user_age"] != float64(34) {
		t.Errorf("age field = %v", gotBody["raw_user_age"])
	}
}

func TestLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/logout" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	if err := client.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
}
