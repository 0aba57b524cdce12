package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientErrorEnvelope(t *testing.T) {
	t.Run("backend error text wins over fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "Movie not found"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.Movie(context.Background(), 42, "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Movie not found" {
			t.Errorf("error message = %q, want backend text", err.Error())
		}
	})

	t.Run("fallback used when body has no error field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.Movies(context.Background(), "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Failed to fetch movies" {
			t.Errorf("error message = %q, want fallback", err.Error())
		}
	})

	t.Run("fallback used when body is not JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.Movies(context.Background(), "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Failed to fetch movies" {
			t.Errorf("error message = %q, want fallback", err.Error())
		}
	})

	t.Run("transport failure carries fallback and wrapped cause", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", nil)
		_, err := client.Movies(context.Background(), "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Failed to fetch movies" {
			t.Errorf("error message = %q, want fallback", err.Error())
		}

		var reqErr *RequestError
		if !errors.As(err, &reqErr) {
			t.Fatal("expected *RequestError")
		}
		if reqErr.StatusCode != 0 {
			t.Errorf("transport failure should have zero status, got %d", reqErr.StatusCode)
		}
		if reqErr.Unwrap() == nil {
			t.Error("transport failure should wrap the underlying error")
		}
	})
}

func TestClientAuthHeaders(t *testing.T) {
	t.Run("token sent as bearer header", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		if _, err := client.Movies(context.Background(), "tok-123"); err != nil {
			t.Fatalf("Movies failed: %v", err)
		}
		if gotAuth != "Bearer tok-123" {
			t.Errorf("Authorization = %q", gotAuth)
		}
	})

	t.Run("no header without token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		if _, err := client.PublicWatchlists(context.Background()); err != nil {
			t.Fatalf("PublicWatchlists failed: %v", err)
		}
		if gotAuth != "" {
			t.Errorf("unexpected Authorization header %q", gotAuth)
		}
	})
}

func TestIsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Token has expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Movies(context.Background(), "stale")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnauthorized(err) {
		t.Error("expected IsUnauthorized to report true")
	}
	if IsConflict(err) {
		t.Error("401 should not be a conflict")
	}
	if err.Error() != "Token has expired" {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestClientRateLimit(t *testing.T) {
	client := NewClient("", nil)

	client.Limit(10)
	if client.limiter == nil {
		t.Error("expected limiter after Limit(10)")
	}

	client.Limit(0)
	if client.limiter != nil {
		t.Error("Limit(0) should remove pacing")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", nil)
	if client.BaseURL() != defaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL(), defaultBaseURL)
	}
}
