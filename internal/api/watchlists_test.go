package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelcli/reel/internal/models"
)

func TestCreateWatchlistConflict(t *testing.T) {
	t.Run("bare 409 gets operation-specific text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.CreateWatchlist(context.Background(), models.Watchlist{Title: "Favorites"}, "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsConflict(err) {
			t.Error("expected conflict error")
		}
		if err.Error() != "A watchlist with this title already exists" {
			t.Errorf("error message = %q", err.Error())
		}
	})

	t.Run("backend conflict text preserved", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error": "Watchlist limit reached"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.CreateWatchlist(context.Background(), models.Watchlist{Title: "Favorites"}, "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Watchlist limit reached" {
			t.Errorf("error message = %q", err.Error())
		}
	})

	t.Run("non-conflict errors untouched", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		_, err := client.CreateWatchlist(context.Background(), models.Watchlist{Title: "Favorites"}, "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "Failed to create watchlist" {
			t.Errorf("error message = %q", err.Error())
		}
	})
}

func TestAddMovieToWatchlistConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/watchlists/update/3" || r.Method != http.MethodPut {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.AddMovieToWatchlist(context.Background(), 3, "7", 42, "tok")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Movie is already in this watchlist" {
		t.Errorf("error message = %q", err.Error())
	}
}

func TestWatchlistsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("user_id"); got != "7" {
			t.Errorf("user_id query = %q", got)
		}
		w.Write([]byte(`[{"id": 1, "title": "Favorites", "movies": [{"id": 42, "movie_title": "Heat"}]}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	watchlists, err := client.Watchlists(context.Background(), "7", "tok")
	if err != nil {
		t.Fatalf("Watchlists failed: %v", err)
	}
	if len(watchlists) != 1 || watchlists[0].Title != "Favorites" {
		t.Errorf("watchlists = %+v", watchlists)
	}
	if len(watchlists[0].Movies) != 1 || watchlists[0].Movies[0].Title != "Heat" {
		t.Errorf("movies = %+v", watchlists[0].Movies)
	}
}
