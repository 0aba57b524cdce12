package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRatingsUnwrap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ratings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"rated_movies": [{"id": 1, "movie_id": 42, "movie_title": "Heat", "rating": 4.5}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	ratings, err := client.Ratings(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Ratings failed: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("got %d ratings", len(ratings))
	}
	if ratings[0].Title != "Heat" || ratings[0].Rating != 4.5 {
		t.Errorf("rating = %+v", ratings[0])
	}
}

func TestCreateRating(t *testing.T) {
	t.Run("sends user, movie, and value", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ratings" || r.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		if err := client.CreateRating(context.Background(), "7", 42, 4.5, "tok"); err != nil {
			t.Fatalf("CreateRating failed: %v", err)
		}
		if gotBody["user_id"] != "7" || gotBody["movie_id"] != float64(42) || gotBody["rating"] != 4.5 {
			t.Errorf("request body = %v", gotBody)
		}
	})

	t.Run("duplicate rating gets conflict text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)
		err := client.CreateRating(context.Background(), "7", 42, 4.5, "tok")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "You have already rated this movie" {
			t.Errorf("error message = %q", err.Error())
		}
	})
}

func TestTopRankedMoviesUnwrap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ranking" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "7" {
			t.Errorf("user_id query = %q", got)
		}
		w.Write([]byte(`{"top_ranked_movies": [{"id": 42, "movie_title": "Heat", "rating": 4.2}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	movies, err := client.TopRankedMovies(context.Background(), "7", "tok")
	if err != nil {
		t.Fatalf("TopRankedMovies failed: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Heat" {
		t.Errorf("movies = %+v", movies)
	}
}
