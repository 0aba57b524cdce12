package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reelcli/reel/internal/models"
)

// CreateRating rates a movie on behalf of a user.
//
// POST /ratings
func (c *Client) CreateRating(ctx context.Context, userID string, movieID int64, rating float64, token string) error {
	body := struct {
		UserID  string  `json:"user_id"`
		MovieID int64   `json:"movie_id"`
		Rating  float64 `json:"rating"`
	}{userID, movieID, rating}

	err := c.do(ctx, http.MethodPost, "/ratings", token, nil, body, nil, "Failed to create rating")
	return withConflictText(err, "Failed to create rating", "You have already rated this movie")
}

// Ratings lists the authenticated user's rated movies.
//
// GET /ratings — the payload is wrapped in "rated_movies".
func (c *Client) Ratings(ctx context.Context, token string) ([]models.RatedMovie, error) {
	var resp struct {
		RatedMovies []models.RatedMovie `json:"rated_movies"`
	}

	if err := c.do(ctx, http.MethodGet, "/ratings", token, nil, nil, &resp, "Failed to fetch user ratings"); err != nil {
		return nil, err
	}
	return resp.RatedMovies, nil
}

// UpdateRating changes the value of an existing rating.
//
// PUT /ratings/{id}
func (c *Client) UpdateRating(ctx context.Context, ratingID int64, rating float64, token string) error {
	body := struct {
		Rating float64 `json:"rating"`
	}{rating}

	path := fmt.Sprintf("/ratings/%d", ratingID)
	return c.do(ctx, http.MethodPut, path, token, nil, body, nil, "Failed to update rating")
}

// DeleteRating removes a rating.
//
// DELETE /ratings/{id}
func (c *Client) DeleteRating(ctx context.Context, ratingID int64, token string) error {
	path := fmt.Sprintf("/ratings/%d", ratingID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil, "Failed to delete rating")
}
