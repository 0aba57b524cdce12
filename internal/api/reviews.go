package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reelcli/reel/internal/models"
)

// MovieReviews lists all reviews for a movie.
//
// GET /reviews/movie/{movieId} — the payload is wrapped in "reviews".
func (c *Client) MovieReviews(ctx context.Context, movieID int64, token string) ([]models.Review, error) {
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}

	path := fmt.Sprintf("/reviews/movie/%d", movieID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &resp, "Failed to fetch reviews"); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// CreateReview posts a review for a movie.
//
// POST /reviews/create
func (c *Client) CreateReview(ctx context.Context, movieID int64, content, token string) (*models.Review, error) {
	body := struct {
		MovieID int64  `json:"movie_id"`
		Content string `json:"content"`
	}{movieID, content}

	var created models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews/create", token, nil, body, &created, "Failed to create review"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReview replaces a review's content.
//
// PUT /reviews/update/{id}
func (c *Client) UpdateReview(ctx context.Context, reviewID int64, content, token string) (*models.Review, error) {
	body := struct {
		Content string `json:"content"`
	}{content}

	var updated models.Review
	path := fmt.Sprintf("/reviews/update/%d", reviewID)
	if err := c.do(ctx, http.MethodPut, path, token, nil, body, &updated, "Failed to update review"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReview removes a review.
//
// DELETE /reviews/delete/{id}
func (c *Client) DeleteReview(ctx context.Context, reviewID int64, token string) error {
	path := fmt.Sprintf("/reviews/delete/%d", reviewID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil, "Failed to delete review")
}
