package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reelcli/reel/internal/models"
)

// Movies lists the full catalog.
//
// GET /movies
func (c *Client) Movies(ctx context.Context, token string) ([]models.Movie, error) {
	var movies []models.Movie
	if err := c.do(ctx, http.MethodGet, "/movies", token, nil, nil, &movies, "Failed to fetch movies"); err != nil {
		return nil, err
	}
	return movies, nil
}

// Movie retrieves a single movie by id.
//
// GET /movies/{id}
func (c *Client) Movie(ctx context.Context, movieID int64, token string) (*models.Movie, error) {
	var movie models.Movie
	path := fmt.Sprintf("/movies/%d", movieID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &movie, "Failed to fetch movie"); err != nil {
		return nil, err
	}
	return &movie, nil
}

// CreateMovie adds a movie to the catalog. Admin only.
//
// POST /movies/create
func (c *Client) CreateMovie(ctx context.Context, movie models.Movie, token string) (*models.Movie, error) {
	var created models.Movie
	err := c.do(ctx, http.MethodPost, "/movies/create", token, nil, movie, &created, "Failed to create movie")
	if err != nil {
		return nil, withConflictText(err, "Failed to create movie", "A movie with this title already exists")
	}
	return &created, nil
}

// UpdateMovie modifies an existing catalog entry. Admin only.
//
// PUT /movies/update/{id}
func (c *Client) UpdateMovie(ctx context.Context, movieID int64, movie models.Movie, token string) (*models.Movie, error) {
	var updated models.Movie
	path := fmt.Sprintf("/movies/update/%d", movieID)
	if err := c.do(ctx, http.MethodPut, path, token, nil, movie, &updated, "Failed to update movie"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMovie removes a movie from the catalog. Admin only.
//
// DELETE /movies/delete/{id}
func (c *Client) DeleteMovie(ctx context.Context, movieID int64, token string) error {
	path := fmt.Sprintf("/movies/delete/%d", movieID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil, "Failed to delete movie")
}
