package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/reelcli/reel/internal/models"
)

// Watchlists lists a user's watchlists.
//
// GET /watchlists?user_id=
func (c *Client) Watchlists(ctx context.Context, userID, token string) ([]models.Watchlist, error) {
	query := url.Values{"user_id": {userID}}

	var watchlists []models.Watchlist
	if err := c.do(ctx, http.MethodGet, "/watchlists", token, query, nil, &watchlists, "Failed to fetch watchlists"); err != nil {
		return nil, err
	}
	return watchlists, nil
}

// Watchlist retrieves a single watchlist with its movies.
//
// GET /watchlists/{id}?user_id=
func (c *Client) Watchlist(ctx context.Context, watchlistID int64, userID, token string) (*models.Watchlist, error) {
	query := url.Values{"user_id": {userID}}
	path := fmt.Sprintf("/watchlists/%d", watchlistID)

	var watchlist models.Watchlist
	if err := c.do(ctx, http.MethodGet, path, token, query, nil, &watchlist, "Failed to fetch watchlist"); err != nil {
		return nil, err
	}
	return &watchlist, nil
}

// CreateWatchlist creates a new watchlist. Titles are unique per user; the
// backend signals duplicates with 409.
//
// POST /watchlists/create
func (c *Client) CreateWatchlist(ctx context.Context, watchlist models.Watchlist, token string) (*models.Watchlist, error) {
	var created models.Watchlist
	err := c.do(ctx, http.MethodPost, "/watchlists/create", token, nil, watchlist, &created, "Failed to create watchlist")
	if err != nil {
		return nil, withConflictText(err, "Failed to create watchlist", "A watchlist with this title already exists")
	}
	return &created, nil
}

// UpdateWatchlist modifies a watchlist's title or visibility.
//
// PUT /watchlists/update/{id}
func (c *Client) UpdateWatchlist(ctx context.Context, watchlistID int64, watchlist models.Watchlist, token string) (*models.Watchlist, error) {
	var updated models.Watchlist
	path := fmt.Sprintf("/watchlists/update/%d", watchlistID)
	err := c.do(ctx, http.MethodPut, path, token, nil, watchlist, &updated, "Failed to update watchlist")
	if err != nil {
		return nil, withConflictText(err, "Failed to update watchlist", "A watchlist with this title already exists")
	}
	return &updated, nil
}

// AddMovieToWatchlist appends a movie to a watchlist. The backend signals a
// movie already present with 409.
//
// PUT /watchlists/update/{id}
func (c *Client) AddMovieToWatchlist(ctx context.Context, watchlistID int64, userID string, movieID int64, token string) error {
	body := struct {
		UserID  string `json:"user_id"`
		MovieID int64  `json:"movie_id"`
	}{userID, movieID}

	path := fmt.Sprintf("/watchlists/update/%d", watchlistID)
	err := c.do(ctx, http.MethodPut, path, token, nil, body, nil, "Failed to update watchlist")
	return withConflictText(err, "Failed to update watchlist", "Movie is already in this watchlist")
}

// DeleteWatchlist removes a watchlist.
//
// DELETE /watchlists/delete/{id}?user_id=
func (c *Client) DeleteWatchlist(ctx context.Context, watchlistID int64, userID, token string) error {
	query := url.Values{"user_id": {userID}}
	path := fmt.Sprintf("/watchlists/delete/%d", watchlistID)
	return c.do(ctx, http.MethodDelete, path, token, query, nil, nil, "Failed to delete watchlist")
}

// PublicWatchlists lists publicly shared watchlists. No authentication required.
//
// GET /watchlists/public
func (c *Client) PublicWatchlists(ctx context.Context) ([]models.Watchlist, error) {
	var watchlists []models.Watchlist
	if err := c.do(ctx, http.MethodGet, "/watchlists/public", "", nil, nil, &watchlists, "Failed to fetch public watchlists"); err != nil {
		return nil, err
	}
	return watchlists, nil
}
