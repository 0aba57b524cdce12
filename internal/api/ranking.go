package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/reelcli/reel/internal/models"
)

// TopRankedMovies fetches personalized recommendations from the external
// ranking service.
//
// GET /ranking?user_id= — the payload is wrapped in "top_ranked_movies".
func (c *Client) TopRankedMovies(ctx context.Context, userID, token string) ([]models.Movie, error) {
	query := url.Values{"user_id": {userID}}

	var resp struct {
		TopRankedMovies []models.Movie `json:"top_ranked_movies"`
	}

	if err := c.do(ctx, http.MethodGet, "/ranking", token, query, nil, &resp, "Failed to fetch top movies"); err != nil {
		return nil, err
	}
	return resp.TopRankedMovies, nil
}
