package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reelcli/reel/internal/models"
)

// Actors lists all actors.
//
// GET /actors
func (c *Client) Actors(ctx context.Context, token string) ([]models.Actor, error) {
	var actors []models.Actor
	if err := c.do(ctx, http.MethodGet, "/actors", token, nil, nil, &actors, "Failed to fetch actors"); err != nil {
		return nil, err
	}
	return actors, nil
}

// Actor retrieves a single actor by id.
//
// GET /actors/{id}
func (c *Client) Actor(ctx context.Context, actorID int64, token string) (*models.Actor, error) {
	var actor models.Actor
	path := fmt.Sprintf("/actors/%d", actorID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &actor, "Failed to fetch actor"); err != nil {
		return nil, err
	}
	return &actor, nil
}

// CreateActor adds an actor. Admin only.
//
// POST /actors
func (c *Client) CreateActor(ctx context.Context, actor models.Actor, token string) (*models.Actor, error) {
	var created models.Actor
	if err := c.do(ctx, http.MethodPost, "/actors", token, nil, actor, &created, "Failed to create actor"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateActor modifies an actor profile. Admin only.
//
// PUT /actors/{id}
func (c *Client) UpdateActor(ctx context.Context, actorID int64, actor models.Actor, token string) (*models.Actor, error) {
	var updated models.Actor
	path := fmt.Sprintf("/actors/%d", actorID)
	if err := c.do(ctx, http.MethodPut, path, token, nil, actor, &updated, "Failed to update actor"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteActor removes an actor. Admin only.
//
// DELETE /actors/{id}
func (c *Client) DeleteActor(ctx context.Context, actorID int64, token string) error {
	path := fmt.Sprintf("/actors/%d", actorID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil, "Failed to delete actor")
}

// ActorCountries lists the nationalities present in the actor catalog.
//
// GET /actors/countries
func (c *Client) ActorCountries(ctx context.Context, token string) ([]string, error) {
	var countries []string
	if err := c.do(ctx, http.MethodGet, "/actors/countries", token, nil, nil, &countries, "Failed to fetch countries"); err != nil {
		return nil, err
	}
	return countries, nil
}

// AssignActor links an actor to a movie. Admin only.
//
// POST /movies/{movieId}/actors
func (c *Client) AssignActor(ctx context.Context, movieID, actorID int64, token string) error {
	body := struct {
		ActorID int64 `json:"actor_id"`
	}{actorID}

	path := fmt.Sprintf("/movies/%d/actors", movieID)
	err := c.do(ctx, http.MethodPost, path, token, nil, body, nil, "Failed to add actor to movie")
	return withConflictText(err, "Failed to add actor to movie", "Actor is already assigned to this movie")
}

// UnassignActor removes an actor from a movie. Admin only.
//
// DELETE /movies/{movieId}/actors/{actorId}
func (c *Client) UnassignActor(ctx context.Context, movieID, actorID int64, token string) error {
	path := fmt.Sprintf("/movies/%d/actors/%d", movieID, actorID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil, "Failed to remove actor from movie")
}
