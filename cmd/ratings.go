package main

import (
	"context"
	"fmt"
	"math"

	"github.com/reelcli/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// validateRating enforces the backend's rating scale: 1.0 to 5.0 in half-star steps.
func validateRating(rating float64) error {
	if rating < 1.0 || rating > 5.0 {
		return fmt.Errorf("%w: rating must be between 1.0 and 5.0", shared.ErrInvalidInput)
	}
	if math.Mod(rating*2, 1) != 0 {
		return fmt.Errorf("%w: rating must be a half-star increment", shared.ErrInvalidInput)
	}
	return nil
}

// RatingsList prints the user's rated movies.
func (r *Runner) RatingsList(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	ratings, err := r.client.Ratings(ctx, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(ratings, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Your ratings (%d)", len(ratings)))
	for _, rated := range ratings {
		r.writePlain("%d. %s [%s]\n", rated.ID, rated.Title, shared.FormatRating(rated.Rating))
	}
	return nil
}

// RatingsCreate rates a movie.
func (r *Runner) RatingsCreate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	movieID := cmd.Int("movie-id")
	rating := cmd.Float("rating")

	if err := validateRating(rating); err != nil {
		return err
	}

	if err := r.client.CreateRating(ctx, sess.UserID, int64(movieID), rating, sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Rated movie %d: %s\n", movieID, shared.FormatRating(rating))
}

// RatingsUpdate changes an existing rating.
func (r *Runner) RatingsUpdate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	ratingID := cmd.Int("id")
	rating := cmd.Float("rating")

	if err := validateRating(rating); err != nil {
		return err
	}

	if err := r.client.UpdateRating(ctx, int64(ratingID), rating, sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Updated rating %d: %s\n", ratingID, shared.FormatRating(rating))
}

// RatingsDelete removes a rating.
func (r *Runner) RatingsDelete(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	ratingID := cmd.Int("id")

	if err := r.client.DeleteRating(ctx, int64(ratingID), sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Deleted rating %d\n", ratingID)
}
