package main

import (
	"context"
	"fmt"

	"github.com/reelcli/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// ReviewsList prints the reviews for a movie.
func (r *Runner) ReviewsList(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	movieID := cmd.Int("movie-id")

	reviews, err := r.client.MovieReviews(ctx, int64(movieID), sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(reviews, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Reviews for movie %d (%d)", movieID, len(reviews)))
	for _, review := range reviews {
		r.writePlain("%d. %s\n", review.ID, review.Content)
	}
	return nil
}

// ReviewsCreate posts a review for a movie.
func (r *Runner) ReviewsCreate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	movieID := cmd.Int("movie-id")
	content := cmd.String("content")
	if content == "" {
		return fmt.Errorf("%w: --content is required", shared.ErrMissingArgument)
	}

	review, err := r.client.CreateReview(ctx, int64(movieID), content, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Posted review %d on movie %d\n", review.ID, movieID)
}

// ReviewsUpdate edits one of the user's reviews.
func (r *Runner) ReviewsUpdate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	reviewID := cmd.Int("id")
	content := cmd.String("content")
	if content == "" {
		return fmt.Errorf("%w: --content is required", shared.ErrMissingArgument)
	}

	review, err := r.client.UpdateReview(ctx, int64(reviewID), content, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Updated review %d\n", review.ID)
}

// ReviewsDelete removes one of the user's reviews.
func (r *Runner) ReviewsDelete(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	reviewID := cmd.Int("id")

	if err := r.client.DeleteReview(ctx, int64(reviewID), sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Deleted review %d\n", reviewID)
}
