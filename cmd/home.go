package main

import (
	"context"

	"github.com/reelcli/reel/internal/shared"
	"github.com/reelcli/reel/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Home prints the signed-in dashboard: the user's ratings plus personalized
// recommendations. Users with no ratings get a nudge instead.
func (r *Runner) Home(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	progress := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go r.drainProgress(progress, done)

	result, err := r.engine.Dashboard(ctx, progress, sess.UserID, sess.Token)
	close(progress)
	<-done
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Your dashboard")

	if !result.HasRatings {
		r.writePlain("You haven't rated any movies yet.\n")
		return r.writePlain("Rate a few with 'reel ratings create' to unlock recommendations.\n")
	}

	r.writePlain("Rated movies (%d):\n", len(result.Ratings))
	for _, rated := range result.Ratings {
		r.writePlain("  • %s [%s]\n", rated.Title, shared.FormatRating(rated.Rating))
	}

	r.writePlainln("Recommended for you (%d):", len(result.Recommendations))
	for _, movie := range result.Recommendations {
		r.writePlain("  • %s [%s]\n", movie.Title, shared.FormatRating(movie.Rating))
	}
	return nil
}
