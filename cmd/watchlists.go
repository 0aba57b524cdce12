package main

import (
	"context"
	"fmt"

	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/shared"
	"github.com/reelcli/reel/internal/tasks"
	"github.com/urfave/cli/v3"
)

// WatchlistList prints the user's watchlists.
func (r *Runner) WatchlistList(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	watchlists, err := r.client.Watchlists(ctx, sess.UserID, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(watchlists, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Watchlists (%d)", len(watchlists)))
	for _, watchlist := range watchlists {
		r.writePlain("%d. %s (%s, %d movies)\n",
			watchlist.ID, watchlist.Title, shared.VisibilityString(watchlist.Public), len(watchlist.Movies))
	}
	return nil
}

// WatchlistGet prints a single watchlist with its movies.
func (r *Runner) WatchlistGet(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	watchlistID := cmd.Int("id")

	watchlist, err := r.client.Watchlist(ctx, int64(watchlistID), sess.UserID, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(watchlist, cmd.Bool("pretty"))
	}

	r.writePlainHeader(watchlist.Title)
	r.writePlain("Visibility: %s\n", shared.VisibilityString(watchlist.Public))
	r.writePlain("Movies: %d\n", len(watchlist.Movies))
	for i, movie := range watchlist.Movies {
		r.writePlain("%d. %s [%s]\n", i+1, movie.Title, shared.FormatRating(movie.Rating))
	}
	return nil
}

// WatchlistPublic prints the community's public watchlists. No session required.
func (r *Runner) WatchlistPublic(ctx context.Context, cmd *cli.Command) error {
	watchlists, err := r.client.PublicWatchlists(ctx)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(watchlists, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Public watchlists (%d)", len(watchlists)))
	for _, watchlist := range watchlists {
		r.writePlain("%d. %s (%d movies)\n", watchlist.ID, watchlist.Title, len(watchlist.Movies))
	}
	return nil
}

// WatchlistCreate creates a new watchlist.
func (r *Runner) WatchlistCreate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	title := cmd.String("title")
	if err := validateTitle(title); err != nil {
		return err
	}

	watchlist := models.Watchlist{
		Title:  title,
		Public: cmd.Bool("public"),
	}

	created, err := r.client.CreateWatchlist(ctx, watchlist, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	r.logger.Info("watchlist created", "id", created.ID, "title", created.Title)
	return r.writePlain("✓ Created watchlist %d: %s\n", created.ID, created.Title)
}

// WatchlistUpdate renames a watchlist or changes its visibility.
func (r *Runner) WatchlistUpdate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	watchlistID := cmd.Int("id")
	watchlist := models.Watchlist{
		Title:  cmd.String("title"),
		Public: cmd.Bool("public"),
	}

	updated, err := r.client.UpdateWatchlist(ctx, int64(watchlistID), watchlist, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Updated watchlist %d: %s\n", updated.ID, updated.Title)
}

// WatchlistAdd adds a movie to a watchlist.
func (r *Runner) WatchlistAdd(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	watchlistID := cmd.Int("id")
	movieID := cmd.Int("movie-id")

	if err := r.client.AddMovieToWatchlist(ctx, int64(watchlistID), sess.UserID, int64(movieID), sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Added movie %d to watchlist %d\n", movieID, watchlistID)
}

// WatchlistDelete removes a watchlist.
func (r *Runner) WatchlistDelete(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	watchlistID := cmd.Int("id")

	if err := r.client.DeleteWatchlist(ctx, int64(watchlistID), sess.UserID, sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Deleted watchlist %d\n", watchlistID)
}

// WatchlistExport exports one or all of the user's watchlists to disk.
func (r *Runner) WatchlistExport(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	engine, ok := r.engine.(*tasks.CatalogEngine)
	if !ok {
		return fmt.Errorf("%w: export engine not initialized", shared.ErrServiceUnavailable)
	}

	var ids []int64
	if id := cmd.Int("id"); id != 0 {
		ids = []int64{int64(id)}
	} else {
		watchlists, err := r.client.Watchlists(ctx, sess.UserID, sess.Token)
		if err != nil {
			return r.apiErr(err)
		}
		for _, watchlist := range watchlists {
			ids = append(ids, watchlist.ID)
		}
	}

	if len(ids) == 0 {
		return r.writePlain("Nothing to export.\n")
	}

	opts := tasks.BulkExportOpts{
		Format:    cmd.String("format"),
		OutputDir: cmd.String("output"),
		UserID:    sess.UserID,
		Token:     sess.Token,
	}

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go r.drainProgress(progress, done)

	result, err := engine.BulkExport(ctx, progress, r.client, ids, opts)
	close(progress)
	<-done
	if err != nil {
		return r.apiErr(err)
	}

	r.writePlain("✓ Exported %d/%d watchlists to %s\n", result.SuccessfulExports, result.TotalWatchlists, result.OutputDirectory)
	if result.FailedExports > 0 {
		r.writePlain("✗ %d exports failed, see %s\n", result.FailedExports, result.ManifestPath)
	}
	return nil
}
