package main

import (
	"context"
	"fmt"

	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/repositories"
	"github.com/reelcli/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// maxTitleLength caps user-supplied titles before any network call.
const maxTitleLength = 100

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: --title is required", shared.ErrMissingArgument)
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", shared.ErrInvalidInput, maxTitleLength)
	}
	return nil
}

// MoviesList prints the movie catalog, from the backend or the local cache.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("cached") {
		return r.listCachedMovies(cmd)
	}

	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	movies, err := r.client.Movies(ctx, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(movies, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Movies (%d)", len(movies)))
	for _, movie := range movies {
		r.writePlain("%d. %s [%s]\n", movie.ID, movie.Title, shared.FormatRating(movie.Rating))
		if movie.Genres != "" {
			r.writePlain("   %s\n", shared.JoinGenres(movie.Genres))
		}
	}
	return nil
}

// listCachedMovies prints the locally cached catalog. Works offline;
// requires a prior 'reel cache movies' run.
func (r *Runner) listCachedMovies(cmd *cli.Command) error {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open local cache: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	movies, err := repositories.NewMovieRepository(db).List(nil)
	if err != nil {
		return fmt.Errorf("failed to read local cache: %w", err)
	}

	if cmd.Bool("json") {
		out := make([]models.Movie, 0, len(movies))
		for _, movie := range movies {
			out = append(out, models.Movie{
				ID:          movie.RemoteID(),
				Title:       movie.Title(),
				Genres:      movie.Genres(),
				Description: movie.Description(),
				Rating:      movie.Rating(),
			})
		}
		return r.writeJSON(out, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Cached movies (%d)", len(movies)))
	for _, movie := range movies {
		r.writePlain("%d. %s [%s]\n", movie.RemoteID(), movie.Title(), shared.FormatRating(movie.Rating()))
		if movie.Genres() != "" {
			r.writePlain("   %s\n", shared.JoinGenres(movie.Genres()))
		}
	}
	return nil
}

// MoviesGet prints a single movie with its reviews.
func (r *Runner) MoviesGet(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	movieID := cmd.Int("id")

	detail, err := r.engine.MovieDetail(ctx, int64(movieID), sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(detail, cmd.Bool("pretty"))
	}

	r.writePlainHeader(detail.Movie.Title)
	r.writePlain("Rating: %s (%d ratings)\n", shared.FormatRating(detail.Movie.Rating), detail.Movie.RatingsCount)
	if detail.Movie.Genres != "" {
		r.writePlain("Genres: %s\n", shared.JoinGenres(detail.Movie.Genres))
	}
	if detail.Movie.Description != "" {
		r.writePlain("\n%s\n", detail.Movie.Description)
	}

	if len(detail.Reviews) > 0 {
		r.writePlainln("Reviews (%d):", len(detail.Reviews))
		for _, review := range detail.Reviews {
			r.writePlain("  • %s\n", review.Content)
		}
	}
	return nil
}

// MoviesCreate adds a movie to the catalog. Admin only.
func (r *Runner) MoviesCreate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	movie := models.Movie{
		Title:       cmd.String("title"),
		Genres:      cmd.String("genres"),
		Description: cmd.String("description"),
		ImageURL:    cmd.String("image-url"),
	}
	if err := validateTitle(movie.Title); err != nil {
		return err
	}

	created, err := r.client.CreateMovie(ctx, movie, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	r.logger.Info("movie created", "id", created.ID, "title", created.Title)
	return r.writePlain("✓ Created movie %d: %s\n", created.ID, created.Title)
}

// MoviesUpdate edits an existing movie. Admin only.
func (r *Runner) MoviesUpdate(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	movieID := cmd.Int("id")
	movie := models.Movie{
		Title:       cmd.String("title"),
		Genres:      cmd.String("genres"),
		Description: cmd.String("description"),
		ImageURL:    cmd.String("image-url"),
	}

	updated, err := r.client.UpdateMovie(ctx, int64(movieID), movie, sess.Token)
	if err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Updated movie %d: %s\n", updated.ID, updated.Title)
}

// MoviesDelete removes a movie from the catalog. Admin only.
func (r *Runner) MoviesDelete(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}
	if !sess.Role.CanEditContent() {
		return fmt.Errorf("%w: catalog editing requires an admin account", shared.ErrForbidden)
	}

	movieID := cmd.Int("id")

	if err := r.client.DeleteMovie(ctx, int64(movieID), sess.Token); err != nil {
		return r.apiErr(err)
	}

	return r.writePlain("✓ Deleted movie %d\n", movieID)
}
