package main

import (
	"context"
	"fmt"

	"github.com/reelcli/reel/internal/repositories"
	"github.com/reelcli/reel/internal/shared"
	"github.com/reelcli/reel/internal/tasks"
	"github.com/urfave/cli/v3"
)

// CacheMovies fetches the full catalog and writes it to the local database.
//
// Opt-in: the local cache only exists after 'reel setup database'.
func (r *Runner) CacheMovies(ctx context.Context, cmd *cli.Command) error {
	sess, err := r.requireSession(ctx)
	if err != nil {
		return err
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	cache := repositories.NewMovieCacheAdapter(repositories.NewMovieRepository(db))
	engine := tasks.NewCatalogEngine(r.client, cache)

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go r.drainProgress(progress, done)

	result, err := engine.CacheCatalog(ctx, progress, sess.Token)
	close(progress)
	<-done
	if err != nil {
		return r.apiErr(err)
	}

	r.writePlain("✓ Cached %d/%d movies\n", result.Cached, result.Fetched)
	if result.Failed > 0 {
		r.writePlain("✗ %d movies failed to cache\n", result.Failed)
	}
	return nil
}

// cacheCommand handles opt-in local catalog caching
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Cache catalog data locally",
		Commands: []*cli.Command{
			{
				Name:  "movies",
				Usage: "Cache the full movie catalog to the local database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.CacheMovies,
			},
		},
	}
}
