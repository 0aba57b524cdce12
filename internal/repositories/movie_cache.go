package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/reelcli/reel/internal/models"
)

// MovieCacheAdapter implements tasks.MovieCacher using MovieRepository.
//
// Provides write-through caching with deduplication via the remote_id
// constraint. A movie already cached gets its mutable fields refreshed
// instead of a second row.
type MovieCacheAdapter struct {
	repo *MovieRepository
}

// NewMovieCacheAdapter creates a new MovieCacheAdapter with the given repository
func NewMovieCacheAdapter(repo *MovieRepository) *MovieCacheAdapter {
	return &MovieCacheAdapter{repo: repo}
}

// CacheMovie caches a catalog movie, refreshing an existing entry when present.
// Only returns errors for actual failures (not constraint violations).
func (a *MovieCacheAdapter) CacheMovie(movie models.Movie) error {
	existing, err := a.repo.GetByRemoteID(movie.ID)
	if err == nil && existing != nil {
		existing.SetDescription(movie.Description)
		existing.SetRating(movie.Rating)
		existing.SetUpdatedAt(time.Now())
		if err := a.repo.Update(existing); err != nil {
			return fmt.Errorf("failed to refresh cached movie: %w", err)
		}
		return nil
	}

	cached := models.NewCachedMovie(0, movie)

	if err := a.repo.Create(cached); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache movie: %w", err)
	}

	return nil
}
