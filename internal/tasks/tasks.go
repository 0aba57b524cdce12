package tasks

import (
	"context"
	"fmt"

	"github.com/reelcli/reel/internal/models"
)

// DashboardResult contains everything the home view renders.
type DashboardResult struct {
	Ratings         []models.RatedMovie // The user's rated movies
	Recommendations []models.Movie      // Top ranked movies from the ranking service
	HasRatings      bool                // False when the user has never rated anything
}

// CacheResult summarizes a catalog caching run.
type CacheResult struct {
	Fetched int // Movies returned by the backend
	Cached  int // Rows written or refreshed locally
	Failed  int // Movies that could not be cached
}

// MovieDetail bundles a movie with its reviews for detail views.
type MovieDetail struct {
	Movie   models.Movie
	Reviews []models.Review
}

// APIClient is the subset of the backend client the engine depends on.
// Abstracted for testing without a live backend.
type APIClient interface {
	Ratings(ctx context.Context, token string) ([]models.RatedMovie, error)
	TopRankedMovies(ctx context.Context, userID, token string) ([]models.Movie, error)
	Movies(ctx context.Context, token string) ([]models.Movie, error)
	Movie(ctx context.Context, movieID int64, token string) (*models.Movie, error)
	MovieReviews(ctx context.Context, movieID int64, token string) ([]models.Review, error)
}

// MovieCacher persists catalog movies locally.
type MovieCacher interface {
	CacheMovie(movie models.Movie) error
}

// Engine defines the multi-request operations built on the API client.
type Engine interface {
	// Dashboard fetches the user's ratings and, when any exist, their
	// personalized recommendations.
	Dashboard(ctx context.Context, progress chan<- ProgressUpdate, userID, token string) (*DashboardResult, error)

	// CacheCatalog fetches the full movie list and writes it to the local cache.
	CacheCatalog(ctx context.Context, progress chan<- ProgressUpdate, token string) (*CacheResult, error)

	// MovieDetail fetches a movie together with its reviews.
	MovieDetail(ctx context.Context, movieID int64, token string) (*MovieDetail, error)
}

// CatalogEngine implements Engine against the live backend.
type CatalogEngine struct {
	api   APIClient
	cache MovieCacher
}

var _ Engine = (*CatalogEngine)(nil)

// NewCatalogEngine creates a new CatalogEngine. cache may be nil when no
// local database is configured; CacheCatalog then fails fast.
func NewCatalogEngine(api APIClient, cache MovieCacher) *CatalogEngine {
	return &CatalogEngine{api: api, cache: cache}
}

// emit sends an update without blocking forever on an absent consumer.
func emit(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	progress <- update
}

// Dashboard assembles the home view: the user's rated movies plus
// recommendations. Recommendations are only fetched once the user has
// rated something, mirroring the backend ranking service's requirement.
func (e *CatalogEngine) Dashboard(ctx context.Context, progress chan<- ProgressUpdate, userID, token string) (*DashboardResult, error) {
	emit(progress, fetchRatingsUpdate(1, 2))

	ratings, err := e.api.Ratings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ratings: %w", err)
	}

	result := &DashboardResult{
		Ratings:    ratings,
		HasRatings: len(ratings) > 0,
	}

	if !result.HasRatings {
		return result, nil
	}

	emit(progress, fetchRankingUpdate(2, 2))

	recommendations, err := e.api.TopRankedMovies(ctx, userID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	result.Recommendations = recommendations

	return result, nil
}

// CacheCatalog fetches the full catalog and writes each movie to the local
// cache, emitting one update per movie.
func (e *CatalogEngine) CacheCatalog(ctx context.Context, progress chan<- ProgressUpdate, token string) (*CacheResult, error) {
	if e.cache == nil {
		return nil, fmt.Errorf("no local cache configured: run 'reel setup database' first")
	}

	emit(progress, fetchCatalogUpdate(0, 0))

	movies, err := e.api.Movies(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	result := &CacheResult{Fetched: len(movies)}

	for i, movie := range movies {
		emit(progress, cacheMovieUpdate(i+1, len(movies), movie))

		if err := e.cache.CacheMovie(movie); err != nil {
			result.Failed++
			emit(progress, cacheFailedUpdate(i+1, len(movies), movie, err))
			continue
		}
		result.Cached++
	}

	return result, nil
}

// MovieDetail fetches a movie and its reviews.
func (e *CatalogEngine) MovieDetail(ctx context.Context, movieID int64, token string) (*MovieDetail, error) {
	movie, err := e.api.Movie(ctx, movieID, token)
	if err != nil {
		return nil, err
	}

	reviews, err := e.api.MovieReviews(ctx, movieID, token)
	if err != nil {
		return nil, err
	}

	return &MovieDetail{Movie: *movie, Reviews: reviews}, nil
}
