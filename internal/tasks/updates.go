package tasks

import (
	"fmt"

	"github.com/reelcli/reel/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchRatings Phase = iota
	FetchRanking
	FetchCatalog
	CacheCatalog
	ExportWatchlist
)

func (p Phase) String() string {
	switch p {
	case FetchRatings:
		return "fetch_ratings"
	case FetchRanking:
		return "fetch_ranking"
	case FetchCatalog:
		return "fetch_catalog"
	case CacheCatalog:
		return "cache_catalog"
	case ExportWatchlist:
		return "export_watchlist"
	default:
		return ""
	}
}

func fetchRatingsUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchRatings,
		Step:    step,
		Total:   total,
		Message: "Fetching your rated movies...",
	}
}

func fetchRankingUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchRanking,
		Step:    step,
		Total:   total,
		Message: "Fetching your recommendations...",
	}
}

func fetchCatalogUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchCatalog,
		Step:    step,
		Total:   total,
		Message: "Fetching the movie catalog...",
	}
}

func cacheMovieUpdate(step, total int, movie models.Movie) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CacheCatalog,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s", step, total, movie.Title),
		Data:    movie,
	}
}

func exportingWatchlistUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportWatchlist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, name),
	}
}

func exportCompletedUpdate(step, total int, name string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportWatchlist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, name, filesCount),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportWatchlist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}

func cacheFailedUpdate(step, total int, movie models.Movie, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CacheCatalog,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, movie.Title, err),
	}
}
