package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/reelcli/reel/internal/formatter"
	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/shared"
	"golang.org/x/time/rate"
)

// WatchlistFetcher is the subset of the backend client bulk export needs.
type WatchlistFetcher interface {
	Watchlist(ctx context.Context, watchlistID int64, userID, token string) (*models.Watchlist, error)
}

// BulkExportOpts contains configuration for bulk watchlist exports.
type BulkExportOpts struct {
	Format     string  // Export format: json, csv, markdown, txt
	OutputDir  string  // Base output directory (default: reel_export_{epoch})
	NumWorkers int     // Concurrent workers (default: 5)
	RateLimit  float64 // Requests per second (default: 5)
	UserID     string  // Owner of the watchlists
	Token      string  // Bearer token for the fetches
}

// WatchlistExportJob carries a fetched watchlist to a worker.
type WatchlistExportJob struct {
	WatchlistID int64
	Watchlist   *models.Watchlist
}

// WatchlistExportResult describes the outcome of exporting one watchlist.
type WatchlistExportResult struct {
	WatchlistID   int64    `json:"watchlist_id"`
	WatchlistName string   `json:"watchlist_name"`
	Success       bool     `json:"success"`
	Files         []string `json:"files"`
	Error         error    `json:"-"`
}

// BulkExportResult summarizes a bulk export run.
type BulkExportResult struct {
	TotalWatchlists   int                     `json:"total_watchlists"`
	SuccessfulExports int                     `json:"successful_exports"`
	FailedExports     int                     `json:"failed_exports"`
	OutputDirectory   string                  `json:"output_directory"`
	ManifestPath      string                  `json:"manifest_path,omitempty"`
	Results           []WatchlistExportResult `json:"results"`
}

// BulkExport exports multiple watchlists concurrently with rate limiting and progress tracking.
//
// This method implements a worker pool pattern to efficiently export multiple watchlists.
// It respects API rate limits, handles partial failures gracefully, and generates a manifest file summarizing the export results.
func (e *CatalogEngine) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	fetcher WatchlistFetcher,
	ids []int64,
	opts BulkExportOpts,
) (*BulkExportResult, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: client not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("reel_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalWatchlists: len(ids),
		OutputDirectory: opts.OutputDir,
		Results:         make([]WatchlistExportResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan WatchlistExportJob, len(ids))
	results := make(chan WatchlistExportResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		for i, watchlistID := range ids {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				close(jobs)
				return
			}

			watchlist, err := fetcher.Watchlist(ctx, watchlistID, opts.UserID, opts.Token)
			if err != nil {
				results <- WatchlistExportResult{
					WatchlistID:   watchlistID,
					WatchlistName: fmt.Sprintf("Unknown (%d)", watchlistID),
					Success:       false,
					Error:         fmt.Errorf("failed to fetch watchlist: %w", err),
				}
				continue
			}

			jobs <- WatchlistExportJob{
				WatchlistID: watchlistID,
				Watchlist:   watchlist,
			}

			emit(prog, exportingWatchlistUpdate(i+1, len(ids), watchlist.Title))
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			emit(prog, exportCompletedUpdate(
				completed,
				len(ids),
				res.WatchlistName,
				len(res.Files),
			))
		} else {
			result.FailedExports++
			emit(prog, exportFailedUpdate(
				completed,
				len(ids),
				res.WatchlistName,
				res.Error,
			))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// exportWorker is a worker goroutine that exports watchlists from the jobs channel.
func exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan WatchlistExportJob,
	results chan<- WatchlistExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res := exportSingleWatchlist(job, opts)
		results <- res
	}
}

// exportSingleWatchlist exports a single watchlist to the appropriate format.
func exportSingleWatchlist(j WatchlistExportJob, opts BulkExportOpts) WatchlistExportResult {
	result := WatchlistExportResult{
		WatchlistID:   j.WatchlistID,
		WatchlistName: j.Watchlist.Title,
		Success:       false,
		Files:         []string{},
	}

	base := strconv.FormatInt(j.WatchlistID, 10)

	switch opts.Format {
	case "csv":
		baseFilepath := filepath.Join(opts.OutputDir, base)
		csvRes, err := formatter.WriteCSVExport(j.Watchlist, baseFilepath)
		if err != nil {
			result.Error = fmt.Errorf("CSV export failed: %w", err)
			return result
		}
		result.Files = []string{csvRes.MoviesFile, csvRes.MetadataFile}
		result.Success = true

	case "markdown":
		outputDir := filepath.Join(opts.OutputDir, base)
		mdFile, err := formatter.WriteMarkdownExport(j.Watchlist, outputDir)
		if err != nil {
			result.Error = fmt.Errorf("markdown export failed: %w", err)
			return result
		}
		result.Files = []string{mdFile}
		result.Success = true

	case "txt":
		txtPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s_movies.txt", base))
		filepath, err := formatter.WriteTextExport(j.Watchlist, txtPath)
		if err != nil {
			result.Error = fmt.Errorf("text export failed: %w", err)
			return result
		}
		result.Files = []string{filepath}
		result.Success = true

	case "json":
		fallthrough
	default:
		jsonPath := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.json", base))
		data, err := shared.MarshalJSON(j.Watchlist, true)
		if err != nil {
			result.Error = fmt.Errorf("JSON marshal failed: %w", err)
			return result
		}
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			result.Error = fmt.Errorf("JSON write failed: %w", err)
			return result
		}
		result.Files = []string{jsonPath}
		result.Success = true
	}
	return result
}

func writeManifest(result *BulkExportResult, path string) error {
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
