// Package tasks orchestrates multi-request operations against the movie backend with real-time progress reporting.
//
// # Core Operations
//
// The [Engine] interface defines three operations:
//
//  1. [Engine.Dashboard] : Assemble the signed-in home view
//     - Fetches the user's rated movies
//     - Fetches personalized recommendations when any ratings exist
//     - Skips the ranking call entirely for users with no ratings
//
//  2. [Engine.CacheCatalog] : Persist the movie catalog locally
//     - Fetches the full movie list from the backend
//     - Writes each movie to the local database, refreshing stale rows
//     - Reports per-movie progress and counts partial failures
//
//  3. [Engine.MovieDetail] : Gather a movie with its reviews
//     - Fetches the movie record and its review list
//     - Returns structured data for detail views
//
// [CatalogEngine.BulkExport] additionally exports multiple watchlists to
// disk using a rate-limited worker pool, writing a JSON manifest of the run.
//
// # Progress Reporting
//
// All operations accept channels for progress updates. The [ProgressUpdate]
// struct contains phase, step counters, messages, and optional data for
// advanced UI rendering. A nil channel disables reporting.
//
// # Implementation
//
// [CatalogEngine] implements [Engine] with dependencies on:
//   - [APIClient] : HTTP client for the movie backend
//   - [MovieCacher] : Optional persistence layer (repositories.MovieCacheAdapter)
package tasks
