// Package repositories implements SQLite persistence for the local catalog cache.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// Repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [MovieRepository] : Cached catalog entries with remote-id lookups
//   - [MovieCacheAdapter] : Deduplicating write-through used by the cache engine
//
// Sequence numbers provide stable, human-readable ordering independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
