// Package models defines domain entities and persistence interfaces for the reel movie client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs mirroring backend payloads
//   - [Movie] : Catalog movie with aggregate rating metadata
//   - [Actor] : Actor profile with filmography count
//   - [Watchlist] : User-curated movie collection with visibility flag
//   - [RatedMovie] : A user's rating of a single movie
//   - [Review] : Free-text review attached to a movie
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [CachedMovie] : Locally cached catalog entries for offline browsing
//
// Persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
