package models

import (
	"fmt"
	"time"
)

// CachedMovie is a locally persisted catalog entry for offline browsing.
//
// Rows are written by the cache engine and never pushed back to the backend.
type CachedMovie struct {
	id          string
	sequence    int
	remoteID    int64
	title       string
	genres      string
	description string
	rating      float64
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

var _ Model = (*CachedMovie)(nil)

// NewCachedMovie creates a cache entry from a backend [Movie] payload.
func NewCachedMovie(sequence int, movie Movie) *CachedMovie {
	now := time.Now()
	return &CachedMovie{
		sequence:    sequence,
		remoteID:    movie.ID,
		title:       movie.Title,
		genres:      movie.Genres,
		description: movie.Description,
		rating:      movie.Rating,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (m *CachedMovie) ID() string           { return m.id }
func (m *CachedMovie) Sequence() int        { return m.sequence }
func (m *CachedMovie) RemoteID() int64      { return m.remoteID }
func (m *CachedMovie) Title() string        { return m.title }
func (m *CachedMovie) Genres() string       { return m.genres }
func (m *CachedMovie) Description() string  { return m.description }
func (m *CachedMovie) Rating() float64      { return m.rating }
func (m *CachedMovie) CreatedAt() time.Time { return m.createdAt }
func (m *CachedMovie) UpdatedAt() time.Time { return m.updatedAt }
func (m *CachedMovie) DeletedAt() *time.Time {
	return m.deletedAt
}

func (m *CachedMovie) SetID(id string)           { m.id = id }
func (m *CachedMovie) SetUpdatedAt(t time.Time)  { m.updatedAt = t }
func (m *CachedMovie) SetDeletedAt(t *time.Time) { m.deletedAt = t }
func (m *CachedMovie) SetCreatedAt(t time.Time)  { m.createdAt = t }
func (m *CachedMovie) SetRating(r float64)       { m.rating = r }
func (m *CachedMovie) SetDescription(d string)   { m.description = d }

// Validate checks that the cache entry carries the minimum catalog data.
func (m *CachedMovie) Validate() error {
	if m.title == "" {
		return fmt.Errorf("cached movie requires a title")
	}
	if m.remoteID <= 0 {
		return fmt.Errorf("cached movie requires a positive remote id, got %d", m.remoteID)
	}
	return nil
}

// Movie converts the cache entry back to a backend-shaped [Movie] payload.
func (m *CachedMovie) Movie() Movie {
	return Movie{
		ID:          m.remoteID,
		Title:       m.title,
		Genres:      m.genres,
		Description: m.description,
		Rating:      m.rating,
	}
}
