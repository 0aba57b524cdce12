package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/shared"
)

// MovieRepository implements [models.Repository] for [models.CachedMovie] persistence.
type MovieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a new [MovieRepository] with the given database connection
func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Create inserts a new cached movie into the database with generated ID and sequence
func (r *MovieRepository) Create(movie *models.CachedMovie) error {
	sequence, err := NextSequence(r.db, "movies")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	movie.SetID(id)

	if err := movie.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO movies (id, sequence, remote_id, title, genres, description, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, movie.RemoteID(), movie.Title(), movie.Genres(),
		movie.Description(), movie.Rating(), movie.CreatedAt(), movie.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}

	return nil
}

// Get retrieves a cached movie by ID, excluding soft-deleted rows
func (r *MovieRepository) Get(id string) (*models.CachedMovie, error) {
	query := `
		SELECT id, sequence, remote_id, title, genres, description, rating, created_at, updated_at, deleted_at
		FROM movies
		WHERE id = ? AND deleted_at IS NULL
	`
	return r.scanRow(r.db.QueryRow(query, id), id)
}

// GetByRemoteID retrieves a cached movie by its backend catalog id
func (r *MovieRepository) GetByRemoteID(remoteID int64) (*models.CachedMovie, error) {
	query := `
		SELECT id, sequence, remote_id, title, genres, description, rating, created_at, updated_at, deleted_at
		FROM movies
		WHERE remote_id = ? AND deleted_at IS NULL
	`
	return r.scanRow(r.db.QueryRow(query, remoteID), fmt.Sprintf("remote:%d", remoteID))
}

// Update modifies an existing cached movie in the database
func (r *MovieRepository) Update(movie *models.CachedMovie) error {
	if err := movie.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	movie.SetUpdatedAt(now)

	query := `
		UPDATE movies
		SET title = ?, genres = ?, description = ?, rating = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, movie.Title(), movie.Genres(), movie.Description(), movie.Rating(), now, movie.ID())
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("movie not found or already deleted: %s", movie.ID())
	}

	return nil
}

// Delete soft-deletes a cached movie by ID
func (r *MovieRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE movies
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("movie not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all cached movies matching the given criteria, excluding soft-deleted rows
func (r *MovieRepository) List(criteria map[string]any) ([]*models.CachedMovie, error) {
	query := `
		SELECT id, sequence, remote_id, title, genres, description, rating, created_at, updated_at, deleted_at
		FROM movies
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if title, ok := criteria["title"].(string); ok && title != "" {
		query += " AND title LIKE ?"
		args = append(args, "%"+title+"%")
	}

	if genres, ok := criteria["genres"].(string); ok && genres != "" {
		query += " AND genres LIKE ?"
		args = append(args, "%"+genres+"%")
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []*models.CachedMovie
	for rows.Next() {
		movie, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return movies, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *MovieRepository) scan(row rowScanner) (*models.CachedMovie, error) {
	var (
		movieID     string
		sequence    int
		remoteID    int64
		title       string
		genres      sql.NullString
		description sql.NullString
		rating      sql.NullFloat64
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := row.Scan(&movieID, &sequence, &remoteID, &title, &genres, &description, &rating, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan movie: %w", err)
	}

	movie := models.NewCachedMovie(sequence, models.Movie{
		ID:          remoteID,
		Title:       title,
		Genres:      genres.String,
		Description: description.String,
		Rating:      rating.Float64,
	})
	movie.SetID(movieID)
	movie.SetCreatedAt(createdAt)
	movie.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		movie.SetDeletedAt(&deletedAt.Time)
	}

	return movie, nil
}

func (r *MovieRepository) scanRow(row *sql.Row, id string) (*models.CachedMovie, error) {
	movie, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("movie not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie: %w", err)
	}
	return movie, nil
}
