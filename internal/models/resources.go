// Backend resource payloads
//
// Field names mirror the backend's wire format. The client treats these as
// opaque passthrough data; no cross-field invariants are enforced here.
package models

// Movie represents a catalog movie.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"movie_title"`
	Genres       string  `json:"movie_genres,omitempty"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	RatingsCount int     `json:"ratings_count,omitempty"`
	ReviewsCount int     `json:"reviews_count,omitempty"`
}

// Actor represents an actor profile.
type Actor struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	PreviousWork string `json:"previous_work,omitempty"`
	Birthday     string `json:"birthday,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	MovieCount   int    `json:"movie_count,omitempty"`
}

// Watchlist represents a user-curated movie collection.
type Watchlist struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	UserID int64   `json:"user_id,omitempty"`
	Public bool    `json:"is_public,omitempty"`
	Movies []Movie `json:"movies,omitempty"`
}

// RatedMovie represents a user's rating of a single movie.
type RatedMovie struct {
	ID      int64   `json:"id"`
	MovieID int64   `json:"movie_id,omitempty"`
	Title   string  `json:"movie_title,omitempty"`
	Rating  float64 `json:"rating"`
}

// Review represents a free-text review attached to a movie.
type Review struct {
	ID        int64  `json:"id"`
	MovieID   int64  `json:"movie_id,omitempty"`
	UserID    int64  `json:"user_id,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}
