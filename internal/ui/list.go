package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/shared"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = reviewItem{}
)

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie models.Movie
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string       { return i.movie.Title }
func (i movieItem) Description() string {
	desc := shared.FormatRating(i.movie.Rating)
	if i.movie.Genres != "" {
		desc = fmt.Sprintf("%s • %s", desc, shared.JoinGenres(i.movie.Genres))
	}
	return desc
}

// reviewItem wraps [models.Review] to implement [list.Item].
type reviewItem struct {
	review models.Review
}

func (i reviewItem) FilterValue() string { return i.review.Content }
func (i reviewItem) Title() string       { return i.review.Content }
func (i reviewItem) Description() string {
	return fmt.Sprintf("user %d • %s", i.review.UserID, i.review.CreatedAt)
}
