package shared

import (
	"fmt"
	"strings"
)

// VisibilityString converts a public flag to a display string.
func VisibilityString(public bool) string {
	if public {
		return "Public"
	}
	return "Private"
}

// FormatRating renders a 1.0-5.0 rating for display.
func FormatRating(rating float64) string {
	if rating <= 0 {
		return "unrated"
	}
	return fmt.Sprintf("%.1f/5.0", rating)
}

// JoinGenres renders a pipe-separated genre string as a comma list.
func JoinGenres(genres string) string {
	if genres == "" {
		return ""
	}
	parts := strings.Split(genres, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
