// package formatter provides functions to export watchlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/reelcli/reel/internal/models"
	"github.com/reelcli/reel/internal/shared"
)

// ExportToCSV converts a Watchlist to CSV format with columns: ID, Title, Genres, Rating, Description
func ExportToCSV(watchlist *models.Watchlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Genres", "Rating", "Description"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range watchlist.Movies {
		record := []string{
			strconv.FormatInt(movie.ID, 10),
			movie.Title,
			shared.JoinGenres(movie.Genres),
			strconv.FormatFloat(movie.Rating, 'f', 1, 64),
			movie.Description,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Watchlist to Markdown format
func ExportToMarkdown(watchlist *models.Watchlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", watchlist.Title))

	buf.WriteString(fmt.Sprintf("**Movies**: %d\n", len(watchlist.Movies)))
	buf.WriteString(fmt.Sprintf("**Visibility**: %s\n\n", shared.VisibilityString(watchlist.Public)))

	buf.WriteString("## Movies\n\n")
	for i, movie := range watchlist.Movies {
		genrePart := ""
		if movie.Genres != "" {
			genrePart = fmt.Sprintf(" (%s)", shared.JoinGenres(movie.Genres))
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s [%s]\n", i+1, movie.Title, genrePart, shared.FormatRating(movie.Rating)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Watchlist to plain text format
func ExportToText(watchlist *models.Watchlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Watchlist: %s\n", watchlist.Title))
	buf.WriteString(fmt.Sprintf("Visibility: %s\n", shared.VisibilityString(watchlist.Public)))
	buf.WriteString(fmt.Sprintf("Movies: %d\n\n", len(watchlist.Movies)))

	for i, movie := range watchlist.Movies {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, movie.Title))
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of watchlist metadata (without movies)
func ToMetadataJSON(watchlist models.Watchlist) ([]byte, error) {
	watchlist.Movies = nil
	return shared.MarshalJSON(watchlist, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	MoviesFile   string
	MetadataFile string
}

// WriteCSVExport exports a watchlist to CSV format with accompanying metadata JSON file.
//
// Defaults to the watchlist ID as the base filename & creates {base}_movies.csv and {base}_metadata.json
func WriteCSVExport(watchlist *models.Watchlist, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = strconv.FormatInt(watchlist.ID, 10)
	}

	csvData, err := ExportToCSV(watchlist)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	moviesFile := baseFilepath + "_movies.csv"
	if err := os.WriteFile(moviesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(*watchlist)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		MoviesFile:   moviesFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteMarkdownExport exports a watchlist to Markdown format in a dedicated directory.
//
// Directory name defaults to the watchlist ID. Creates {dir}/README.md.
func WriteMarkdownExport(watchlist *models.Watchlist, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = strconv.FormatInt(watchlist.ID, 10)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(watchlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return mdFile, nil
}

// WriteTextExport exports a watchlist to plain text format.
//
// Defaults to {watchlist.ID}_movies.txt as the filename.
func WriteTextExport(watchlist *models.Watchlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%d_movies.txt", watchlist.ID)
	}

	textData, err := ExportToText(watchlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
