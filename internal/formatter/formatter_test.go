package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/reelcli/reel/internal/models"
	th "github.com/reelcli/reel/internal/testing"
)

func exportFixture() *models.Watchlist {
	return &models.Watchlist{
		ID:     12,
		Title:  "Heist Classics",
		UserID: 7,
		Public: true,
		Movies: []models.Movie{
			{
				ID:          42,
				Title:       "Heat",
				Genres:      "Action|Crime|Thriller",
				Rating:      4.3,
				Description: "A heist crew and a detective circle each other in LA.",
			},
			{
				ID:     44,
				Title:  "Collateral",
				Rating: 0,
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(exportFixture())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Genres,Rating,Description") {
			t.Errorf("CSV missing headers, got: %s", output)
		}

		if !strings.Contains(output, "42") {
			t.Errorf("CSV missing movie ID")
		}
		if !strings.Contains(output, "Heat") {
			t.Errorf("CSV missing movie title")
		}
		if !strings.Contains(output, "Action, Crime, Thriller") {
			t.Errorf("CSV missing joined genres, got: %s", output)
		}
		if !strings.Contains(output, "4.3") {
			t.Errorf("CSV missing rating")
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(exportFixture())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Heist Classics") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Movies**: 2") {
			t.Errorf("Markdown missing movie count")
		}
		if !strings.Contains(output, "**Visibility**: Public") {
			t.Errorf("Markdown missing visibility")
		}

		if !strings.Contains(output, "## Movies") {
			t.Errorf("Markdown missing movies section")
		}
		if !strings.Contains(output, "1. Heat (Action, Crime, Thriller) [4.3/5.0]") {
			t.Errorf("Markdown missing first movie, got: %s", output)
		}
		if !strings.Contains(output, "2. Collateral [unrated]") {
			t.Errorf("Markdown missing unrated movie without genres")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		watchlist := exportFixture()
		watchlist.Public = false

		data, err := ExportToText(watchlist)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Watchlist: Heist Classics") {
			t.Errorf("Text missing watchlist title")
		}
		if !strings.Contains(output, "Visibility: Private") {
			t.Errorf("Text missing visibility")
		}
		if !strings.Contains(output, "Movies: 2") {
			t.Errorf("Text missing movie count")
		}

		if !strings.Contains(output, "1. Heat") {
			t.Errorf("Text missing first movie")
		}
		if !strings.Contains(output, "2. Collateral") {
			t.Errorf("Text missing second movie")
		}
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		data, err := ToMetadataJSON(*exportFixture())
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Heist Classics") {
			t.Errorf("JSON missing title")
		}
		if strings.Contains(output, "Heat") {
			t.Errorf("metadata JSON should not include movies, got: %s", output)
		}
	})
}

func TestWriters(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			result, err := WriteCSVExport(exportFixture(), "")
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}

			if result.MoviesFile != "12_movies.csv" {
				t.Errorf("Expected movies file '12_movies.csv', got '%s'", result.MoviesFile)
			}
			if result.MetadataFile != "12_metadata.json" {
				t.Errorf("Expected metadata file '12_metadata.json', got '%s'", result.MetadataFile)
			}

			th.AssertFileExists(t, result.MoviesFile)
			th.AssertFileExists(t, result.MetadataFile)

			csvContent := th.MustReadFile(t, result.MoviesFile)
			if !strings.Contains(csvContent, "ID,Title,Genres,Rating,Description") {
				t.Errorf("CSV missing headers")
			}
			if !strings.Contains(csvContent, "Heat") {
				t.Errorf("CSV missing movie data")
			}

			metadataContent := th.MustReadFile(t, result.MetadataFile)
			if !strings.Contains(metadataContent, "Heist Classics") {
				t.Errorf("Metadata JSON missing expected fields")
			}
		})

		t.Run("WithCustomPath", func(t *testing.T) {
			base := filepath.Join(t.TempDir(), "custom_export")

			result, err := WriteCSVExport(exportFixture(), base)
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}

			if result.MoviesFile != base+"_movies.csv" {
				t.Errorf("Expected '%s_movies.csv', got '%s'", base, result.MoviesFile)
			}

			th.AssertFileExists(t, result.MoviesFile)
			th.AssertFileExists(t, result.MetadataFile)
		})
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "heist")

		mdFile, err := WriteMarkdownExport(exportFixture(), outputDir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		if mdFile != outputDir+"/README.md" {
			t.Errorf("Expected README.md under %s, got '%s'", outputDir, mdFile)
		}
		th.AssertFileExists(t, mdFile)

		content := th.MustReadFile(t, mdFile)
		if !strings.Contains(content, "# Heist Classics") {
			t.Errorf("Markdown missing title")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			path, err := WriteTextExport(exportFixture(), "")
			if err != nil {
				t.Fatalf("WriteTextExport failed: %v", err)
			}

			if path != "12_movies.txt" {
				t.Errorf("Expected '12_movies.txt', got '%s'", path)
			}
			th.AssertFileExists(t, path)
		})

		t.Run("WithCustomPath", func(t *testing.T) {
			target := filepath.Join(t.TempDir(), "list.txt")

			path, err := WriteTextExport(exportFixture(), target)
			if err != nil {
				t.Fatalf("WriteTextExport failed: %v", err)
			}

			if path != target {
				t.Errorf("Expected '%s', got '%s'", target, path)
			}

			content := th.MustReadFile(t, path)
			if !strings.Contains(content, "Watchlist: Heist Classics") {
				t.Errorf("Text export missing header")
			}
		})
	})
}
