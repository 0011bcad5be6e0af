package formatter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/soundgram/internal/models"
	"github.com/desertthunder/soundgram/internal/shared"
)

func samplePlaylist() *models.PlaylistResult {
	return &models.PlaylistResult{
		Title: "Super Playlist",
		Owner: "DJ Python",
		Tracks: []models.Track{
			{
				Title:      "Cool Track",
				Authors:    []string{"Best Artist", "Guest"},
				CoverURL:   "https://example.com/cover/400x400",
				IframeHTML: `<iframe src="https://music.yandex.ru/iframe/album/222/track/111"></iframe>`,
			},
			{
				Title:   "Song, With Comma",
				Authors: []string{models.UnknownArtist},
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(samplePlaylist())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "Position,Title,Authors,Cover URL" {
			t.Errorf("CSV missing headers, got: %s", lines[0])
		}
		if lines[1] != "1,Cool Track,Best Artist; Guest,https://example.com/cover/400x400" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if lines[2] != `2,"Song, With Comma",Unknown Artist,` {
			t.Errorf("expected quoted title and empty cover, got: %s", lines[2])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(samplePlaylist())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Super Playlist",
			"**Owner**: DJ Python",
			"**Tracks**: 2",
			"1. Best Artist, Guest - Cool Track",
			"![Cover](https://example.com/cover/400x400)",
			"2. Unknown Artist - Song, With Comma",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
		if strings.Count(output, "![Cover]") != 1 {
			t.Error("expected cover only for tracks that have one")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(samplePlaylist())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "Playlist: Super Playlist\nOwner: DJ Python\nTracks: 2\n\n") {
			t.Errorf("unexpected header, got:\n%s", output)
		}
		if !strings.Contains(output, "1. Best Artist, Guest - Cool Track\n") {
			t.Errorf("missing track line, got:\n%s", output)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		for _, pretty := range []bool{true, false} {
			data, err := ExportToJSON(samplePlaylist(), pretty)
			if err != nil {
				t.Fatalf("ExportToJSON failed: %v", err)
			}

			var got map[string]any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if got["title"] != "Super Playlist" || got["owner"] != "DJ Python" {
				t.Errorf("unexpected metadata %v", got)
			}
			tracks := got["tracks"].([]any)
			first := tracks[0].(map[string]any)
			for _, key := range []string{"title", "authors", "cover_url", "iframe_html"} {
				if _, ok := first[key]; !ok {
					t.Errorf("expected key %q in track JSON", key)
				}
			}
			if pretty != strings.Contains(string(data), "\n  ") {
				t.Errorf("pretty=%v produced unexpected indentation", pretty)
			}
		}
	})

	t.Run("Export", func(t *testing.T) {
		for _, format := range append(Formats, "", "md") {
			if _, err := Export(samplePlaylist(), format, true); err != nil {
				t.Errorf("format %q: unexpected error %v", format, err)
			}
		}

		if _, err := Export(samplePlaylist(), "xml", false); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("RenderStyled", func(t *testing.T) {
		output := RenderStyled(samplePlaylist())
		for _, want := range []string{"Super Playlist", "by DJ Python · 2 tracks", "Best Artist, Guest - Cool Track"} {
			if !strings.Contains(output, want) {
				t.Errorf("styled output missing %q, got:\n%s", want, output)
			}
		}
	})
}
