// package formatter provides functions to export resolved playlists to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/desertthunder/soundgram/internal/models"
	"github.com/desertthunder/soundgram/internal/shared"
)

// Format names accepted by [Export].
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Formats lists every supported format name.
var Formats = []string{FormatText, FormatJSON, FormatMarkdown, FormatCSV}

// Export renders playlist in the named format.
func Export(playlist *models.PlaylistResult, format string, pretty bool) ([]byte, error) {
	switch format {
	case FormatText, "":
		return ExportToText(playlist)
	case FormatJSON:
		return ExportToJSON(playlist, pretty)
	case FormatMarkdown, "md":
		return ExportToMarkdown(playlist)
	case FormatCSV:
		return ExportToCSV(playlist)
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want one of %s)", shared.ErrInvalidFlag, format, strings.Join(Formats, ", "))
	}
}

// ExportToCSV converts a PlaylistResult to CSV format with columns: Position, Title, Authors, Cover URL
//
// Multiple authors are joined with "; ".
func ExportToCSV(playlist *models.PlaylistResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "Title", "Authors", "Cover URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, track := range playlist.Tracks {
		record := []string{
			fmt.Sprint(i + 1),
			track.Title,
			strings.Join(track.Authors, "; "),
			track.CoverURL,
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

// ExportToMarkdown converts a PlaylistResult to Markdown with cover thumbnails
func ExportToMarkdown(playlist *models.PlaylistResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Title))
	buf.WriteString(fmt.Sprintf("**Owner**: %s\n", playlist.Owner))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(playlist.Tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range playlist.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, strings.Join(track.Authors, ", "), track.Title))
		if track.CoverURL != "" {
			buf.WriteString(fmt.Sprintf("   ![Cover](%s)\n", track.CoverURL))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a PlaylistResult to plain text format
func ExportToText(playlist *models.PlaylistResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Title))
	buf.WriteString(fmt.Sprintf("Owner: %s\n", playlist.Owner))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(playlist.Tracks)))

	for i, track := range playlist.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, strings.Join(track.Authors, ", "), track.Title))
	}

	return buf.Bytes(), nil
}

// ExportToJSON encodes the playlist exactly as the HTTP endpoint returns it.
func ExportToJSON(playlist *models.PlaylistResult, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(playlist, "", "  ")
	} else {
		data, err = json.Marshal(playlist)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}
