package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/soundgram/internal/models"
)

var styles = NewPalette("#FFCC00", "#04B575", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	index lipgloss.Style
	muted lipgloss.Style
}

func NewPalette(t, i, m string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		index: NewBold(i),
		muted: NewEm(m),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// RenderStyled renders the playlist for a terminal.
//
// lipgloss drops colors when the output is not a TTY, so the result degrades to plain text.
func RenderStyled(playlist *models.PlaylistResult) string {
	var b strings.Builder

	b.WriteString(styles.title.Render(playlist.Title))
	b.WriteString("\n")
	b.WriteString(styles.muted.Render(fmt.Sprintf("by %s · %d tracks", playlist.Owner, len(playlist.Tracks))))
	b.WriteString("\n\n")

	width := len(fmt.Sprint(len(playlist.Tracks)))
	for i, track := range playlist.Tracks {
		b.WriteString(styles.index.Render(fmt.Sprintf("%*d.", width, i+1)))
		b.WriteString(fmt.Sprintf(" %s - %s\n", strings.Join(track.Authors, ", "), track.Title))
	}

	return b.String()
}
