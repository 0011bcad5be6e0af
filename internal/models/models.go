// package models defines the data model for the playlist resolver
package models

// Sentinel values substituted when an upstream field is absent or malformed.
const (
	UnknownTitle  = "Unknown"
	UnknownOwner  = "Unknown"
	UnknownTrack  = "Unknown Track"
	UnknownArtist = "Unknown Artist"
)

// PlaylistRef identifies a playlist on one of the two upstream APIs.
//
// The set of implementations is closed: [LegacyRef] and [ModernRef].
type PlaylistRef interface {
	// Kind names the upstream URL family, "legacy" or "modern".
	Kind() string
	playlistRef()
}

// LegacyRef addresses a playlist by owner handle and numeric kind.
type LegacyRef struct {
	Owner  string
	KindID string
}

func (LegacyRef) Kind() string { return "legacy" }
func (LegacyRef) playlistRef() {}

// ModernRef addresses a playlist by its UUID-like identifier.
type ModernRef struct {
	PlaylistID string
}

func (ModernRef) Kind() string { return "modern" }
func (ModernRef) playlistRef() {}

// Track is a single normalized playlist entry.
type Track struct {
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	CoverURL   string   `json:"cover_url"`
	IframeHTML string   `json:"iframe_html"`
}

// PlaylistResult is the normalized playlist returned to clients.
type PlaylistResult struct {
	Title  string  `json:"title"`
	Owner  string  `json:"owner"`
	Tracks []Track `json:"tracks"`
}
