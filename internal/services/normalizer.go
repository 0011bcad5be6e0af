package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/soundgram/internal/models"
	"github.com/desertthunder/soundgram/internal/shared"
)

const (
	defaultEmbedBaseURL = "https://music.yandex.ru"
	coverPlaceholder    = "%%"
	coverSize           = "400x400"
)

const iframeTemplate = `<iframe frameborder="0" style="border:none;width:100%%;height:180px;" ` +
	`width="100%%" height="180" src="%s/iframe/album/%s/track/%s"></iframe>`

// Normalizer converts decoded upstream documents into [models.PlaylistResult] values.
//
// It holds no per-request state and is safe for concurrent use.
type Normalizer struct {
	embedBaseURL string
}

// NewNormalizer creates a normalizer whose embed markup points at embedBaseURL.
func NewNormalizer(embedBaseURL string) *Normalizer {
	if embedBaseURL == "" {
		embedBaseURL = defaultEmbedBaseURL
	}
	return &Normalizer{embedBaseURL: strings.TrimRight(embedBaseURL, "/")}
}

// Normalize extracts playlist metadata and tracks from doc.
//
// Only a document that is not a JSON object fails; every missing field falls back to a sentinel.
func (n *Normalizer) Normalize(doc any) (*models.PlaylistResult, error) {
	root, ok := asObject(doc)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", shared.ErrMalformedDocument, doc)
	}

	title, owner := parseMetadata(root)
	raw := trackEntries(root)

	tracks := make([]models.Track, 0, len(raw))
	for _, item := range raw {
		tracks = append(tracks, n.parseTrack(item))
	}

	return &models.PlaylistResult{Title: title, Owner: owner, Tracks: tracks}, nil
}

// parseMetadata prefers fields under "playlist" and falls back to the top level.
func parseMetadata(root map[string]any) (title, owner string) {
	if playlist, ok := asObject(root["playlist"]); ok {
		ownerObj, ok := asObject(playlist["owner"])
		if !ok || len(ownerObj) == 0 {
			ownerObj, _ = asObject(root["owner"])
		}
		return textOr(playlist["title"], models.UnknownTitle), ownerName(ownerObj)
	}

	ownerObj, _ := asObject(root["owner"])
	return textOr(root["title"], models.UnknownTitle), ownerName(ownerObj)
}

// ownerName resolves display name, then login, then the sentinel.
func ownerName(owner map[string]any) string {
	if name, ok := asText(owner["name"]); ok {
		return name
	}
	return textOr(owner["login"], models.UnknownOwner)
}

// trackEntries returns "tracks" from the top level, else from "playlist".
func trackEntries(root map[string]any) []any {
	if raw, ok := root["tracks"]; ok {
		list, _ := raw.([]any)
		return list
	}
	if playlist, ok := asObject(root["playlist"]); ok {
		list, _ := playlist["tracks"].([]any)
		return list
	}
	return nil
}

func (n *Normalizer) parseTrack(item any) models.Track {
	track, _ := asObject(item)
	if inner, ok := asObject(track["track"]); ok {
		track = inner
	}

	return models.Track{
		Title:      textOr(track["title"], models.UnknownTrack),
		Authors:    authorNames(track["artists"]),
		CoverURL:   coverURL(track["coverUri"]),
		IframeHTML: n.iframe(track),
	}
}

func authorNames(v any) []string {
	artists, _ := v.([]any)

	names := make([]string, 0, len(artists))
	for _, a := range artists {
		artist, ok := asObject(a)
		if !ok {
			continue
		}
		if name, ok := asText(artist["name"]); ok {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return []string{models.UnknownArtist}
	}
	return names
}

func coverURL(v any) string {
	uri, ok := asText(v)
	if !ok {
		return ""
	}
	return "https://" + strings.ReplaceAll(uri, coverPlaceholder, coverSize)
}

// iframe renders the embedded player for the track's first album, or "" when either id is unknown.
func (n *Normalizer) iframe(track map[string]any) string {
	trackID, ok := asText(track["id"])
	if !ok {
		return ""
	}

	albums, _ := track["albums"].([]any)
	if len(albums) == 0 {
		return ""
	}
	album, _ := asObject(albums[0])
	albumID, ok := asText(album["id"])
	if !ok {
		return ""
	}

	return fmt.Sprintf(iframeTemplate, n.embedBaseURL, albumID, trackID)
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asText renders non-empty strings and JSON numbers as text.
func asText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

func textOr(v any, fallback string) string {
	if s, ok := asText(v); ok {
		return s
	}
	return fallback
}
