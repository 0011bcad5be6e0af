package services

import (
	"fmt"
	"regexp"

	"github.com/desertthunder/soundgram/internal/models"
	"github.com/desertthunder/soundgram/internal/shared"
)

var (
	legacyPattern = regexp.MustCompile(`users/([^/]+)/playlists/(\d+)`)
	modernPattern = regexp.MustCompile(`playlists/([0-9a-fA-F\-]+)`)
)

// ParsePlaylistURL classifies a playlist URL into a [models.PlaylistRef].
//
// The legacy shape is tested before the modern one. Returns [shared.ErrInvalidURL] when neither matches.
func ParsePlaylistURL(rawURL string) (models.PlaylistRef, error) {
	if m := legacyPattern.FindStringSubmatch(rawURL); m != nil {
		return models.LegacyRef{Owner: m[1], KindID: m[2]}, nil
	}

	if m := modernPattern.FindStringSubmatch(rawURL); m != nil {
		return models.ModernRef{PlaylistID: m[1]}, nil
	}

	return nil, fmt.Errorf("%w: %q", shared.ErrInvalidURL, rawURL)
}
