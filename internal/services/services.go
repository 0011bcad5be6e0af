// package services defines interface Resolver for turning playlist URLs into normalized playlists
//
// Yandex Music (legacy handler and modern API)
package services

import (
	"context"

	"github.com/desertthunder/soundgram/internal/models"
)

// Resolver defines the boundary operation consumed by the HTTP and CLI layers.
type Resolver interface {
	// ResolvePlaylist classifies rawURL, fetches the upstream document and normalizes it.
	//
	// Errors are one of the sentinel errors in the shared package or a [*shared.UpstreamError].
	ResolvePlaylist(ctx context.Context, rawURL string) (*models.PlaylistResult, error)

	// Name returns the name of the service (e.g., "Yandex Music")
	Name() string
}
