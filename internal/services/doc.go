// Package services implements the [Resolver] interface for Yandex Music playlists.
//
// # Pipeline
//
// Resolution is three strictly sequential steps with no retries:
//
//  1. [ParsePlaylistURL] classifies the URL into a [models.LegacyRef] or [models.ModernRef].
//  2. [YandexService] builds the upstream URL for that reference and performs a single GET
//     carrying a fixed set of browser headers. The upstream rejects requests without them.
//  3. [Normalizer] walks the decoded document and produces a [models.PlaylistResult].
//
// # URL Shapes
//
//   - Legacy: .../users/<owner>/playlists/<digits>, served by /handlers/playlist.jsx
//   - Modern: .../playlists/<hex-or-dash-id>, served by the api.music.yandex.by playlist endpoint
//
// The legacy pattern is tried first, so a URL matching both is treated as legacy.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrInvalidURL] : URL matches neither shape
//   - [shared.ErrCaptchaRequired] : 2xx response whose body is not JSON
//   - [shared.ErrPlaylistNotFound] : upstream 404
//   - [shared.ErrServiceUnavailable] : DNS, timeout, connection or body read failure
//   - [shared.UpstreamError] : any other non-2xx status, carried through unchanged
//   - [shared.ErrMalformedDocument] : decoded document is not a JSON object
//
// # Document Shapes
//
// The two APIs disagree on layout. Playlist fields live either at the top level or under
// "playlist", tracks either under "tracks" or "playlist.tracks", and track entries may be
// wrapped under "track". The normalizer tries exactly those paths and never searches deeper.
// Missing per-track fields become sentinel values instead of errors.
package services
