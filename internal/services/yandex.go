// Yandex Music [Resolver] implementation
//
// Talks to two undocumented JSON endpoints: the legacy handler used by the web player
// and the newer api.music.yandex.by playlist API.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/soundgram/internal/models"
	"github.com/desertthunder/soundgram/internal/shared"
)

// browserHeaders impersonate the web player. Never mutated.
var browserHeaders = [...][2]string{
	{"User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"},
	{"Referer", "https://music.yandex.ru/"},
	{"Accept", "application/json, text/javascript, */*; q=0.01"},
	{"X-Retpath-Y", "https://music.yandex.ru/"},
	{"X-Requested-With", "XMLHttpRequest"},
	{"Accept-Language", "ru"},
}

// YandexService implements the [Resolver] interface for Yandex Music playlists.
type YandexService struct {
	legacyBaseURL  string
	modernBaseURL  string
	externalDomain string
	httpClient     *http.Client
	normalizer     *Normalizer
	logger         *log.Logger
}

// NewYandexService creates a resolver from upstream settings.
//
// A nil client gets a pooled client with the configured timeout; a nil logger discards output.
func NewYandexService(cfg shared.UpstreamConfig, client *http.Client, logger *log.Logger) *YandexService {
	if client == nil {
		client = shared.NewHTTPClient(cfg.Timeout)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &YandexService{
		legacyBaseURL:  strings.TrimRight(cfg.LegacyBaseURL, "/"),
		modernBaseURL:  strings.TrimRight(cfg.ModernBaseURL, "/"),
		externalDomain: cfg.ExternalDomain,
		httpClient:     client,
		normalizer:     NewNormalizer(cfg.EmbedBaseURL),
		logger:         shared.WithLogger(logger, "service", "yandex"),
	}
}

// Name returns the service name.
func (y *YandexService) Name() string {
	return "Yandex Music"
}

// ResolvePlaylist classifies rawURL, fetches the matching upstream document and normalizes it.
func (y *YandexService) ResolvePlaylist(ctx context.Context, rawURL string) (*models.PlaylistResult, error) {
	ref, err := ParsePlaylistURL(rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := y.fetch(ctx, ref)
	if err != nil {
		y.logger.Warn("upstream fetch failed", "kind", ref.Kind(), "error", err)
		return nil, err
	}

	return y.normalizer.Normalize(doc)
}

// PlaylistURL builds the upstream API URL for ref.
func (y *YandexService) PlaylistURL(ref models.PlaylistRef) string {
	switch r := ref.(type) {
	case models.LegacyRef:
		return fmt.Sprintf(
			"%s/handlers/playlist.jsx?owner=%s&kinds=%s&light=true&lang=ru&external-domain=%s",
			y.legacyBaseURL, ownerParam(r.Owner), r.KindID, y.externalDomain,
		)
	case models.ModernRef:
		return fmt.Sprintf("%s/playlist/%s?resumestream=false&richtracks=true", y.modernBaseURL, r.PlaylistID)
	}
	panic(fmt.Sprintf("services: unhandled playlist reference %T", ref))
}

// ownerParam query-encodes an owner handle captured from a link, where it may
// already be percent-encoded. Handles that do not unescape are encoded as-is.
func ownerParam(owner string) string {
	if decoded, err := url.PathUnescape(owner); err == nil {
		owner = decoded
	}
	return url.QueryEscape(owner)
}

// fetch performs the single upstream GET and maps its outcome onto the shared error set.
func (y *YandexService) fetch(ctx context.Context, ref models.PlaylistRef) (any, error) {
	apiURL := y.PlaylistURL(ref)
	y.logger.Debug("fetching playlist", "kind", ref.Kind(), "url", apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for _, h := range browserHeaders {
		req.Header.Set(h[0], h[1])
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, shared.ErrPlaylistNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &shared.UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrServiceUnavailable, err)
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCaptchaRequired, err)
	}

	return unwrapResult(doc), nil
}

// decodeDocument parses a single JSON value, keeping numbers as [json.Number].
func decodeDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("response has trailing data after JSON value")
	}
	return doc, nil
}

// unwrapResult strips one "result" envelope when present.
func unwrapResult(doc any) any {
	if m, ok := doc.(map[string]any); ok {
		if inner, ok := m["result"]; ok {
			return inner
		}
	}
	return doc
}
