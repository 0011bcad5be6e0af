package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/soundgram/internal/models"
	"github.com/desertthunder/soundgram/internal/services"
	"github.com/desertthunder/soundgram/internal/shared"
	tu "github.com/desertthunder/soundgram/internal/testing"
)

func postPlaylist(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return resp.Detail
}

func TestPlaylistHandler(t *testing.T) {
	logger := shared.NewLogger(&bytes.Buffer{})

	t.Run("Routes", func(t *testing.T) {
		h := NewPlaylistHandler(&tu.MockResolver{}, logger)
		if routes := h.Routes(); len(routes) != 1 || routes[0] != "/playlist" {
			t.Errorf("expected [/playlist], got %v", routes)
		}
	})

	t.Run("success", func(t *testing.T) {
		mock := &tu.MockResolver{Result: &models.PlaylistResult{
			Title:  "Super Playlist",
			Owner:  "DJ Python",
			Tracks: []models.Track{{Title: "Cool Track", Authors: []string{"Best Artist"}}},
		}}
		rec := postPlaylist(t, NewPlaylistHandler(mock, logger), `{"url": "https://music.yandex.ru/users/u/playlists/1"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}

		var got models.PlaylistResult
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.Title != "Super Playlist" || got.Owner != "DJ Python" || len(got.Tracks) != 1 {
			t.Errorf("unexpected response %#v", got)
		}
		if urls := mock.URLs(); len(urls) != 1 || urls[0] != "https://music.yandex.ru/users/u/playlists/1" {
			t.Errorf("expected resolver called with posted URL, got %v", urls)
		}
	})

	t.Run("request validation", func(t *testing.T) {
		tc := []struct {
			name string
			body string
		}{
			{"not json", `not json`},
			{"missing url", `{}`},
			{"not a url", `{"url": "not_a_url"}`},
			{"wrong scheme", `{"url": "ftp://music.yandex.ru/playlists/ab"}`},
			{"no host", `{"url": "https:///playlists/ab"}`},
			{"url not a string", `{"url": 5}`},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				mock := &tu.MockResolver{}
				rec := postPlaylist(t, NewPlaylistHandler(mock, logger), tt.body)

				if rec.Code != http.StatusUnprocessableEntity {
					t.Errorf("expected status 422, got %d", rec.Code)
				}
				if len(mock.URLs()) != 0 {
					t.Error("expected resolver not to be called")
				}
			})
		}
	})

	t.Run("resolver errors", func(t *testing.T) {
		tc := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"invalid url", shared.ErrInvalidURL, http.StatusBadRequest},
			{"captcha", shared.ErrCaptchaRequired, http.StatusForbidden},
			{"not found", shared.ErrPlaylistNotFound, http.StatusNotFound},
			{"unavailable", shared.ErrServiceUnavailable, http.StatusServiceUnavailable},
			{"upstream", &shared.UpstreamError{StatusCode: http.StatusInternalServerError}, http.StatusInternalServerError},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				rec := postPlaylist(t, NewPlaylistHandler(&tu.MockResolver{Err: tt.err}, logger), `{"url": "https://google.com"}`)
				if rec.Code != tt.wantStatus {
					t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
				}
				if detail := decodeDetail(t, rec); detail == "" {
					t.Error("expected non-empty detail")
				}
			})
		}
	})

	t.Run("logs undelivered response", func(t *testing.T) {
		var buf bytes.Buffer
		h := NewPlaylistHandler(&tu.MockResolver{Result: &models.PlaylistResult{Title: "Mix"}}, shared.NewLogger(&buf))

		req := httptest.NewRequest(http.MethodPost, "/playlist", strings.NewReader(`{"url": "https://music.yandex.ru/playlists/ab"}`))
		h.ServeHTTP(brokenWriter{httptest.NewRecorder()}, req)

		if !strings.Contains(buf.String(), "response not delivered") {
			t.Errorf("expected write failure to be logged, got %q", buf.String())
		}
	})

	t.Run("rejects GET", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/playlist", nil)
		rec := httptest.NewRecorder()
		NewPlaylistHandler(&tu.MockResolver{}, logger).ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status 405, got %d", rec.Code)
		}
		if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
			t.Errorf("expected Allow: POST, got %s", allow)
		}
	})
}

// TestPlaylistEndpoint drives the full router against a fake upstream.
func TestPlaylistEndpoint(t *testing.T) {
	newApp := func(t *testing.T, upstream http.HandlerFunc) http.Handler {
		t.Helper()
		server := httptest.NewServer(upstream)
		t.Cleanup(server.Close)

		cfg := shared.DefaultConfig().Upstream
		cfg.LegacyBaseURL = server.URL
		cfg.ModernBaseURL = server.URL
		return NewRouter(services.NewYandexService(cfg, server.Client(), nil), nil)
	}

	t.Run("success", func(t *testing.T) {
		app := newApp(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"result": {"title": "API Test Playlist", "owner": {"name": "API Tester"}, "tracks": []}}`))
		})

		rec := postPlaylist(t, app, `{"url": "https://music.yandex.ru/users/api_user/playlists/100"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var got map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got["title"] != "API Test Playlist" {
			t.Errorf("expected title 'API Test Playlist', got %v", got["title"])
		}
		if tracks, ok := got["tracks"].([]any); !ok || len(tracks) != 0 {
			t.Errorf("expected empty tracks array, got %v", got["tracks"])
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		app := newApp(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("expected no upstream call")
		})

		rec := postPlaylist(t, app, `{"url": "not_a_url"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected status 422, got %d", rec.Code)
		}

		rec = postPlaylist(t, app, `{"url": "https://google.com"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
		if detail := decodeDetail(t, rec); detail != "Неверный формат ссылки" {
			t.Errorf("unexpected detail %q", detail)
		}
	})

	t.Run("captcha", func(t *testing.T) {
		app := newApp(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<!DOCTYPE html>...captcha..."))
		})

		rec := postPlaylist(t, app, `{"url": "https://music.yandex.ru/users/bot/playlists/1"}`)
		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status 403, got %d", rec.Code)
		}
	})

	t.Run("service unavailable", func(t *testing.T) {
		cfg := shared.DefaultConfig().Upstream
		client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("network error"))}
		app := NewRouter(services.NewYandexService(cfg, client, nil), nil)

		rec := postPlaylist(t, app, `{"url": "https://music.yandex.ru/users/fail/playlists/500"}`)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", rec.Code)
		}
		if detail := decodeDetail(t, rec); detail != "Ошибка соединения с источником" {
			t.Errorf("unexpected detail %q", detail)
		}
	})

	t.Run("health", func(t *testing.T) {
		app := NewRouter(&tu.MockResolver{}, nil)
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		if rec.Header().Get(RequestIDHeader) == "" {
			t.Error("expected request id header")
		}
	})
}
