package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/soundgram/internal/services"
	"github.com/desertthunder/soundgram/internal/shared"
)

const maxRequestBody = 1 << 20

// PlaylistRequest is the body accepted by POST /playlist.
type PlaylistRequest struct {
	URL string `json:"url"`
}

// PlaylistHandler resolves playlist URLs posted by clients.
// Implements the Handler interface for registration with a Router.
type PlaylistHandler struct {
	resolver services.Resolver
	logger   *log.Logger
}

// NewPlaylistHandler creates a handler backed by resolver.
func NewPlaylistHandler(resolver services.Resolver, logger *log.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		resolver: resolver,
		logger:   shared.WithLogger(logger, "handler", "playlist"),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *PlaylistHandler) Routes() []string {
	return []string{"/playlist"}
}

// ServeHTTP decodes and validates the request, resolves the playlist and writes the result.
func (h *PlaylistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.logWriteError(r, writeDetail(w, http.StatusMethodNotAllowed, detailMethodNotAllowed))
		return
	}

	req, err := decodePlaylistRequest(w, r)
	if err != nil {
		h.logger.Debug("rejected request", "error", err)
		_, werr := writeError(w, err)
		h.logWriteError(r, werr)
		return
	}

	result, err := h.resolver.ResolvePlaylist(r.Context(), req.URL)
	if err != nil {
		status, werr := writeError(w, err)
		h.logger.Warn("resolve failed", "url", req.URL, "status", status, "error", err, "request_id", RequestIDFrom(r.Context()))
		h.logWriteError(r, werr)
		return
	}

	h.logWriteError(r, writeJSON(w, http.StatusOK, result))
}

func (h *PlaylistHandler) logWriteError(r *http.Request, err error) {
	if err != nil {
		h.logger.Error("response not delivered", "error", err, "request_id", RequestIDFrom(r.Context()))
	}
}

func decodePlaylistRequest(w http.ResponseWriter, r *http.Request) (*PlaylistRequest, error) {
	var req PlaylistRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: body is not valid JSON: %v", shared.ErrInvalidInput, err)
	}

	if err := validateURL(req.URL); err != nil {
		return nil, err
	}
	return &req, nil
}

// validateURL accepts absolute http(s) URLs with a host.
func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: url is required", shared.ErrInvalidInput)
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: url: %v", shared.ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", shared.ErrInvalidInput)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url host is required", shared.ErrInvalidInput)
	}
	return nil
}
