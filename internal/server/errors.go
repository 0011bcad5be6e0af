package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/soundgram/internal/shared"
)

const (
	detailUnexpected       = "Неожиданная ошибка"
	detailInvalidRequest   = "Некорректный запрос"
	detailInvalidURL       = "Неверный формат ссылки"
	detailCaptcha          = "Яндекс требует капчу (попробуйте сменить IP)"
	detailNotFound         = "Плейлист не найден или доступ к нему закрыт"
	detailUnavailable      = "Ошибка соединения с источником"
	detailUpstream         = "Ошибка при запросе к источнику"
	detailMalformed        = "Некорректный ответ источника"
	detailMethodNotAllowed = "Метод не поддерживается"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusFor maps a resolver error onto the HTTP status and client-facing detail.
func StatusFor(err error) (int, string) {
	var upErr *shared.UpstreamError

	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		return http.StatusUnprocessableEntity, detailInvalidRequest
	case errors.Is(err, shared.ErrInvalidURL):
		return http.StatusBadRequest, detailInvalidURL
	case errors.Is(err, shared.ErrCaptchaRequired):
		return http.StatusForbidden, detailCaptcha
	case errors.Is(err, shared.ErrPlaylistNotFound):
		return http.StatusNotFound, detailNotFound
	case errors.Is(err, shared.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, detailUnavailable
	case errors.As(err, &upErr):
		return upErr.StatusCode, detailUpstream
	case errors.Is(err, shared.ErrMalformedDocument):
		return http.StatusBadGateway, detailMalformed
	default:
		return http.StatusInternalServerError, detailUnexpected
	}
}

func writeError(w http.ResponseWriter, err error) (int, error) {
	status, detail := StatusFor(err)
	return status, writeDetail(w, status, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) error {
	return writeJSON(w, status, ErrorResponse{Detail: detail})
}

// writeJSON sends v with status. Once the header is written the status can no
// longer change, so an encode failure is only reported to the caller.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
