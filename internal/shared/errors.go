package shared

import (
	"fmt"
	"net/http"
)

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidURL      = fmt.Errorf("invalid playlist URL format")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Upstream errors
	ErrCaptchaRequired    = fmt.Errorf("upstream requires captcha")
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrMalformedDocument  = fmt.Errorf("malformed upstream document")
)

// UpstreamError reports a non-2xx upstream status other than 404.
//
// The status code is passed through to the client unchanged.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
}
