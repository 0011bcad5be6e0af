package shared

import (
	"net/http"
	"time"
)

const defaultUpstreamTimeout = 15 * time.Second

// NewHTTPClient returns a pooled [http.Client] safe for concurrent use by all requests.
//
// Redirects are followed with the stdlib policy. A zero timeout falls back to 15 seconds.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(timeout),
	}
}

func newTransport(timeout time.Duration) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = timeout
	return t
}
