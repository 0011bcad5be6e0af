// package shared defines shared helpers
package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const logPrefix = "soundgram"

// NewLogger creates a soundgram-prefixed [log.Logger] writing text to w, with timestamps and caller reporting.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true, Prefix: logPrefix}
	return log.NewWithOptions(w, opts)
}

// ParseLogFormat maps a config value ("text", "json" or "logfmt") to a [log.Formatter].
func ParseLogFormat(format string) (log.Formatter, error) {
	switch format {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, format)
}

// SetLogFormat switches l to the named output format.
func SetLogFormat(l *log.Logger, format string) error {
	f, err := ParseLogFormat(format)
	if err != nil {
		return err
	}
	l.SetFormatter(f)
	return nil
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}
