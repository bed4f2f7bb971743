package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a leveled logger writing JSON to w. Unknown levels fall back to
// info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}

// NewConsole is New with human readable output, used by the CLI on stderr.
func NewConsole(level string, w io.Writer) zerolog.Logger {
	return New(level, zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
}
