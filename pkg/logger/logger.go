package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Service is stamped on every event written by the daemon logger.
const Service = "walletd"

// New returns the daemon logger on stdout. pretty switches to console output
// for local runs.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return daemonLogger(level, w)
}

func daemonLogger(level string, w io.Writer) zerolog.Logger {
	return NewWithWriter(level, w).
		With().
		Str("service", Service).
		Caller().
		Logger()
}

// NewWithWriter returns a bare JSON logger on w with timestamps only.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// WithComponent tags every event of log with the emitting component.
func WithComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// ParseLevel maps a config level name to a zerolog level. Names are case
// insensitive; blank or unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}
