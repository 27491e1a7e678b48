// Package logging builds the zerolog logger used by the CLI and server.
// Log output always goes to stderr so that reports written to stdout stay
// clean.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level and format.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // auto, console, json
	Verbose bool
	Quiet   bool
	NoColor bool
}

// New creates a logger writing to w.
func New(cfg Config, w io.Writer) zerolog.Logger {
	level := ParseLevel(cfg)

	var writer = w
	if useConsole(cfg.Format, w) {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor || os.Getenv("NO_COLOR") != "",
		}
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// ParseLevel resolves the effective level. Quiet wins over verbose, both
// win over the configured level. Unknown levels fall back to info.
func ParseLevel(cfg Config) zerolog.Level {
	switch {
	case cfg.Quiet:
		return zerolog.WarnLevel
	case cfg.Verbose:
		return zerolog.DebugLevel
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func useConsole(format string, w io.Writer) bool {
	switch strings.ToLower(format) {
	case "json":
		return false
	case "console", "text":
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
