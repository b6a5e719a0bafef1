// Package config holds loctok's cross-cutting configuration concerns: flag
// binding and validation, the optional .loctok.toml project defaults, and
// logging setup.
//
// Logging is log/slog throughout. Everything goes to stderr so stdout stays
// reserved for the rendered report, which must be byte-stable and pipeable.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging installs the global slog logger at the given level and
// format ("json" or anything else for text), writing to stderr. Safe to
// call more than once; the last call wins.
func SetupLogging(level slog.Level, format string) {
	SetupLoggingWithWriter(level, format, os.Stderr)
}

// SetupLoggingWithWriter is SetupLogging with an explicit destination, so
// tests can capture output in a buffer.
func SetupLoggingWithWriter(level slog.Level, format string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ResolveLogLevel picks the effective log level from the --verbose/--quiet
// flags and the LOCTOK_DEBUG environment variable. LOCTOK_DEBUG=1 beats
// everything, then verbose (debug), then quiet (error), then info.
func ResolveLogLevel(verbose, quiet bool) slog.Level {
	switch {
	case os.Getenv("LOCTOK_DEBUG") == "1":
		return slog.LevelDebug
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ResolveLogFormat returns "json" when LOCTOK_LOG_FORMAT says so
// (case-insensitive), otherwise "text".
func ResolveLogFormat() string {
	if strings.EqualFold(os.Getenv("LOCTOK_LOG_FORMAT"), "json") {
		return "json"
	}
	return "text"
}

// NewLogger returns the default logger tagged with a "component" attribute
// naming the subsystem (walker, filestat, gitignore, ...), so one run's
// interleaved output can be filtered per layer.
func NewLogger(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
