// Package logging builds the process-wide slog.Logger.
//
// The "json" format writes machine-readable lines for log aggregators; the
// "text" format writes colored, human-oriented lines via tint for local
// development.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger writing to w at the given level (debug, info, warn,
// error; anything else means info) in the given format ("text" or "json";
// anything else means json).
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	if format == "text" {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// ParseLevel maps a LOG_LEVEL value to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
