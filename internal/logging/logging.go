package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup parses the level string and installs the default logger.
// machineOutput should be true when extraction rows go to stdout, so
// diagnostics stay machine-readable on stderr.
func Setup(level string, machineOutput bool) {
	Init(machineOutput, ParseLevel(level))
}

// Init creates and sets the package-level default slog logger. When
// machineOutput is true, uses JSONHandler on stderr (keeps diagnostics apart
// from the rows written to stdout). Otherwise uses TextHandler on stderr for
// human readability.
func Init(machineOutput bool, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if machineOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
