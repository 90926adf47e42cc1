// Package logging is ZORA's ambient structured-logging layer: a
// package-level slog.Logger plus Info/Warn/Error/Debug wrappers, in the
// shape of teacher's internal/log package, generalized so the level can
// be set directly from the CLI's --loglevel flag (spec.md §6) instead of
// only from an environment variable.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide structured logger every ZORA package logs
// through. cmd/zora's main calls Initialize once, from the parsed
// --loglevel flag, before invoking pkg/zora.Generate.
var Logger *slog.Logger

// Initialize sets up Logger at the given level string ("debug", "info",
// "warn"/"warning", "error"; anything else defaults to info), writing
// JSON records to stderr so stdout stays free for the patch/ROM output
// path a caller may pipe elsewhere.
func Initialize(level string) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	Logger = logger
	slog.SetDefault(logger)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureInitialized() {
	if Logger == nil {
		Initialize(os.Getenv("ZORA_LOGLEVEL"))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	ensureInitialized()
	Logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	ensureInitialized()
	Logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	ensureInitialized()
	Logger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	ensureInitialized()
	Logger.Debug(msg, args...)
}

// WithContext returns a child logger carrying the given key/value fields.
func WithContext(args ...any) *slog.Logger {
	ensureInitialized()
	return Logger.With(args...)
}
