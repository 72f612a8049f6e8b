// Package logger is a thin slog wrapper shared by the server and the tui.
// Production logs JSON to stdout, everything else logs text to stderr so
// terminal UIs keep stdout clean.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger = slog.New(newHandler(os.Getenv("ENVIRONMENT")))

func newHandler(env string) slog.Handler {
	if env == "production" {
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: levelFromEnv(slog.LevelInfo),
		})
	}

	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(slog.LevelDebug),
	})
}

// LOG_LEVEL overrides the environment default
func levelFromEnv(fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return fallback
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// ErrorErr logs msg with the error attached as a structured field.
func ErrorErr(err error, msg string, args ...any) {
	defaultLogger.Error(msg, append(args, "error", err)...)
}

// Fatal logs at error level and exits. Startup paths only.
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
