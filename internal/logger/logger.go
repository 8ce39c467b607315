package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	log = slog.New(handler)
}

// SetLevel sets the logging level
func SetLevel(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	log = slog.New(handler)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	log.Error(msg, args...)
}
