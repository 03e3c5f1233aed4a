// Package logging wires slog for the advisor service: text output on stdout
// for operators, JSON lines in a size-capped weekly file for ingestion, and a
// stderr fallback for anything logged before setup.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// fallback handles log calls made before InitLogger runs, such as
// configuration errors during startup. Level is wide open so nothing is lost.
var fallback = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}))

var active *slog.Logger

// InitLogger builds the service logger and installs it as the slog default.
// retentionWeeks bounds how long old log files are kept; maxFileSize caps a
// single file before a continuation file is started.
func InitLogger(dir string, retentionWeeks int, maxFileSize int64) {
	active = NewLogger(dir, retentionWeeks, maxFileSize)
	slog.SetDefault(active)
}

// Logger returns the configured service logger, or the stderr fallback when
// logging has not been initialized.
func Logger() *slog.Logger {
	if active == nil {
		return fallback
	}
	return active
}

func Info(msg string, args ...any)  { Logger().Info(msg, args...) }
func Warn(msg string, args ...any)  { Logger().Warn(msg, args...) }
func Error(msg string, args ...any) { Logger().Error(msg, args...) }
func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// NewLogger builds a logger writing to both stdout and a weekly file under
// dir. When the directory cannot be created the file half is skipped and the
// logger is console-only.
func NewLogger(dir string, retentionWeeks int, maxFileSize int64) *slog.Logger {
	console := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger := slog.New(console)
		logger.Error("Log directory unavailable, logging to console only", "dir", dir, "error", err)
		return logger
	}

	file := slog.NewJSONHandler(newWeeklyFile(dir, retentionWeeks, maxFileSize), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return slog.New(teeHandler{console, file})
}

// teeHandler fans one record out to the console and file handlers.
type teeHandler struct {
	console slog.Handler
	file    slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.console.Enabled(ctx, level) || t.file.Enabled(ctx, level)
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	if t.console.Enabled(ctx, r.Level) {
		firstErr = t.console.Handle(ctx, r)
	}
	if t.file.Enabled(ctx, r.Level) {
		if err := t.file.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{t.console.WithAttrs(attrs), t.file.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{t.console.WithGroup(name), t.file.WithGroup(name)}
}
