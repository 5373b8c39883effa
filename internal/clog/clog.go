// Package clog is the compiler core's minimal diagnostic logger: a single
// package-level slog.Logger at Info level, dropping to Debug when
// CARRELTEX_DEBUG is set, with timestamps and level stripped for clean
// trace output. Nothing the core emits here is part of the wire contract —
// report_json and tex_stats_json never go through this package.
package clog

import (
	"log/slog"
	"os"
)

var logger = newLogger()

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("CARRELTEX_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Debug logs a trace-level diagnostic. Never gates behavior: callers must
// reach the same result whether or not CARRELTEX_DEBUG is set.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}
