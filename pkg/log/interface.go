// Package log provides structured logging for the binding layer.
//
// The package defines a minimal, slog-compatible logging interface so the
// backend can be swapped without touching call sites, together with standard
// attribute keys for the things this layer actually does: constructing
// interpreter objects, marshaling parameter bags, and reading properties
// back across the boundary. A zerolog-backed provider and an in-memory test
// logger are included.
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with Go's log/slog.
// Fields are alternating key-value pairs, as in slog.
type Logger interface {
	// Debug logs detailed diagnostic information, such as individual
	// bag-to-kwargs conversions.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop the
	// current operation, such as lossy read-back coercions.
	Warn(msg string, fields ...any)

	// Error logs failures, typically interpreter exceptions surfacing to
	// the host.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated on
	// every subsequent record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive attribute construction.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. Values match slog.Level.
type Level int

// Standard logging levels, value-compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It exists so tests and
// embedding applications can inject their own backend.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger scoped to a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum level for loggers created by this provider.
	SetLevel(level Level)
}
