// SPDX-License-Identifier: MIT

// Package log defines the small logging surface used across shortestpath.
//
// Library code logs through the Logger interface and defaults to NoOpLogger,
// so importing the finder never writes to stderr. Binaries wire a
// GologLogger backed by github.com/kataras/golog.
package log

import "fmt"

// LogLevel represents logging severity.
type LogLevel int

const (
	// LogLevelDebug for per-step traces (settle/relax events).
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general informational messages.
	LogLevelInfo
	// LogLevelWarn for warning messages.
	LogLevelWarn
	// LogLevelError for error messages.
	LogLevelError
	// LogLevelNone disables all logging.
	LogLevelNone
)

// Logger is the printf-style logging interface.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

var _ Logger = NoOpLogger{}

// Debug does nothing.
func (NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (NoOpLogger) Info(string, ...any) {}

// Warn does nothing.
func (NoOpLogger) Warn(string, ...any) {}

// Error does nothing.
func (NoOpLogger) Error(string, ...any) {}

// String returns the string representation of LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// gologName maps a LogLevel to the level name understood by golog.
func (l LogLevel) gologName() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "disable"
	default:
		return "info"
	}
}

// ParseLevel converts a case-sensitive lower-case name ("debug", "info",
// "warn", "error", "none") to a LogLevel. Unknown names yield LogLevelInfo
// and ok == false.
func ParseLevel(name string) (level LogLevel, ok bool) {
	switch name {
	case "debug":
		return LogLevelDebug, true
	case "info":
		return LogLevelInfo, true
	case "warn":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	case "none":
		return LogLevelNone, true
	default:
		return LogLevelInfo, false
	}
}
