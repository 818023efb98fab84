// SPDX-License-Identifier: MIT
package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestNewGologLogger(t *testing.T) {
	logger := NewGologLogger(golog.New())

	assert.NotNil(t, logger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}

func TestGologLogger_LevelControl(t *testing.T) {
	logger := NewGologLogger(golog.New())

	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())

	logger.SetLevel(LogLevelNone)
	assert.Equal(t, LogLevelNone, logger.GetLevel())
}

func TestGologLogger_WritesFormatted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewGologWriter(&buf, LogLevelDebug)

	logger.Debug("settled %s at %d", "s", 0)
	logger.Error("boom: %v", "disk")

	out := buf.String()
	assert.Contains(t, out, "settled s at 0")
	assert.Contains(t, out, "boom: disk")
}

func TestGologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewGologWriter(&buf, LogLevelError)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("hidden warn")
	logger.Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown error")
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	// Must not panic.
	l.Debug("x %d", 1)
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]LogLevel{
		"debug": LogLevelDebug,
		"info":  LogLevelInfo,
		"warn":  LogLevelWarn,
		"error": LogLevelError,
		"none":  LogLevelNone,
	} {
		got, ok := ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	got, ok := ParseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, LogLevelInfo, got)
	assert.Equal(t, "UNKNOWN(42)", LogLevel(42).String())
}
