// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePathUsesXDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "astrograph", "app.log"), path)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{" WARN ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := parseLevel(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestInitWritesToStateFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv(levelEnvVar, "debug")
	t.Cleanup(func() { defaultLogger = nil })

	Init(Options{ToFile: true, Level: slog.LevelError})
	Debug("table loaded", "rows", 3)

	data, err := os.ReadFile(filepath.Join(dir, "astrograph", "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"table loaded"`)
	assert.Contains(t, string(data), `"rows":3`)
}

func TestHelpersWriteStructuredRecords(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv(levelEnvVar, "")
	t.Cleanup(func() { defaultLogger = nil })

	Init(Options{ToFile: true, Level: slog.LevelInfo})
	Info("chart written", "path", "out.png")
	Warn("viewer missing")
	Error("render failed", "format", "svg")

	data, err := os.ReadFile(filepath.Join(dir, "astrograph", "app.log"))
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, `"level":"INFO","msg":"chart written","path":"out.png"`)
	assert.Contains(t, log, `"level":"WARN","msg":"viewer missing"`)
	assert.Contains(t, log, `"level":"ERROR","msg":"render failed","format":"svg"`)
}
