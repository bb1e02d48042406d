// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger wraps a process-wide slog.Logger. Logs always go to a file
// under the XDG state directory; CLI runs can mirror them to stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation

const appName = "astrograph"

// levelEnvVar overrides the log level ("debug", "info", "warn", "error").
const levelEnvVar = "ASTROGRAPH_LOG_LEVEL"

var defaultLogger *slog.Logger

// Options controls where logs are written.
type Options struct {
	// ToFile appends JSON logs to the state-directory log file.
	ToFile bool
	// ToStderr mirrors logs to stderr. Must stay false while the TUI owns the terminal.
	ToStderr bool
	// Level is used when ASTROGRAPH_LOG_LEVEL is unset.
	Level slog.Level
}

// LogFilePath determines the path for the application log file based on XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, appName, "app.log"), nil
}

// parseLevel maps a level name to a slog.Level.
func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// openLogFile creates the log directory and opens the log file for appending.
func openLogFile() (*os.File, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	// 0640: user rw, group r, others ---
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// Init configures the default logger. It should be called once at startup;
// helpers called before Init fall back to file-only logging.
func Init(opts Options) {
	var writers []io.Writer

	if opts.ToFile {
		file, err := openLogFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v. File logging disabled.\n", err)
		} else {
			// The OS closes the handle on exit; a CLI run is short-lived.
			writers = append(writers, file)
		}
	}
	if opts.ToStderr {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	level := opts.Level
	if name := os.Getenv(levelEnvVar); name != "" {
		if envLevel, ok := parseLevel(name); ok {
			level = envLevel
		}
	}

	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)
}

// SetLogger replaces the default logger instance, e.g. to capture logs in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		Init(Options{ToFile: true, Level: slog.LevelInfo})
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
