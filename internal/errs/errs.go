// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package errs defines the error types surfaced to the user. Every type names
// the offending field, file or token so the CLI can print a single useful line.
package errs

import (
	"fmt"
	"strconv"
)

// MissingInputError is returned when no input data file was configured.
type MissingInputError struct{}

func (e *MissingInputError) Error() string {
	return "no input file: pass --file or set 'file' in the imported config"
}

// MissingAxisError is returned when an axis is not configured or names a
// column that does not exist in the table.
type MissingAxisError struct {
	Field  string // "x_axis" or "y_axes"
	Column string // empty when the axis was not configured at all
}

func (e *MissingAxisError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("missing required axis setting '%s'", e.Field)
	}
	return fmt.Sprintf("%s: column %q not found in table", e.Field, e.Column)
}

// InvalidValueError reports a configuration value that could not be parsed
// or is out of range.
type InvalidValueError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *InvalidValueError) Error() string {
	msg := fmt.Sprintf("invalid value for '%s'", e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf(": %q", e.Value)
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// InvalidColumnMappingError identifies a single malformed column_names token.
type InvalidColumnMappingError struct {
	Token string
}

func (e *InvalidColumnMappingError) Error() string {
	return fmt.Sprintf("invalid column mapping %q: expected Original=Display", e.Token)
}

// InvalidUncertaintyError reports a negative error-bar magnitude.
type InvalidUncertaintyError struct {
	Series string
	Column string
	Row    int // 1-based data row, header excluded
	Value  float64
}

func (e *InvalidUncertaintyError) Error() string {
	return fmt.Sprintf("series %q: negative uncertainty %s in column %q at row %d",
		e.Series, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Column, e.Row)
}

// UnsupportedFormatError reports an output format the static renderer cannot produce.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q", e.Format)
}

// ConfigLoadError wraps failures to read or parse an imported config file.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load config %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// OutputWriteError wraps filesystem failures while writing an output file.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
