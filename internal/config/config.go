// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config holds the plot configuration model and resolves it from an
// optional imported YAML file and explicitly supplied command-line values,
// with precedence CLI > file > built-in default.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"astrograph/internal/errs"

	"gopkg.in/yaml.v3"
)

// Built-in defaults.
const (
	DefaultDelimiter    = ","
	DefaultDPI          = 300
	DefaultFontSize     = 12
	DefaultOutputFormat = "png"
	DefaultStyle        = "petroff10"
)

// Config is a fully resolved plot request. Field order is the order in which
// keys are exported, so it must not change casually: exports are compared
// byte for byte.
type Config struct {
	// File is the delimited (or .xlsx) input table
	File string `yaml:"file,omitempty"`

	// Delimiter is the single-character field separator
	Delimiter string `yaml:"delimiter"`

	XAxis string   `yaml:"x_axis"`
	YAxes []string `yaml:"y_axes"`

	// Explicit axis bounds; nil means auto-fit
	XMin *float64 `yaml:"x_min,omitempty"`
	XMax *float64 `yaml:"x_max,omitempty"`
	YMin *float64 `yaml:"y_min,omitempty"`
	YMax *float64 `yaml:"y_max,omitempty"`

	// Colors and Shapes are indexed positionally against YAxes
	Colors []string `yaml:"colors,omitempty"`
	Shapes []string `yaml:"shapes,omitempty"`

	Legend   bool `yaml:"legend"`
	DPI      int  `yaml:"dpi"`
	FontSize int  `yaml:"font_size"`

	OutputFile   string `yaml:"output_file,omitempty"`
	OutputFormat string `yaml:"output_format"`

	// Interactive selects the HTML renderer instead of the static one
	Interactive      bool   `yaml:"interactive"`
	UseUncertainties bool   `yaml:"use_uncertainties"`
	Style            string `yaml:"style"`

	XTicks *int `yaml:"x_ticks,omitempty"`
	YTicks *int `yaml:"y_ticks,omitempty"`

	// ColumnNames holds "Original=Display" tokens
	ColumnNames []string `yaml:"column_names,omitempty"`

	XAxisTitle string `yaml:"x_axis_title,omitempty"`
	YAxisTitle string `yaml:"y_axis_title,omitempty"`
	Title      string `yaml:"title,omitempty"`

	// CometIDs restricts rows to those whose "Comet ID" column matches
	CometIDs []string `yaml:"comet_ids,omitempty"`
}

// Defaults returns the built-in default layer, the lowest precedence tier.
func Defaults() Layer {
	return Layer{
		Delimiter:        Some(DefaultDelimiter),
		Legend:           Some(false),
		DPI:              Some(DefaultDPI),
		FontSize:         Some(DefaultFontSize),
		OutputFormat:     Some(DefaultOutputFormat),
		Interactive:      Some(false),
		UseUncertainties: Some(false),
		Style:            Some(DefaultStyle),
	}
}

// Marshal serializes a resolved configuration. Re-importing the output and
// marshalling again yields identical bytes.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Export writes the resolved configuration to path. The file is written
// next to its destination and renamed into place, so a failed export never
// leaves a truncated file behind.
func Export(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	resolved, err := ResolvePath(path)
	if err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	dir := filepath.Dir(resolved)
	// rwxr-x---
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".astrograph-config-*")
	if err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	// Write with permissions rw-r----- (0640)
	if err := os.Chmod(tmp.Name(), 0640); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return &errs.OutputWriteError{Path: path, Err: err}
	}
	return nil
}

// ResolvePath expands a leading "~/" to the user's home directory.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
