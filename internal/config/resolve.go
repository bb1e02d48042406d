// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"astrograph/internal/columns"
	"astrograph/internal/errs"
	"astrograph/internal/logger"
	"astrograph/internal/theme"
)

// Resolve merges the command-line layer over the optional imported file and
// the built-in defaults, then normalizes and validates the result.
//
// Precedence is evaluated per field: a value supplied on the command line
// always wins, then a value present in the imported file, then the default.
// Only values the user actually passed count as supplied; see Opt.
func Resolve(cli Layer, importPath string) (*Config, error) {
	var file Layer
	if importPath != "" {
		var err error
		file, err = LoadFile(importPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := cli.Over(file).Over(Defaults()).Config()
	normalize(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug("Resolved configuration",
		"file", cfg.File,
		"x_axis", cfg.XAxis,
		"y_axes", cfg.YAxes,
		"interactive", cfg.Interactive,
		"imported", importPath)
	return cfg, nil
}

// normalize canonicalizes spellings that have several accepted forms.
func normalize(cfg *Config) {
	cfg.File = strings.TrimSpace(cfg.File)
	cfg.XAxis = strings.TrimSpace(cfg.XAxis)

	var yAxes []string
	for _, y := range cfg.YAxes {
		if y = strings.TrimSpace(y); y != "" {
			yAxes = append(yAxes, y)
		}
	}
	cfg.YAxes = yAxes

	cfg.Delimiter = NormalizeDelimiter(cfg.Delimiter)
	cfg.OutputFormat = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(cfg.OutputFormat), "."))
	cfg.Style = strings.ToLower(strings.TrimSpace(cfg.Style))
}

// NormalizeDelimiter maps the spellings "\t" and "tab" to a TAB character.
func NormalizeDelimiter(d string) string {
	switch strings.ToLower(d) {
	case `\t`, "tab":
		return "\t"
	}
	return d
}

// Validate checks a resolved configuration. It does not look at the table;
// column existence is checked when the plot is built.
func Validate(cfg *Config) error {
	if cfg.File == "" {
		return &errs.MissingInputError{}
	}
	if cfg.XAxis == "" {
		return &errs.MissingAxisError{Field: "x_axis"}
	}
	if len(cfg.YAxes) == 0 {
		return &errs.MissingAxisError{Field: "y_axes"}
	}

	if r, size := utf8.DecodeRuneInString(cfg.Delimiter); size == 0 || size != len(cfg.Delimiter) ||
		r == '\n' || r == '\r' || r == '"' || r == utf8.RuneError {
		return &errs.InvalidValueError{Field: "delimiter", Value: cfg.Delimiter, Reason: "must be a single character"}
	}

	if cfg.DPI <= 0 {
		return &errs.InvalidValueError{Field: "dpi", Value: strconv.Itoa(cfg.DPI), Reason: "must be positive"}
	}
	if cfg.FontSize <= 0 {
		return &errs.InvalidValueError{Field: "font_size", Value: strconv.Itoa(cfg.FontSize), Reason: "must be positive"}
	}
	if err := validateTicks("x_ticks", cfg.XTicks); err != nil {
		return err
	}
	if err := validateTicks("y_ticks", cfg.YTicks); err != nil {
		return err
	}
	if err := validateBounds("x", cfg.XMin, cfg.XMax); err != nil {
		return err
	}
	if err := validateBounds("y", cfg.YMin, cfg.YMax); err != nil {
		return err
	}
	if cfg.OutputFormat == "" {
		return &errs.InvalidValueError{Field: "output_format", Reason: "must not be empty"}
	}

	th, err := theme.Lookup(cfg.Style)
	if err != nil {
		return &errs.InvalidValueError{Field: "style", Value: cfg.Style, Err: err}
	}
	for _, c := range cfg.Colors {
		if _, err := theme.ParseColor(c, th.Palette); err != nil {
			return &errs.InvalidValueError{Field: "colors", Value: c, Err: err}
		}
	}
	for _, s := range cfg.Shapes {
		if _, err := theme.ParseMarker(s); err != nil {
			return &errs.InvalidValueError{Field: "shapes", Value: s, Err: err}
		}
	}
	if len(cfg.Colors) > 0 && len(cfg.Colors) < len(cfg.YAxes) {
		logger.Warn("Fewer colors than y-axes; remaining series use the style palette",
			"colors", len(cfg.Colors), "y_axes", len(cfg.YAxes))
	}
	if len(cfg.Shapes) > 0 && len(cfg.Shapes) < len(cfg.YAxes) {
		logger.Warn("Fewer shapes than y-axes; remaining series use the default marker",
			"shapes", len(cfg.Shapes), "y_axes", len(cfg.YAxes))
	}

	if _, err := columns.Parse(cfg.ColumnNames); err != nil {
		return err
	}
	return nil
}

func validateTicks(field string, ticks *int) error {
	if ticks != nil && *ticks < 1 {
		return &errs.InvalidValueError{Field: field, Value: strconv.Itoa(*ticks), Reason: "must be at least 1"}
	}
	return nil
}

func validateBounds(axis string, lo, hi *float64) error {
	for _, b := range []struct {
		name string
		v    *float64
	}{{axis + "_min", lo}, {axis + "_max", hi}} {
		if b.v != nil && (math.IsNaN(*b.v) || math.IsInf(*b.v, 0)) {
			return &errs.InvalidValueError{Field: b.name, Value: fmt.Sprint(*b.v), Reason: "must be finite"}
		}
	}
	if lo != nil && hi != nil && *lo >= *hi {
		return &errs.InvalidValueError{
			Field:  axis + "_max",
			Value:  strconv.FormatFloat(*hi, 'g', -1, 64),
			Reason: fmt.Sprintf("must be greater than %s_min", axis),
		}
	}
	return nil
}
