// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"astrograph/internal/errs"
	"astrograph/internal/logger"

	"gopkg.in/yaml.v3"
)

// Layer is one configuration source (command line, imported file or
// defaults). Every field records whether the source supplied it.
type Layer struct {
	File      Opt[string]
	Delimiter Opt[string]

	XAxis Opt[string]
	YAxes Opt[[]string]

	XMin Opt[float64]
	XMax Opt[float64]
	YMin Opt[float64]
	YMax Opt[float64]

	Colors Opt[[]string]
	Shapes Opt[[]string]

	Legend   Opt[bool]
	DPI      Opt[int]
	FontSize Opt[int]

	OutputFile   Opt[string]
	OutputFormat Opt[string]

	Interactive      Opt[bool]
	UseUncertainties Opt[bool]
	Style            Opt[string]

	XTicks Opt[int]
	YTicks Opt[int]

	ColumnNames Opt[[]string]

	XAxisTitle Opt[string]
	YAxisTitle Opt[string]
	Title      Opt[string]

	CometIDs Opt[[]string]
}

// Over returns a layer where every field supplied by l wins over base.
func (l Layer) Over(base Layer) Layer {
	return Layer{
		File:             l.File.Or(base.File),
		Delimiter:        l.Delimiter.Or(base.Delimiter),
		XAxis:            l.XAxis.Or(base.XAxis),
		YAxes:            l.YAxes.Or(base.YAxes),
		XMin:             l.XMin.Or(base.XMin),
		XMax:             l.XMax.Or(base.XMax),
		YMin:             l.YMin.Or(base.YMin),
		YMax:             l.YMax.Or(base.YMax),
		Colors:           l.Colors.Or(base.Colors),
		Shapes:           l.Shapes.Or(base.Shapes),
		Legend:           l.Legend.Or(base.Legend),
		DPI:              l.DPI.Or(base.DPI),
		FontSize:         l.FontSize.Or(base.FontSize),
		OutputFile:       l.OutputFile.Or(base.OutputFile),
		OutputFormat:     l.OutputFormat.Or(base.OutputFormat),
		Interactive:      l.Interactive.Or(base.Interactive),
		UseUncertainties: l.UseUncertainties.Or(base.UseUncertainties),
		Style:            l.Style.Or(base.Style),
		XTicks:           l.XTicks.Or(base.XTicks),
		YTicks:           l.YTicks.Or(base.YTicks),
		ColumnNames:      l.ColumnNames.Or(base.ColumnNames),
		XAxisTitle:       l.XAxisTitle.Or(base.XAxisTitle),
		YAxisTitle:       l.YAxisTitle.Or(base.YAxisTitle),
		Title:            l.Title.Or(base.Title),
		CometIDs:         l.CometIDs.Or(base.CometIDs),
	}
}

// Config flattens the layer into a Config. Unsupplied fields take their
// zero value, so callers normally apply Defaults first via Over.
func (l Layer) Config() *Config {
	return &Config{
		File:             l.File.Value(),
		Delimiter:        l.Delimiter.Value(),
		XAxis:            l.XAxis.Value(),
		YAxes:            l.YAxes.Value(),
		XMin:             l.XMin.Ptr(),
		XMax:             l.XMax.Ptr(),
		YMin:             l.YMin.Ptr(),
		YMax:             l.YMax.Ptr(),
		Colors:           l.Colors.Value(),
		Shapes:           l.Shapes.Value(),
		Legend:           l.Legend.Value(),
		DPI:              l.DPI.Value(),
		FontSize:         l.FontSize.Value(),
		OutputFile:       l.OutputFile.Value(),
		OutputFormat:     l.OutputFormat.Value(),
		Interactive:      l.Interactive.Value(),
		UseUncertainties: l.UseUncertainties.Value(),
		Style:            l.Style.Value(),
		XTicks:           l.XTicks.Ptr(),
		YTicks:           l.YTicks.Ptr(),
		ColumnNames:      l.ColumnNames.Value(),
		XAxisTitle:       l.XAxisTitle.Value(),
		YAxisTitle:       l.YAxisTitle.Value(),
		Title:            l.Title.Value(),
		CometIDs:         l.CometIDs.Value(),
	}
}

// fieldDecoders maps YAML keys to the Layer field they fill.
var fieldDecoders = map[string]func(*Layer, string, *yaml.Node) error{
	"file":              func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.File) },
	"delimiter":         func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.Delimiter) },
	"x_axis":            func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.XAxis) },
	"y_axes":            func(l *Layer, k string, n *yaml.Node) error { return decodeList(k, n, &l.YAxes) },
	"x_min":             func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.XMin) },
	"x_max":             func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.XMax) },
	"y_min":             func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.YMin) },
	"y_max":             func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.YMax) },
	"colors":            func(l *Layer, k string, n *yaml.Node) error { return decodeList(k, n, &l.Colors) },
	"shapes":            func(l *Layer, k string, n *yaml.Node) error { return decodeList(k, n, &l.Shapes) },
	"legend":            func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.Legend) },
	"dpi":               func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.DPI) },
	"font_size":         func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.FontSize) },
	"output_file":       func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.OutputFile) },
	"output_format":     func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.OutputFormat) },
	"interactive":       func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.Interactive) },
	"use_uncertainties": func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.UseUncertainties) },
	"style":             func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.Style) },
	"x_ticks":           func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.XTicks) },
	"y_ticks":           func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.YTicks) },
	"column_names":      func(l *Layer, k string, n *yaml.Node) error { return decodeColumnNames(k, n, &l.ColumnNames) },
	"x_axis_title":      func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.XAxisTitle) },
	"y_axis_title":      func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.YAxisTitle) },
	"title":             func(l *Layer, k string, n *yaml.Node) error { return decodeScalar(k, n, &l.Title) },
	"comet_ids":         func(l *Layer, k string, n *yaml.Node) error { return decodeList(k, n, &l.CometIDs) },
}

// LoadFile reads an imported configuration file into a Layer. Keys absent
// from the file, or set to null, are left unsupplied.
func LoadFile(path string) (Layer, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return Layer{}, &errs.ConfigLoadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Layer{}, &errs.ConfigLoadError{Path: path, Err: err}
	}

	layer, err := ParseLayer(data)
	if err != nil {
		var valueErr *errs.InvalidValueError
		if errors.As(err, &valueErr) {
			return Layer{}, err
		}
		return Layer{}, &errs.ConfigLoadError{Path: path, Err: err}
	}
	logger.Debug("Loaded config file", "path", resolved)
	return layer, nil
}

// ParseLayer decodes YAML configuration text into a Layer.
func ParseLayer(data []byte) (Layer, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Layer{}, fmt.Errorf("parse YAML: %w", err)
	}

	var layer Layer
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document.
		return layer, nil
	}

	root := doc.Content[0]
	if root.ShortTag() == "!!null" {
		return layer, nil
	}
	if root.Kind != yaml.MappingNode {
		return Layer{}, fmt.Errorf("line %d: expected a mapping of settings", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]
		decode, ok := fieldDecoders[key]
		if !ok {
			logger.Warn("Ignoring unknown config key", "key", key, "line", root.Content[i].Line)
			continue
		}
		if err := decode(&layer, key, value); err != nil {
			return Layer{}, err
		}
	}
	return layer, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func decodeScalar[T any](field string, n *yaml.Node, dst *Opt[T]) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.ScalarNode {
		return &errs.InvalidValueError{Field: field, Reason: "expected a single value"}
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return &errs.InvalidValueError{Field: field, Value: n.Value, Reason: fmt.Sprintf("line %d", n.Line)}
	}
	*dst = Some(v)
	return nil
}

// decodeList accepts either a YAML sequence or a comma-separated string.
func decodeList(field string, n *yaml.Node, dst *Opt[[]string]) error {
	if isNull(n) {
		return nil
	}
	switch n.Kind {
	case yaml.SequenceNode:
		var v []string
		if err := n.Decode(&v); err != nil {
			return &errs.InvalidValueError{Field: field, Reason: fmt.Sprintf("line %d: expected a list of strings", n.Line)}
		}
		*dst = Some(v)
	case yaml.ScalarNode:
		*dst = Some(SplitList(n.Value))
	default:
		return &errs.InvalidValueError{Field: field, Reason: fmt.Sprintf("line %d: expected a list", n.Line)}
	}
	return nil
}

// decodeColumnNames accepts a list of "Original=Display" strings or a
// mapping of original to display names.
func decodeColumnNames(field string, n *yaml.Node, dst *Opt[[]string]) error {
	if n.Kind != yaml.MappingNode {
		return decodeList(field, n, dst)
	}
	tokens := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return &errs.InvalidValueError{Field: field, Reason: fmt.Sprintf("line %d: expected original: display pairs", k.Line)}
		}
		tokens = append(tokens, k.Value+"="+v.Value)
	}
	*dst = Some(tokens)
	return nil
}

// SplitList splits a comma-separated list, trimming blanks and dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
