// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package plotspec

import (
	"math"
	"strings"

	"astrograph/internal/columns"
	"astrograph/internal/config"
	"astrograph/internal/errs"
	"astrograph/internal/logger"
	"astrograph/internal/table"
	"astrograph/internal/theme"
)

// Suffixes of the uncertainty columns looked up for each y column.
const (
	SigUpSuffix   = "_sigup"
	SigDownSuffix = "_sigdown"
)

// DefaultOutputBase is the output file name used when none is configured.
const DefaultOutputBase = "output_graph"

// HTMLFormat is the output format of the interactive renderer.
const HTMLFormat = "html"

// Load reads the configured input table and builds its PlotSpec.
func Load(cfg *config.Config) (*PlotSpec, error) {
	path, err := config.ResolvePath(cfg.File)
	if err != nil {
		return nil, err
	}
	tbl, err := table.Load(path, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	return Build(cfg, tbl)
}

// Build assembles a PlotSpec from a resolved configuration and its table.
// It fails before producing anything if an axis column is missing or an
// uncertainty value is negative.
func Build(cfg *config.Config, tbl *table.Table) (*PlotSpec, error) {
	tbl, err := table.FilterCometIDs(tbl, cfg.CometIDs)
	if err != nil {
		return nil, err
	}

	th, err := theme.Lookup(cfg.Style)
	if err != nil {
		return nil, &errs.InvalidValueError{Field: "style", Value: cfg.Style, Err: err}
	}

	x, ok := tbl.Floats(cfg.XAxis)
	if !ok {
		return nil, &errs.MissingAxisError{Field: "x_axis", Column: cfg.XAxis}
	}
	for _, col := range cfg.YAxes {
		if !tbl.Has(col) {
			return nil, &errs.MissingAxisError{Field: "y_axes", Column: col}
		}
	}

	display, err := columns.Apply(cfg.ColumnNames, append([]string{cfg.XAxis}, cfg.YAxes...))
	if err != nil {
		return nil, err
	}

	spec := &PlotSpec{Layout: layout(cfg, display)}
	for i, col := range cfg.YAxes {
		s, err := buildSeries(cfg, th, tbl, x, i, col)
		if err != nil {
			return nil, err
		}
		s.Name = display[col]
		spec.Series = append(spec.Series, s)
	}

	if cfg.XTicks != nil {
		b := spec.XBounds()
		spec.Layout.XTicks = Ticks(b.Min, b.Max, *cfg.XTicks)
	}
	if cfg.YTicks != nil {
		b := spec.YBounds()
		spec.Layout.YTicks = Ticks(b.Min, b.Max, *cfg.YTicks)
	}

	logger.Debug("Built plot spec", "series", len(spec.Series), "rows", tbl.Len(), "format", spec.Layout.Format)
	return spec, nil
}

func buildSeries(cfg *config.Config, th theme.Theme, tbl *table.Table, x []float64, i int, col string) (Series, error) {
	s := Series{Column: col, Marker: th.Marker}

	c := th.PaletteColor(i)
	if i < len(cfg.Colors) {
		parsed, err := theme.ParseColor(cfg.Colors[i], th.Palette)
		if err != nil {
			return Series{}, &errs.InvalidValueError{Field: "colors", Value: cfg.Colors[i], Err: err}
		}
		c = parsed
	}
	s.Color = theme.Hex(c)

	if i < len(cfg.Shapes) {
		m, err := theme.ParseMarker(cfg.Shapes[i])
		if err != nil {
			return Series{}, &errs.InvalidValueError{Field: "shapes", Value: cfg.Shapes[i], Err: err}
		}
		s.Marker = m
	}

	y, _ := tbl.Floats(col)

	var up, down []float64
	if cfg.UseUncertainties {
		up, down = uncertaintyColumns(tbl, col)
	}

	for row := range y {
		if math.IsNaN(x[row]) || math.IsNaN(y[row]) {
			continue
		}
		s.X = append(s.X, x[row])
		s.Y = append(s.Y, y[row])
		if up == nil {
			continue
		}
		u, err := magnitude(col, col+SigUpSuffix, row, up[row])
		if err != nil {
			return Series{}, err
		}
		d, err := magnitude(col, col+SigDownSuffix, row, down[row])
		if err != nil {
			return Series{}, err
		}
		s.ErrUp = append(s.ErrUp, u)
		s.ErrDown = append(s.ErrDown, d)
	}

	if up != nil && s.ErrUp == nil {
		// Keep HasErrorBars true for a series whose rows were all dropped.
		s.ErrUp, s.ErrDown = []float64{}, []float64{}
	}
	if skipped := len(y) - len(s.X); skipped > 0 {
		logger.Debug("Skipped rows without numeric values", "series", col, "rows", skipped)
	}
	return s, nil
}

// uncertaintyColumns returns the sigup/sigdown values for col, or nils when
// either column is absent.
func uncertaintyColumns(tbl *table.Table, col string) (up, down []float64) {
	up, okUp := tbl.Floats(col + SigUpSuffix)
	down, okDown := tbl.Floats(col + SigDownSuffix)
	if okUp && okDown {
		return up, down
	}
	if okUp || okDown {
		logger.Warn("Only one uncertainty column found; plotting without error bars",
			"series", col, "sigup", okUp, "sigdown", okDown)
	} else {
		logger.Info("No uncertainty columns found; plotting without error bars", "series", col)
	}
	return nil, nil
}

// magnitude validates one error-bar value. Empty cells count as zero.
func magnitude(series, column string, row int, v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, nil
	}
	if v < 0 {
		return 0, &errs.InvalidUncertaintyError{Series: series, Column: column, Row: row + 1, Value: v}
	}
	return v, nil
}

func layout(cfg *config.Config, display map[string]string) Layout {
	l := Layout{
		Title:       cfg.Title,
		XTitle:      cfg.XAxisTitle,
		YTitle:      cfg.YAxisTitle,
		XRange:      Range{Min: cfg.XMin, Max: cfg.XMax},
		YRange:      Range{Min: cfg.YMin, Max: cfg.YMax},
		Legend:      cfg.Legend,
		FontSize:    cfg.FontSize,
		Style:       cfg.Style,
		DPI:         cfg.DPI,
		Interactive: cfg.Interactive,
		Format:      cfg.OutputFormat,
	}
	if cfg.XTicks != nil {
		l.XTickCount = *cfg.XTicks
	}
	if cfg.YTicks != nil {
		l.YTickCount = *cfg.YTicks
	}

	if l.XTitle == "" {
		l.XTitle = display[cfg.XAxis]
	}
	if l.YTitle == "" {
		if len(cfg.YAxes) == 1 {
			l.YTitle = display[cfg.YAxes[0]]
		} else {
			l.YTitle = "Value"
		}
	}

	if cfg.Interactive {
		l.Format = HTMLFormat
	}
	l.OutputFile = cfg.OutputFile
	if l.OutputFile == "" {
		l.OutputFile = DefaultOutputFile(l.Format)
	}
	return l
}

// DefaultOutputFile names the output for a format when none is configured.
func DefaultOutputFile(format string) string {
	return DefaultOutputBase + "." + strings.ToLower(format)
}
