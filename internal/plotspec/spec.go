// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package plotspec builds the backend-agnostic description of a chart from a
// resolved configuration and a loaded table. Both renderers draw from the
// same PlotSpec, which is what keeps the static and interactive output in
// agreement on series order, colors, markers and error bars.
package plotspec

import (
	"math"

	"astrograph/internal/theme"
)

// Series is one plotted y column against the shared x column. X, Y and the
// error slices are aligned; rows with a non-numeric x or y are already dropped.
type Series struct {
	Column  string       `json:"column"`
	Name    string       `json:"name"`
	X       []float64    `json:"x"`
	Y       []float64    `json:"y"`
	ErrUp   []float64    `json:"errUp,omitempty"`
	ErrDown []float64    `json:"errDown,omitempty"`
	Color   string       `json:"color"`
	Marker  theme.Marker `json:"marker"`
}

// HasErrorBars reports whether the series carries uncertainty magnitudes.
func (s Series) HasErrorBars() bool {
	return s.ErrUp != nil && s.ErrDown != nil
}

// Range holds optional explicit axis bounds; nil means auto-fit.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Bounds is a concrete axis interval.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Layout holds chart-level settings.
type Layout struct {
	Title  string `json:"title,omitempty"`
	XTitle string `json:"xTitle"`
	YTitle string `json:"yTitle"`

	XRange Range `json:"xRange"`
	YRange Range `json:"yRange"`

	// Requested tick counts (0 = backend default) and the resulting tick
	// positions, which both backends use verbatim when present.
	XTickCount int       `json:"xTickCount,omitempty"`
	YTickCount int       `json:"yTickCount,omitempty"`
	XTicks     []float64 `json:"xTicks,omitempty"`
	YTicks     []float64 `json:"yTicks,omitempty"`

	Legend   bool   `json:"legend"`
	FontSize int    `json:"fontSize"`
	Style    string `json:"style"`
	DPI      int    `json:"dpi"`

	OutputFile  string `json:"-"`
	Format      string `json:"-"`
	Interactive bool   `json:"-"`
}

// PlotSpec is built once per invocation and consumed once by a renderer.
type PlotSpec struct {
	Series []Series `json:"series"`
	Layout Layout   `json:"layout"`
}

// autoMargin is the fraction of the data span added on each side of an
// auto-fitted axis.
const autoMargin = 0.05

// XBounds returns the x interval to draw: explicit bounds where configured,
// otherwise the padded data extent.
func (p *PlotSpec) XBounds() Bounds {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range p.Series {
		for _, x := range s.X {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	return resolveBounds(p.Layout.XRange, lo, hi)
}

// YBounds returns the y interval to draw, including error-bar extents when
// auto-fitting.
func (p *PlotSpec) YBounds() Bounds {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range p.Series {
		for i, y := range s.Y {
			low, high := y, y
			if s.HasErrorBars() {
				low, high = y-s.ErrDown[i], y+s.ErrUp[i]
			}
			lo, hi = math.Min(lo, low), math.Max(hi, high)
		}
	}
	return resolveBounds(p.Layout.YRange, lo, hi)
}

func resolveBounds(r Range, dataLo, dataHi float64) Bounds {
	if math.IsInf(dataLo, 1) {
		// No data points.
		dataLo, dataHi = 0, 1
	}
	pad := (dataHi - dataLo) * autoMargin
	if pad == 0 {
		pad = math.Max(math.Abs(dataLo)*autoMargin, 0.5)
	}
	b := Bounds{Min: dataLo - pad, Max: dataHi + pad}

	if r.Min != nil {
		b.Min = *r.Min
	}
	if r.Max != nil {
		b.Max = *r.Max
	}
	if b.Min >= b.Max {
		// Only one explicit bound, beyond the data on the other side.
		if r.Min != nil {
			b.Max = b.Min + 2*pad
		} else {
			b.Min = b.Max - 2*pad
		}
	}
	return b
}
