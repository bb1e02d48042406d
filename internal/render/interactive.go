// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"astrograph/internal/errs"
	"astrograph/internal/plotspec"
	"astrograph/internal/theme"
	"astrograph/internal/web"
)

var chartTemplate = sync.OnceValues(web.ChartTemplate)

// Interactive renders a self-contained HTML page with hover tooltips,
// legend toggling and drag-to-zoom.
type Interactive struct{}

// Page is the data handed to the chart page template.
type Page struct {
	Spec       *plotspec.PlotSpec
	Bounds     PageBounds
	Theme      PageTheme
	Script     template.JS
	Stylesheet template.CSS
}

// PageBounds are the initial axis ranges, identical to the static renderer's.
type PageBounds struct {
	X plotspec.Bounds `json:"x"`
	Y plotspec.Bounds `json:"y"`
}

// PageTheme carries the style colors as hex strings.
type PageTheme struct {
	Background string `json:"background"`
	Plot       string `json:"plot"`
	Grid       string `json:"grid"`
	Axis       string `json:"axis"`
	Text       string `json:"text"`
	ShowGrid   bool   `json:"showGrid"`
}

// NewPage prepares the template data for spec.
func NewPage(spec *plotspec.PlotSpec) (*Page, error) {
	th, err := theme.Lookup(spec.Layout.Style)
	if err != nil {
		return nil, &errs.InvalidValueError{Field: "style", Value: spec.Layout.Style, Err: err}
	}
	script, err := web.Script()
	if err != nil {
		return nil, fmt.Errorf("load chart script: %w", err)
	}
	css, err := web.Stylesheet()
	if err != nil {
		return nil, fmt.Errorf("load chart stylesheet: %w", err)
	}

	return &Page{
		Spec:   spec,
		Bounds: PageBounds{X: spec.XBounds(), Y: spec.YBounds()},
		Theme: PageTheme{
			Background: theme.Hex(th.Background),
			Plot:       theme.Hex(th.Plot),
			Grid:       theme.Hex(th.Grid),
			Axis:       theme.Hex(th.Axis),
			Text:       theme.Hex(th.Text),
			ShowGrid:   th.ShowGrid,
		},
		Script:     script,
		Stylesheet: css,
	}, nil
}

// Render writes the HTML page for spec.
func (Interactive) Render(spec *plotspec.PlotSpec, w io.Writer) error {
	tmpl, err := chartTemplate()
	if err != nil {
		return fmt.Errorf("parse chart template: %w", err)
	}
	page, err := NewPage(spec)
	if err != nil {
		return err
	}
	// html/template writes a comment instead of failing on unencodable data.
	if _, err := json.Marshal(struct {
		Spec   *plotspec.PlotSpec
		Bounds PageBounds
	}{page.Spec, page.Bounds}); err != nil {
		return fmt.Errorf("encode chart data: %w", err)
	}
	if err := tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("render interactive chart: %w", err)
	}
	return nil
}
