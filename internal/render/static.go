// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package render

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"astrograph/internal/errs"
	"astrograph/internal/plotspec"
	"astrograph/internal/theme"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Figure size in inches; the pixel size is this times the DPI.
const (
	figureWidth  = 6.4
	figureHeight = 4.8
)

const jpegQuality = 95

// Static renders a PNG, SVG or JPEG image.
type Static struct {
	Format string
}

// Render draws spec in the renderer's format.
func (s Static) Render(spec *plotspec.PlotSpec, w io.Writer) error {
	ch, err := buildChart(spec)
	if err != nil {
		return err
	}

	switch s.Format {
	case "png":
		err = ch.Render(chart.PNG, w)
	case "svg":
		err = ch.Render(chart.SVG, w)
	case "jpg", "jpeg":
		err = renderJPEG(ch, w)
	default:
		return &errs.UnsupportedFormatError{Format: s.Format}
	}
	if err != nil {
		return fmt.Errorf("render %s chart: %w", s.Format, err)
	}
	return nil
}

func renderJPEG(ch chart.Chart, w io.Writer) error {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return err
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}

// buildChart maps spec onto a go-chart Chart. Series are drawn against the
// secondary (left-hand) y axis; the primary axis only carries the same range
// and stays hidden.
func buildChart(spec *plotspec.PlotSpec) (chart.Chart, error) {
	th, err := theme.Lookup(spec.Layout.Style)
	if err != nil {
		return chart.Chart{}, &errs.InvalidValueError{Field: "style", Value: spec.Layout.Style, Err: err}
	}

	dpi := float64(spec.Layout.DPI)
	// Pixels per typographic point.
	pt := dpi / 72
	fontSize := float64(spec.Layout.FontSize)

	xb, yb := spec.XBounds(), spec.YBounds()
	text := drawingColor(th.Text)

	axisStyle := chart.Style{
		StrokeColor: drawingColor(th.Axis),
		StrokeWidth: 0.8 * pt,
		FontColor:   text,
		FontSize:    fontSize * 0.9,
	}
	nameStyle := chart.Style{FontColor: text, FontSize: fontSize}
	gridStyle := chart.Style{
		Hidden:      !th.ShowGrid,
		StrokeColor: drawingColor(th.Grid),
		StrokeWidth: 0.8 * pt,
	}

	pad := int(fontSize * pt)
	top := pad
	if spec.Layout.Title != "" {
		top = 3 * pad
	}

	ch := chart.Chart{
		Title:      spec.Layout.Title,
		TitleStyle: chart.Style{FontColor: text, FontSize: fontSize * 1.2},
		Width:      int(math.Round(figureWidth * dpi)),
		Height:     int(math.Round(figureHeight * dpi)),
		DPI:        dpi,
		Background: chart.Style{
			FillColor: drawingColor(th.Background),
			Padding:   chart.Box{Top: top, Left: pad, Right: 2 * pad, Bottom: pad},
		},
		Canvas: chart.Style{FillColor: drawingColor(th.Plot)},
		XAxis: chart.XAxis{
			Name:           spec.Layout.XTitle,
			NameStyle:      nameStyle,
			Style:          axisStyle,
			Range:          &chart.ContinuousRange{Min: xb.Min, Max: xb.Max},
			Ticks:          ticks(spec.Layout.XTicks),
			ValueFormatter: formatValue,
			GridMajorStyle: gridStyle,
			GridMinorStyle: chart.Style{Hidden: true},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: yb.Min, Max: yb.Max},
		},
		YAxisSecondary: chart.YAxis{
			Name:           spec.Layout.YTitle,
			NameStyle:      nameStyle,
			Style:          axisStyle,
			Range:          &chart.ContinuousRange{Min: yb.Min, Max: yb.Max},
			Ticks:          ticks(spec.Layout.YTicks),
			ValueFormatter: formatValue,
			GridMajorStyle: gridStyle,
			GridMinorStyle: chart.Style{Hidden: true},
		},
	}

	for _, s := range spec.Series {
		c, err := theme.ParseColor(s.Color, th.Palette)
		if err != nil {
			return chart.Chart{}, &errs.InvalidValueError{Field: "colors", Value: s.Color, Err: err}
		}
		ch.Series = append(ch.Series, scatterSeries{
			series: s,
			color:  drawingColor(c),
			radius: 3 * pt,
			width:  pt,
		})
	}

	if spec.Layout.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{
			FillColor:   drawingColor(th.Background),
			StrokeColor: drawingColor(th.Grid),
			FontColor:   text,
			FontSize:    fontSize * 0.9,
		})}
	}
	return ch, nil
}

func ticks(values []float64) []chart.Tick {
	if len(values) == 0 {
		return nil
	}
	out := make([]chart.Tick, len(values))
	for i, v := range values {
		out[i] = chart.Tick{Value: v, Label: plotspec.FormatTick(v)}
	}
	return out
}

func formatValue(v interface{}) string {
	if f, ok := v.(float64); ok {
		return plotspec.FormatTick(f)
	}
	return fmt.Sprint(v)
}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
