// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package render

import (
	"fmt"
	"math"

	"astrograph/internal/plotspec"
	"astrograph/internal/theme"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// scatterSeries draws a plotspec.Series as unconnected markers with optional
// asymmetric error bars. It implements chart.Series and chart.ValuesProvider.
type scatterSeries struct {
	series plotspec.Series
	color  drawing.Color
	radius float64 // marker radius, pixels
	width  float64 // stroke width, pixels
}

func (s scatterSeries) GetName() string { return s.series.Name }

func (s scatterSeries) GetYAxis() chart.YAxisType { return chart.YAxisSecondary }

// GetStyle is what the legend uses for the series sample.
func (s scatterSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeColor: s.color,
		StrokeWidth: 2 * s.width,
		FillColor:   s.color,
		DotColor:    s.color,
		DotWidth:    s.radius,
	}
}

func (s scatterSeries) Validate() error {
	if len(s.series.X) != len(s.series.Y) {
		return fmt.Errorf("series %q: %d x values but %d y values", s.series.Name, len(s.series.X), len(s.series.Y))
	}
	if s.series.HasErrorBars() && (len(s.series.ErrUp) != len(s.series.Y) || len(s.series.ErrDown) != len(s.series.Y)) {
		return fmt.Errorf("series %q: error bars do not match the data", s.series.Name)
	}
	return nil
}

func (s scatterSeries) Len() int { return len(s.series.X) }

func (s scatterSeries) GetValues(i int) (float64, float64) {
	return s.series.X[i], s.series.Y[i]
}

// Render draws error bars first so markers sit on top of them. Points outside
// the axis ranges are skipped and bars are clipped to the y range.
func (s scatterSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	px := func(x float64) int { return canvasBox.Left + xrange.Translate(x) }
	py := func(y float64) int { return canvasBox.Bottom - yrange.Translate(y) }
	inX := func(x float64) bool { return x >= xrange.GetMin() && x <= xrange.GetMax() }
	inY := func(y float64) bool { return y >= yrange.GetMin() && y <= yrange.GetMax() }
	clampY := func(y float64) float64 { return math.Min(math.Max(y, yrange.GetMin()), yrange.GetMax()) }

	if s.series.HasErrorBars() {
		r.SetStrokeColor(s.color)
		r.SetStrokeWidth(s.width)
		capHalf := int(math.Round(s.radius))
		for i, x := range s.series.X {
			y := s.series.Y[i]
			if !inX(x) {
				continue
			}
			hi, lo := y+s.series.ErrUp[i], y-s.series.ErrDown[i]
			if hi < yrange.GetMin() || lo > yrange.GetMax() || hi == lo {
				continue
			}
			cx, top, bottom := px(x), py(clampY(hi)), py(clampY(lo))
			r.MoveTo(cx, top)
			r.LineTo(cx, bottom)
			if inY(hi) {
				r.MoveTo(cx-capHalf, top)
				r.LineTo(cx+capHalf, top)
			}
			if inY(lo) {
				r.MoveTo(cx-capHalf, bottom)
				r.LineTo(cx+capHalf, bottom)
			}
		}
		r.Stroke()
	}

	for i, x := range s.series.X {
		y := s.series.Y[i]
		if inX(x) && inY(y) {
			drawMarker(r, s.series.Marker, px(x), py(y), s.radius, s.color, s.width)
		}
	}
}

type point struct{ x, y float64 }

// outlines returns the vertices of filled marker glyphs, relative to the
// marker centre, for a radius r. Screen y grows downwards.
var outlines = map[theme.Marker]func(r float64) []point{
	theme.MarkerSquare: func(r float64) []point {
		h := r * 0.85
		return []point{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	},
	theme.MarkerTriangleUp: func(r float64) []point {
		return []point{{0, -r}, {r, 0.8 * r}, {-r, 0.8 * r}}
	},
	theme.MarkerTriangleDown: func(r float64) []point {
		return []point{{0, r}, {r, -0.8 * r}, {-r, -0.8 * r}}
	},
	theme.MarkerTriangleLeft: func(r float64) []point {
		return []point{{-r, 0}, {0.8 * r, -r}, {0.8 * r, r}}
	},
	theme.MarkerTriangleRight: func(r float64) []point {
		return []point{{r, 0}, {-0.8 * r, -r}, {-0.8 * r, r}}
	},
	theme.MarkerDiamond: func(r float64) []point {
		return []point{{0, -r}, {0.7 * r, 0}, {0, r}, {-0.7 * r, 0}}
	},
	theme.MarkerHexagon:  func(r float64) []point { return regular(6, r) },
	theme.MarkerPentagon: func(r float64) []point { return regular(5, r) },
	theme.MarkerStar: func(r float64) []point {
		pts := make([]point, 10)
		for i := range pts {
			a := -math.Pi/2 + float64(i)*math.Pi/5
			rr := 1.2 * r
			if i%2 == 1 {
				rr *= 0.45
			}
			pts[i] = point{rr * math.Cos(a), rr * math.Sin(a)}
		}
		return pts
	},
}

// regular returns an n-gon with one vertex pointing up.
func regular(n int, r float64) []point {
	pts := make([]point, n)
	for i := range pts {
		a := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		pts[i] = point{r * math.Cos(a), r * math.Sin(a)}
	}
	return pts
}

func drawMarker(r chart.Renderer, m theme.Marker, x, y int, radius float64, c drawing.Color, width float64) {
	r.SetFillColor(c)
	r.SetStrokeColor(c)
	r.SetStrokeWidth(width)

	at := func(dx, dy float64) (int, int) {
		return x + int(math.Round(dx)), y + int(math.Round(dy))
	}

	switch m {
	case theme.MarkerPoint:
		r.Circle(radius/2, x, y)
		r.FillStroke()
	case theme.MarkerCross:
		r.SetStrokeWidth(1.5 * width)
		r.MoveTo(at(-radius, 0))
		r.LineTo(at(radius, 0))
		r.MoveTo(at(0, -radius))
		r.LineTo(at(0, radius))
		r.Stroke()
	case theme.MarkerX:
		r.SetStrokeWidth(1.5 * width)
		r.MoveTo(at(-radius, -radius))
		r.LineTo(at(radius, radius))
		r.MoveTo(at(-radius, radius))
		r.LineTo(at(radius, -radius))
		r.Stroke()
	default:
		outline, ok := outlines[m]
		if !ok {
			r.Circle(radius, x, y)
			r.FillStroke()
			return
		}
		pts := outline(radius)
		r.MoveTo(at(pts[0].x, pts[0].y))
		for _, p := range pts[1:] {
			r.LineTo(at(p.x, p.y))
		}
		r.Close()
		r.FillStroke()
	}
}
