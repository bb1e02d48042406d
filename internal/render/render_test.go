// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"astrograph/internal/config"
	"astrograph/internal/errs"
	"astrograph/internal/plotspec"
	"astrograph/internal/table"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const comets = `Time,Dust_Temp,Ice_Temp,Dust_Temp_sigup,Dust_Temp_sigdown
1,10.5,3.2,0.5,0.4
2,11.0,3.6,0.6,0.5
3,11.8,3.9,0.4,0.3
`

func buildSpec(t *testing.T, edit func(*config.Layer)) *plotspec.PlotSpec {
	t.Helper()
	return buildSpecFrom(t, comets, edit)
}

func buildSpecFrom(t *testing.T, data string, edit func(*config.Layer)) *plotspec.PlotSpec {
	t.Helper()
	cli := config.Layer{
		File:             config.Some("comets.csv"),
		XAxis:            config.Some("Time"),
		YAxes:            config.Some([]string{"Dust_Temp", "Ice_Temp"}),
		UseUncertainties: config.Some(true),
		Interactive:      config.Some(false),
		OutputFormat:     config.Some("png"),
		DPI:              config.Some(50),
		OutputFile:       config.Some(filepath.Join(t.TempDir(), "chart.png")),
	}
	if edit != nil {
		edit(&cli)
	}
	cfg, err := config.Resolve(cli, "")
	require.NoError(t, err)

	tbl, err := table.Read(strings.NewReader(data), ',')
	require.NoError(t, err)
	spec, err := plotspec.Build(cfg, tbl)
	require.NoError(t, err)
	return spec
}

func TestWriteStaticPNG(t *testing.T) {
	spec := buildSpec(t, func(l *config.Layer) { l.Legend = config.Some(true) })

	path, err := Write(spec)
	require.NoError(t, err)
	assert.Equal(t, spec.Layout.OutputFile, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	assert.True(t, spec.Series[0].HasErrorBars())
	assert.False(t, spec.Series[1].HasErrorBars())
}

func TestWriteStaticFormats(t *testing.T) {
	tests := []struct {
		format string
		check  func(*testing.T, []byte)
	}{
		{"svg", func(t *testing.T, b []byte) { assert.Contains(t, string(b), "<svg") }},
		{"jpg", func(t *testing.T, b []byte) { assert.Equal(t, []byte{0xff, 0xd8}, b[:2]) }},
		{"jpeg", func(t *testing.T, b []byte) { assert.Equal(t, []byte{0xff, 0xd8}, b[:2]) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			spec := buildSpec(t, func(l *config.Layer) {
				l.OutputFormat = config.Some(tt.format)
				l.OutputFile = config.Some(filepath.Join(t.TempDir(), "chart."+tt.format))
				l.Style = config.Some("ggplot")
				l.Shapes = config.Some([]string{"^", "*"})
				l.XTicks = config.Some(4)
			})
			path, err := Write(spec)
			require.NoError(t, err)
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			tt.check(t, data)
		})
	}
}

func TestWriteUnsupportedFormatLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	spec := buildSpec(t, func(l *config.Layer) {
		l.OutputFormat = config.Some("bmp")
		l.OutputFile = config.Some(filepath.Join(dir, "chart.bmp"))
	})

	_, err := Write(spec)
	var target *errs.UnsupportedFormatError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, "bmp", target.Format)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFailureIsOutputWriteError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	spec := buildSpec(t, func(l *config.Layer) {
		l.OutputFile = config.Some(filepath.Join(blocker, "chart.png"))
	})
	_, err := Write(spec)
	var target *errs.OutputWriteError
	require.True(t, errors.As(err, &target), "got %v", err)
}

func TestRenderFailureRemovesTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.png")
	err := writeAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("boom")
	})
	assert.EqualError(t, err, "boom")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDispatch(t *testing.T) {
	spec := buildSpec(t, nil)
	r, err := Dispatch(spec)
	require.NoError(t, err)
	assert.Equal(t, Static{Format: "png"}, r)

	spec = buildSpec(t, func(l *config.Layer) {
		l.Interactive = config.Some(true)
		l.OutputFormat = config.Some("bmp")
	})
	r, err = Dispatch(spec)
	require.NoError(t, err, "interactive output ignores the static format")
	assert.Equal(t, Interactive{}, r)
}

var specPayload = regexp.MustCompile(`(?s)spec: (\{.*?\}),\s*bounds:`)

func TestWriteInteractiveHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.html")
	spec := buildSpec(t, func(l *config.Layer) {
		l.Interactive = config.Some(true)
		l.OutputFile = config.Some(out)
		l.Title = config.Some("Comet <67P>")
	})

	path, err := Write(spec)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Comet &lt;67P&gt;</title>")
	assert.Contains(t, page, "function niceTicks")
	assert.Contains(t, page, ".tooltip")
	assert.NotContains(t, page, "<67P>")
}

type seriesSummary struct {
	Name      string
	Color     string
	Marker    string
	Points    int
	ErrorBars bool
}

// Both renderers must agree on series count, order, colors and error bars.
func TestStaticAndInteractiveAgree(t *testing.T) {
	edit := func(interactive bool) func(*config.Layer) {
		return func(l *config.Layer) {
			l.Interactive = config.Some(interactive)
			l.Colors = config.Some([]string{"blue", "green"})
			l.Shapes = config.Some([]string{"o", "s"})
		}
	}

	static := buildSpec(t, edit(false))
	ch, err := buildChart(static)
	require.NoError(t, err)
	var fromStatic []seriesSummary
	for _, s := range ch.Series {
		ss := s.(scatterSeries)
		fromStatic = append(fromStatic, seriesSummary{
			Name:      ss.GetName(),
			Color:     ss.series.Color,
			Marker:    string(ss.series.Marker),
			Points:    ss.Len(),
			ErrorBars: ss.series.HasErrorBars(),
		})
	}

	interactive := buildSpec(t, edit(true))
	var buf bytes.Buffer
	require.NoError(t, Interactive{}.Render(interactive, &buf))
	m := specPayload.FindStringSubmatch(buf.String())
	require.Len(t, m, 2, "spec payload not found in page")

	var decoded plotspec.PlotSpec
	require.NoError(t, json.Unmarshal([]byte(m[1]), &decoded))
	var fromPage []seriesSummary
	for _, s := range decoded.Series {
		fromPage = append(fromPage, seriesSummary{
			Name:      s.Name,
			Color:     s.Color,
			Marker:    string(s.Marker),
			Points:    len(s.X),
			ErrorBars: s.HasErrorBars(),
		})
	}

	if diff := cmp.Diff(fromStatic, fromPage); diff != "" {
		t.Errorf("renderers disagree (-static +interactive):\n%s", diff)
	}
	assert.Equal(t, []seriesSummary{
		{"Dust_Temp", "#0000ff", "circle", 3, true},
		{"Ice_Temp", "#008000", "square", 3, false},
	}, fromStatic)

	page, err := NewPage(interactive)
	require.NoError(t, err)
	assert.Equal(t, static.XBounds(), page.Bounds.X)
	assert.Equal(t, static.YBounds(), page.Bounds.Y)
}

func TestBuildChartUsesSpecBounds(t *testing.T) {
	spec := buildSpec(t, func(l *config.Layer) {
		l.YMin = config.Some(0.0)
		l.YMax = config.Some(20.0)
		l.YTicks = config.Some(4)
	})
	ch, err := buildChart(spec)
	require.NoError(t, err)

	assert.Equal(t, 0.0, ch.YAxisSecondary.Range.GetMin())
	assert.Equal(t, 20.0, ch.YAxisSecondary.Range.GetMax())
	require.Len(t, ch.YAxisSecondary.Ticks, 5)
	assert.Equal(t, "5", ch.YAxisSecondary.Ticks[1].Label)
	assert.Empty(t, ch.Elements, "legend is off by default")
}

func TestNonFiniteRowsSkippedByBothRenderers(t *testing.T) {
	const data = `Time,Dust_Temp,Ice_Temp,Dust_Temp_sigup,Dust_Temp_sigdown
1,10.5,3.2,0.5,0.4
2,inf,3.6,0.6,0.5
3,11.8,-Infinity,0.4,0.3
4,12.1,4.0,0.2,0.2
`
	for _, interactive := range []bool{false, true} {
		out := filepath.Join(t.TempDir(), "chart.png")
		if interactive {
			out = filepath.Join(t.TempDir(), "chart.html")
		}
		spec := buildSpecFrom(t, data, func(l *config.Layer) {
			l.Interactive = config.Some(interactive)
			l.OutputFile = config.Some(out)
		})
		require.Len(t, spec.Series, 2)
		assert.Equal(t, []float64{1, 3, 4}, spec.Series[0].X)
		assert.Equal(t, []float64{1, 2, 4}, spec.Series[1].X)

		path, err := Write(spec)
		require.NoError(t, err, "interactive=%v", interactive)
		page, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(page), "unsupported value")
	}
}

func TestInteractiveRejectsUnencodableData(t *testing.T) {
	spec := buildSpec(t, func(l *config.Layer) { l.Interactive = config.Some(true) })
	spec.Series[0].Y[0] = math.Inf(1)

	var buf bytes.Buffer
	err := Interactive{}.Render(spec, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode chart data")
	assert.Zero(t, buf.Len())
}
