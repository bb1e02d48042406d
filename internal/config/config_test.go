// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"astrograph/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func minimalCLI() Layer {
	return Layer{
		File:  Some("data.csv"),
		XAxis: Some("Time"),
		YAxes: Some([]string{"Dust_Temp"}),
	}
}

func TestResolveAppliesDefaults(t *testing.T) {
	cfg, err := Resolve(minimalCLI(), "")
	require.NoError(t, err)

	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, 300, cfg.DPI)
	assert.Equal(t, 12, cfg.FontSize)
	assert.Equal(t, "png", cfg.OutputFormat)
	assert.Equal(t, "petroff10", cfg.Style)
	assert.False(t, cfg.Legend)
	assert.False(t, cfg.Interactive)
	assert.False(t, cfg.UseUncertainties)
	assert.Nil(t, cfg.XMin)
	assert.Nil(t, cfg.XTicks)
	assert.Empty(t, cfg.ColumnNames)
}

// Each case sets a field in the imported file and checks that (a) the file
// value beats the default and (b) a CLI value beats the file value.
func TestResolvePrecedencePerField(t *testing.T) {
	tests := []struct {
		name     string
		fileYAML string
		cli      func(*Layer)
		fromFile func(*testing.T, *Config)
		fromCLI  func(*testing.T, *Config)
	}{
		{
			name:     "delimiter",
			fileYAML: "delimiter: ';'",
			cli:      func(l *Layer) { l.Delimiter = Some("|") },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, ";", c.Delimiter) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, "|", c.Delimiter) },
		},
		{
			name:     "x_axis",
			fileYAML: "x_axis: Epoch",
			cli:      func(l *Layer) { l.XAxis = Some("Time") },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, "Epoch", c.XAxis) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, "Time", c.XAxis) },
		},
		{
			name:     "y_axes",
			fileYAML: "y_axes: [Ice_Temp]",
			cli:      func(l *Layer) { l.YAxes = Some([]string{"Dust_Temp"}) },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, []string{"Ice_Temp"}, c.YAxes) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, []string{"Dust_Temp"}, c.YAxes) },
		},
		{
			name:     "x_min",
			fileYAML: "x_min: 1.5",
			cli:      func(l *Layer) { l.XMin = Some(-2.0) },
			fromFile: func(t *testing.T, c *Config) { require.NotNil(t, c.XMin); assert.Equal(t, 1.5, *c.XMin) },
			fromCLI:  func(t *testing.T, c *Config) { require.NotNil(t, c.XMin); assert.Equal(t, -2.0, *c.XMin) },
		},
		{
			name:     "y_max",
			fileYAML: "y_max: 40",
			cli:      func(l *Layer) { l.YMax = Some(90.0) },
			fromFile: func(t *testing.T, c *Config) { require.NotNil(t, c.YMax); assert.Equal(t, 40.0, *c.YMax) },
			fromCLI:  func(t *testing.T, c *Config) { require.NotNil(t, c.YMax); assert.Equal(t, 90.0, *c.YMax) },
		},
		{
			name:     "colors",
			fileYAML: "colors: [red]",
			cli:      func(l *Layer) { l.Colors = Some([]string{"blue"}) },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, []string{"red"}, c.Colors) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, []string{"blue"}, c.Colors) },
		},
		{
			name:     "shapes",
			fileYAML: "shapes: [s]",
			cli:      func(l *Layer) { l.Shapes = Some([]string{"o"}) },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, []string{"s"}, c.Shapes) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, []string{"o"}, c.Shapes) },
		},
		{
			name:     "legend explicitly false on CLI",
			fileYAML: "legend: true",
			cli:      func(l *Layer) { l.Legend = Some(false) },
			fromFile: func(t *testing.T, c *Config) { assert.True(t, c.Legend) },
			fromCLI:  func(t *testing.T, c *Config) { assert.False(t, c.Legend) },
		},
		{
			name:     "dpi equal to default on CLI still wins",
			fileYAML: "dpi: 150",
			cli:      func(l *Layer) { l.DPI = Some(DefaultDPI) },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, 150, c.DPI) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, DefaultDPI, c.DPI) },
		},
		{
			name:     "font_size",
			fileYAML: "font_size: 9",
			cli:      func(l *Layer) { l.FontSize = Some(14) },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, 9, c.FontSize) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, 14, c.FontSize) },
		},
		{
			name:     "output_file",
			fileYAML: "output_file: from-file.png",
			cli:      func(l *Layer) { l.OutputFile = Some("from-cli.png") },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, "from-file.png", c.OutputFile) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, "from-cli.png", c.OutputFile) },
		},
		{
			name:     "output_format",
			fileYAML: "output_format: svg",
			cli:      func(l *Layer) { l.OutputFormat = Some("png") },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, "svg", c.OutputFormat) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, "png", c.OutputFormat) },
		},
		{
			name:     "interactive",
			fileYAML: "interactive: true",
			cli:      func(l *Layer) { l.Interactive = Some(false) },
			fromFile: func(t *testing.T, c *Config) { assert.True(t, c.Interactive) },
			fromCLI:  func(t *testing.T, c *Config) { assert.False(t, c.Interactive) },
		},
		{
			name:     "use_uncertainties",
			fileYAML: "use_uncertainties: true",
			cli:      func(l *Layer) { l.UseUncertainties = Some(false) },
			fromFile: func(t *testing.T, c *Config) { assert.True(t, c.UseUncertainties) },
			fromCLI:  func(t *testing.T, c *Config) { assert.False(t, c.UseUncertainties) },
		},
		{
			name:     "style",
			fileYAML: "style: ggplot",
			cli:      func(l *Layer) { l.Style = Some("petroff10") },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, "ggplot", c.Style) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, "petroff10", c.Style) },
		},
		{
			name:     "x_ticks",
			fileYAML: "x_ticks: 4",
			cli:      func(l *Layer) { l.XTicks = Some(10) },
			fromFile: func(t *testing.T, c *Config) { require.NotNil(t, c.XTicks); assert.Equal(t, 4, *c.XTicks) },
			fromCLI:  func(t *testing.T, c *Config) { require.NotNil(t, c.XTicks); assert.Equal(t, 10, *c.XTicks) },
		},
		{
			name:     "column_names",
			fileYAML: "column_names: [Dust_Temp=Dust]",
			cli:      func(l *Layer) { l.ColumnNames = Some([]string{"Dust_Temp=Dust (K)"}) },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, []string{"Dust_Temp=Dust"}, c.ColumnNames) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, []string{"Dust_Temp=Dust (K)"}, c.ColumnNames) },
		},
		{
			name:     "y_axis_title",
			fileYAML: "y_axis_title: Temperature",
			cli:      func(l *Layer) { l.YAxisTitle = Some("T (K)") },
			fromFile: func(t *testing.T, c *Config) { assert.Equal(t, "Temperature", c.YAxisTitle) },
			fromCLI:  func(t *testing.T, c *Config) { assert.Equal(t, "T (K)", c.YAxisTitle) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "import.yaml", tt.fileYAML+"\n")

			cfg, err := Resolve(minimalCLI(), path)
			require.NoError(t, err)
			tt.fromFile(t, cfg)

			cli := minimalCLI()
			tt.cli(&cli)
			cfg, err = Resolve(cli, path)
			require.NoError(t, err)
			tt.fromCLI(t, cfg)
		})
	}
}

func TestResolveFileSuppliesInputAndAxes(t *testing.T) {
	path := writeFile(t, "import.yaml", `
file: comets.tsv
delimiter: "\t"
x_axis: Time
y_axes:
  - Dust_Temp
  - Ice_Temp
`)
	cfg, err := Resolve(Layer{}, path)
	require.NoError(t, err)
	assert.Equal(t, "comets.tsv", cfg.File)
	assert.Equal(t, "\t", cfg.Delimiter)
	assert.Equal(t, []string{"Dust_Temp", "Ice_Temp"}, cfg.YAxes)
}

func TestResolveNullMeansUnset(t *testing.T) {
	path := writeFile(t, "import.yaml", "x_min: null\ndpi: ~\nstyle:\n")
	cfg, err := Resolve(minimalCLI(), path)
	require.NoError(t, err)
	assert.Nil(t, cfg.XMin)
	assert.Equal(t, DefaultDPI, cfg.DPI)
	assert.Equal(t, DefaultStyle, cfg.Style)
}

func TestResolveAcceptsAlternateListForms(t *testing.T) {
	path := writeFile(t, "import.yaml", `
y_axes: "Dust_Temp, Ice_Temp"
column_names:
  Dust_Temp: Dust
  Ice_Temp: Ice
`)
	cfg, err := Resolve(Layer{File: Some("d.csv"), XAxis: Some("Time")}, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dust_Temp", "Ice_Temp"}, cfg.YAxes)
	assert.Equal(t, []string{"Dust_Temp=Dust", "Ice_Temp=Ice"}, cfg.ColumnNames)
}

func TestResolveNormalizes(t *testing.T) {
	cli := minimalCLI()
	cli.Delimiter = Some(`\t`)
	cli.OutputFormat = Some(".SVG")
	cli.Style = Some(" GGPlot ")
	cli.YAxes = Some([]string{" Dust_Temp ", ""})

	cfg, err := Resolve(cli, "")
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Delimiter)
	assert.Equal(t, "svg", cfg.OutputFormat)
	assert.Equal(t, "ggplot", cfg.Style)
	assert.Equal(t, []string{"Dust_Temp"}, cfg.YAxes)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		cli   Layer
		check func(*testing.T, error)
	}{
		{
			name: "missing file",
			cli:  Layer{XAxis: Some("Time"), YAxes: Some([]string{"a"})},
			check: func(t *testing.T, err error) {
				var target *errs.MissingInputError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name: "missing x axis",
			cli:  Layer{File: Some("d.csv"), YAxes: Some([]string{"a"})},
			check: func(t *testing.T, err error) {
				var target *errs.MissingAxisError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "x_axis", target.Field)
			},
		},
		{
			name: "empty y axes",
			cli:  Layer{File: Some("d.csv"), XAxis: Some("Time"), YAxes: Some([]string{})},
			check: func(t *testing.T, err error) {
				var target *errs.MissingAxisError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "y_axes", target.Field)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cli, "")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestResolveInvalidValues(t *testing.T) {
	tests := []struct {
		field string
		set   func(*Layer)
	}{
		{"dpi", func(l *Layer) { l.DPI = Some(0) }},
		{"font_size", func(l *Layer) { l.FontSize = Some(-3) }},
		{"x_ticks", func(l *Layer) { l.XTicks = Some(0) }},
		{"x_max", func(l *Layer) { l.XMin = Some(5.0); l.XMax = Some(5.0) }},
		{"y_max", func(l *Layer) { l.YMin = Some(3.0); l.YMax = Some(1.0) }},
		{"delimiter", func(l *Layer) { l.Delimiter = Some(";;") }},
		{"style", func(l *Layer) { l.Style = Some("neon") }},
		{"colors", func(l *Layer) { l.Colors = Some([]string{"blue", "not-a-color"}) }},
		{"colors", func(l *Layer) { l.Colors = Some([]string{"#ff000080"}) }},
		{"shapes", func(l *Layer) { l.Shapes = Some([]string{"blob"}) }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cli := minimalCLI()
			tt.set(&cli)
			_, err := Resolve(cli, "")
			var target *errs.InvalidValueError
			require.True(t, errors.As(err, &target), "got %v", err)
			assert.Equal(t, tt.field, target.Field)
		})
	}
}

func TestResolveMalformedColumnMapping(t *testing.T) {
	cli := minimalCLI()
	cli.ColumnNames = Some([]string{"Dust_Temp=Dust", "IceTemp"})

	_, err := Resolve(cli, "")
	var target *errs.InvalidColumnMappingError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "IceTemp", target.Token)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Resolve(minimalCLI(), filepath.Join(t.TempDir(), "nope.yaml"))
		var target *errs.ConfigLoadError
		require.True(t, errors.As(err, &target))
		assert.Contains(t, target.Path, "nope.yaml")
	})

	t.Run("not a mapping", func(t *testing.T) {
		path := writeFile(t, "list.yaml", "- a\n- b\n")
		_, err := LoadFile(path)
		var target *errs.ConfigLoadError
		assert.True(t, errors.As(err, &target))
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "x_axis: [unclosed\n")
		_, err := LoadFile(path)
		var target *errs.ConfigLoadError
		assert.True(t, errors.As(err, &target))
	})

	t.Run("non numeric value names the field", func(t *testing.T) {
		path := writeFile(t, "typo.yaml", "x_min: abc\n")
		_, err := LoadFile(path)
		var target *errs.InvalidValueError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, "x_min", target.Field)
		assert.Equal(t, "abc", target.Value)
	})

	t.Run("empty file is an empty layer", func(t *testing.T) {
		path := writeFile(t, "empty.yaml", "")
		layer, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, Layer{}, layer)
	})
}

func TestLoadFileIgnoresUnknownKeys(t *testing.T) {
	path := writeFile(t, "extra.yaml", "x_axis: Time\nmystery: 1\n")
	layer, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Time", layer.XAxis.Value())
}

func TestExportRoundTripIsIdempotent(t *testing.T) {
	xMin, xTicks := -1.25, 5
	configs := []*Config{
		{
			File: "data.csv", Delimiter: ",", XAxis: "Time", YAxes: []string{"Dust_Temp"},
			DPI: 300, FontSize: 12, OutputFormat: "png", Style: "petroff10",
		},
		{
			File: "~/obs/comets.tsv", Delimiter: "\t", XAxis: "Time",
			YAxes: []string{"Dust_Temp", "Ice_Temp"}, XMin: &xMin, XTicks: &xTicks,
			Colors: []string{"blue", "#00ff00"}, Shapes: []string{"o", "s"},
			Legend: true, DPI: 150, FontSize: 10, OutputFile: "out/plot.html",
			OutputFormat: "svg", Interactive: true, UseUncertainties: true, Style: "ggplot",
			ColumnNames: []string{"Dust_Temp=Dust (K)"}, XAxisTitle: "Days", YAxisTitle: "Temperature: K",
			Title: "Comet 67P", CometIDs: []string{"67P"},
		},
	}

	for i, cfg := range configs {
		first := filepath.Join(t.TempDir(), "first.yaml")
		require.NoError(t, Export(cfg, first), "config %d", i)

		reimported, err := Resolve(Layer{}, first)
		require.NoError(t, err, "config %d", i)
		assert.Equal(t, cfg, reimported, "config %d", i)

		second := filepath.Join(t.TempDir(), "second.yaml")
		require.NoError(t, Export(reimported, second))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "config %d", i)
	}
}

func TestMarshalKeyNames(t *testing.T) {
	cfg, err := Resolve(minimalCLI(), "")
	require.NoError(t, err)
	data, err := Marshal(cfg)
	require.NoError(t, err)

	out := string(data)
	for _, key := range []string{"file:", "delimiter:", "x_axis:", "y_axes:", "legend:", "dpi:",
		"font_size:", "output_format:", "interactive:", "use_uncertainties:", "style:"} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "x_min:")
}

func TestOpt(t *testing.T) {
	var unset Opt[int]
	assert.False(t, unset.IsSet())
	assert.Nil(t, unset.Ptr())
	assert.Equal(t, 7, unset.Or(Some(7)).Value())

	zero := Some(0)
	v, ok := zero.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, zero.Or(Some(7)).Value(), "a supplied zero still wins")
}
