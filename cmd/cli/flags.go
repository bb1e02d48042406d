// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strconv"
	"strings"

	"astrograph/internal/config"
	"astrograph/internal/errs"

	"github.com/spf13/pflag"
)

// rawValue keeps a numeric flag's text as typed. Parsing happens when the
// layer is built so a bad value is reported against its config field.
type rawValue struct {
	text string
	typ  string
}

func (v *rawValue) String() string     { return v.text }
func (v *rawValue) Set(s string) error { v.text = s; return nil }
func (v *rawValue) Type() string       { return v.typ }

// renderFlags holds every flag that maps onto a configuration field, plus
// the import/export and run options.
type renderFlags struct {
	file      string
	delimiter string

	xAxis string
	yAxes []string

	xMin, xMax, yMin, yMax rawValue

	colors []string
	shapes []string

	legend   bool
	dpi      rawValue
	fontSize rawValue

	outputFile   string
	outputFormat string

	interactive      bool
	useUncertainties bool
	style            string

	xTicks, yTicks rawValue

	columnNames []string
	xAxisTitle  string
	yAxisTitle  string
	title       string
	cometIDs    []string

	importConfig string
	exportConfig string
	open         bool
	verbose      bool
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	f.xMin.typ, f.xMax.typ, f.yMin.typ, f.yMax.typ = "float", "float", "float", "float"
	f.dpi.typ, f.fontSize.typ, f.xTicks.typ, f.yTicks.typ = "int", "int", "int", "int"

	fs.StringVarP(&f.file, "file", "f", "", "input data file (.csv, .tsv, .xlsx, ...)")
	fs.StringVarP(&f.delimiter, "delimiter", "d", "", `field delimiter; "\t" or "tab" for TAB (default ",")`)
	fs.StringVarP(&f.xAxis, "x-axis", "x", "", "column plotted on the x axis")
	fs.StringSliceVarP(&f.yAxes, "y-axes", "y", nil, "columns plotted on the y axis, one series each")
	fs.Var(&f.xMin, "x-min", "lower x bound (default: fit the data)")
	fs.Var(&f.xMax, "x-max", "upper x bound (default: fit the data)")
	fs.Var(&f.yMin, "y-min", "lower y bound (default: fit the data)")
	fs.Var(&f.yMax, "y-max", "upper y bound (default: fit the data)")
	fs.StringSliceVar(&f.colors, "colors", nil, "series colors by position (names, #rgb or #rrggbb)")
	fs.StringSliceVar(&f.shapes, "shapes", nil, "series marker shapes by position (o, s, ^, v, <, >, D, h, x, +, *, .)")
	fs.BoolVar(&f.legend, "legend", false, "show a legend")
	fs.Var(&f.dpi, "dpi", "resolution of static images (default 300)")
	fs.Var(&f.fontSize, "font-size", "base font size in points (default 12)")
	fs.StringVarP(&f.outputFile, "output-file", "o", "", "output path (default output_graph.<format>)")
	fs.StringVar(&f.outputFormat, "output-format", "", "static image format: png, svg, jpg or jpeg (default png)")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "write an interactive HTML chart")
	fs.BoolVarP(&f.useUncertainties, "use-uncertainties", "u", false, "draw error bars from <column>_sigup/_sigdown")
	fs.StringVar(&f.style, "style", "", "chart style (default petroff10)")
	fs.Var(&f.xTicks, "x-ticks", "number of x tick intervals")
	fs.Var(&f.yTicks, "y-ticks", "number of y tick intervals")
	fs.StringSliceVar(&f.columnNames, "column-names", nil, "display names as Original=Display")
	fs.StringVar(&f.xAxisTitle, "x-axis-title", "", "x axis title")
	fs.StringVar(&f.yAxisTitle, "y-axis-title", "", "y axis title")
	fs.StringVar(&f.title, "title", "", "chart title")
	fs.StringSliceVar(&f.cometIDs, "comet-ids", nil, `keep only rows whose "Comet ID" matches`)

	fs.StringVar(&f.importConfig, "import-config", "", "YAML configuration to load")
	fs.StringVar(&f.exportConfig, "export-config", "", "write the resolved configuration to this YAML file")
	fs.BoolVar(&f.open, "open", false, "open the chart in the system viewer once written")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")
}

// layer converts the flags the user actually passed into a configuration
// layer. Flags left at their zero value stay unsupplied.
func (f *renderFlags) layer(fs *pflag.FlagSet) (config.Layer, error) {
	var l config.Layer

	supplied(fs, "file", f.file, &l.File)
	supplied(fs, "delimiter", f.delimiter, &l.Delimiter)
	supplied(fs, "x-axis", f.xAxis, &l.XAxis)
	supplied(fs, "y-axes", f.yAxes, &l.YAxes)
	supplied(fs, "colors", f.colors, &l.Colors)
	supplied(fs, "shapes", f.shapes, &l.Shapes)
	supplied(fs, "legend", f.legend, &l.Legend)
	supplied(fs, "output-file", f.outputFile, &l.OutputFile)
	supplied(fs, "output-format", f.outputFormat, &l.OutputFormat)
	supplied(fs, "interactive", f.interactive, &l.Interactive)
	supplied(fs, "use-uncertainties", f.useUncertainties, &l.UseUncertainties)
	supplied(fs, "style", f.style, &l.Style)
	supplied(fs, "column-names", f.columnNames, &l.ColumnNames)
	supplied(fs, "x-axis-title", f.xAxisTitle, &l.XAxisTitle)
	supplied(fs, "y-axis-title", f.yAxisTitle, &l.YAxisTitle)
	supplied(fs, "title", f.title, &l.Title)
	supplied(fs, "comet-ids", f.cometIDs, &l.CometIDs)

	floats := []struct {
		name string
		raw  *rawValue
		dst  *config.Opt[float64]
	}{
		{"x-min", &f.xMin, &l.XMin},
		{"x-max", &f.xMax, &l.XMax},
		{"y-min", &f.yMin, &l.YMin},
		{"y-max", &f.yMax, &l.YMax},
	}
	for _, v := range floats {
		if err := suppliedNumber(fs, v.name, v.raw, v.dst, parseFloat); err != nil {
			return config.Layer{}, err
		}
	}

	ints := []struct {
		name string
		raw  *rawValue
		dst  *config.Opt[int]
	}{
		{"dpi", &f.dpi, &l.DPI},
		{"font-size", &f.fontSize, &l.FontSize},
		{"x-ticks", &f.xTicks, &l.XTicks},
		{"y-ticks", &f.yTicks, &l.YTicks},
	}
	for _, v := range ints {
		if err := suppliedNumber(fs, v.name, v.raw, v.dst, strconv.Atoi); err != nil {
			return config.Layer{}, err
		}
	}
	return l, nil
}

func supplied[T any](fs *pflag.FlagSet, name string, v T, dst *config.Opt[T]) {
	if fs.Changed(name) {
		*dst = config.Some(v)
	}
}

func suppliedNumber[T any](fs *pflag.FlagSet, name string, raw *rawValue, dst *config.Opt[T], parse func(string) (T, error)) error {
	if !fs.Changed(name) {
		return nil
	}
	v, err := parse(strings.TrimSpace(raw.text))
	if err != nil {
		return &errs.InvalidValueError{
			Field:  fieldName(name),
			Value:  raw.text,
			Reason: "expected " + raw.typ,
		}
	}
	*dst = config.Some(v)
	return nil
}

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// fieldName maps a flag name to its YAML key.
func fieldName(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}
