// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package theme holds the named cosmetic styles and the parsers for color and
// marker tokens. Both renderers read colors and markers from here so that a
// series looks the same in a PNG and in the interactive page.
package theme

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// DefaultName is the style used when none is configured.
const DefaultName = "petroff10"

// Theme describes palette and chrome colors for a named style.
type Theme struct {
	Name       string
	Palette    []color.RGBA
	Background color.RGBA
	Plot       color.RGBA // plot area fill
	Grid       color.RGBA
	Axis       color.RGBA
	Text       color.RGBA
	ShowGrid   bool
	Marker     Marker // default marker for series without a shape
}

// PaletteColor returns the palette slot for series i, cycling when needed.
func (t Theme) PaletteColor(i int) color.RGBA {
	return t.Palette[i%len(t.Palette)]
}

var (
	white = rgb(0xff, 0xff, 0xff)
	black = rgb(0x00, 0x00, 0x00)
)

var themes = map[string]Theme{
	"petroff10": {
		Name: "petroff10",
		Palette: hexes("#3f90da", "#ffa90e", "#bd1f01", "#94a4a2", "#832db6",
			"#a96b59", "#e76300", "#b9ac70", "#717581", "#92dadd"),
		Background: white,
		Plot:       white,
		Grid:       rgb(0xdd, 0xdd, 0xdd),
		Axis:       black,
		Text:       black,
		Marker:     MarkerCircle,
	},
	"default": {
		Name: "default",
		Palette: hexes("#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"),
		Background: white,
		Plot:       white,
		Grid:       rgb(0xb0, 0xb0, 0xb0),
		Axis:       black,
		Text:       black,
		Marker:     MarkerCircle,
	},
	"classic": {
		Name:       "classic",
		Palette:    hexes("#0000ff", "#008000", "#ff0000", "#00bfbf", "#bf00bf", "#bfbf00", "#000000"),
		Background: rgb(0xbf, 0xbf, 0xbf),
		Plot:       white,
		Grid:       black,
		Axis:       black,
		Text:       black,
		Marker:     MarkerCircle,
	},
	"ggplot": {
		Name:       "ggplot",
		Palette:    hexes("#e24a33", "#348abd", "#988ed5", "#777777", "#fbc15e", "#8eba42", "#ffb5b8"),
		Background: white,
		Plot:       rgb(0xe5, 0xe5, 0xe5),
		Grid:       white,
		Axis:       rgb(0x55, 0x55, 0x55),
		Text:       rgb(0x55, 0x55, 0x55),
		ShowGrid:   true,
		Marker:     MarkerCircle,
	},
	"grayscale": {
		Name:       "grayscale",
		Palette:    hexes("#000000", "#666666", "#999999", "#b3b3b3"),
		Background: white,
		Plot:       white,
		Grid:       rgb(0xcc, 0xcc, 0xcc),
		Axis:       black,
		Text:       black,
		Marker:     MarkerCircle,
	},
}

// Lookup returns the named theme. Names are case-insensitive.
func Lookup(name string) (Theme, error) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown style %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	t.Palette = slices.Clone(t.Palette)
	return t, nil
}

// Names lists the known styles in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// hexes parses palette literals; it panics on a bad literal since they are compiled in.
func hexes(values ...string) []color.RGBA {
	out := make([]color.RGBA, len(values))
	for i, v := range values {
		c, err := parseHex(v)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}
