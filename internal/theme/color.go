// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// single-letter color codes as understood by matplotlib.
var shortColors = map[string]color.RGBA{
	"b": rgb(0x00, 0x00, 0xff),
	"g": rgb(0x00, 0x80, 0x00),
	"r": rgb(0xff, 0x00, 0x00),
	"c": rgb(0x00, 0xbf, 0xbf),
	"m": rgb(0xbf, 0x00, 0xbf),
	"y": rgb(0xbf, 0xbf, 0x00),
	"k": rgb(0x00, 0x00, 0x00),
	"w": rgb(0xff, 0xff, 0xff),
}

var tableauColors = map[string]string{
	"tab:blue":   "#1f77b4",
	"tab:orange": "#ff7f0e",
	"tab:green":  "#2ca02c",
	"tab:red":    "#d62728",
	"tab:purple": "#9467bd",
	"tab:brown":  "#8c564b",
	"tab:pink":   "#e377c2",
	"tab:gray":   "#7f7f7f",
	"tab:grey":   "#7f7f7f",
	"tab:olive":  "#bcbd22",
	"tab:cyan":   "#17becf",
}

// ParseColor resolves a color token against palette. Accepted forms:
// "#rgb", "#rrggbb", CSS color names ("blue", "darkorange"),
// single-letter codes ("b", "k"), "tab:<name>", palette slots "C0".."C9",
// and gray levels between "0" and "1".
func ParseColor(token string, palette []color.RGBA) (color.RGBA, error) {
	tok := strings.ToLower(strings.TrimSpace(token))
	if tok == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(tok, "#") {
		return parseHex(tok)
	}
	if c, ok := shortColors[tok]; ok {
		return c, nil
	}
	if hex, ok := tableauColors[tok]; ok {
		return parseHex(hex)
	}
	if c, ok := colornames.Map[tok]; ok {
		return c, nil
	}
	if len(tok) >= 2 && tok[0] == 'c' {
		if idx, err := strconv.Atoi(tok[1:]); err == nil && idx >= 0 && len(palette) > 0 {
			return palette[idx%len(palette)], nil
		}
	}
	if level, err := strconv.ParseFloat(tok, 64); err == nil {
		if level < 0 || level > 1 {
			return color.RGBA{}, fmt.Errorf("gray level %q outside [0, 1]", token)
		}
		v := uint8(level*255 + 0.5)
		return rgb(v, v, v), nil
	}

	return color.RGBA{}, fmt.Errorf("unknown color %q", token)
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	// Series are drawn opaque, so an alpha channel would be dropped.
	if len(h) == 8 {
		return color.RGBA{}, fmt.Errorf("hex color %q has an alpha channel, use #rrggbb", s)
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	return rgb(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
