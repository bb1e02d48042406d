// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package theme

import (
	"fmt"
	"strings"
)

// Marker is a point glyph. Values double as the symbol names of the
// interactive page.
type Marker string

const (
	MarkerCircle        Marker = "circle"
	MarkerSquare        Marker = "square"
	MarkerTriangleUp    Marker = "triangle-up"
	MarkerTriangleDown  Marker = "triangle-down"
	MarkerTriangleLeft  Marker = "triangle-left"
	MarkerTriangleRight Marker = "triangle-right"
	MarkerDiamond       Marker = "diamond"
	MarkerHexagon       Marker = "hexagon"
	MarkerPentagon      Marker = "pentagon"
	MarkerStar          Marker = "star"
	MarkerCross         Marker = "cross"
	MarkerX             Marker = "x"
	MarkerPoint         Marker = "point"
)

// matplotlib-style marker codes.
var markerCodes = map[string]Marker{
	"o": MarkerCircle,
	"s": MarkerSquare,
	"^": MarkerTriangleUp,
	"v": MarkerTriangleDown,
	"<": MarkerTriangleLeft,
	">": MarkerTriangleRight,
	"d": MarkerDiamond,
	"D": MarkerDiamond,
	"h": MarkerHexagon,
	"H": MarkerHexagon,
	"p": MarkerPentagon,
	"*": MarkerStar,
	"+": MarkerCross,
	"x": MarkerX,
	"X": MarkerX,
	".": MarkerPoint,
}

var markerNames = map[Marker]bool{
	MarkerCircle: true, MarkerSquare: true, MarkerTriangleUp: true,
	MarkerTriangleDown: true, MarkerTriangleLeft: true, MarkerTriangleRight: true,
	MarkerDiamond: true, MarkerHexagon: true, MarkerPentagon: true,
	MarkerStar: true, MarkerCross: true, MarkerX: true, MarkerPoint: true,
}

// ParseMarker resolves a shape token: either a single-character code such as
// "o" or "^", or a symbol name such as "triangle-up".
func ParseMarker(token string) (Marker, error) {
	tok := strings.TrimSpace(token)
	if m, ok := markerCodes[tok]; ok {
		return m, nil
	}
	if m := Marker(strings.ToLower(tok)); markerNames[m] {
		return m, nil
	}
	return "", fmt.Errorf("unknown marker %q", token)
}
