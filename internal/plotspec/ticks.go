// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package plotspec

import (
	"math"
	"strconv"
)

// tickDigits is the number of significant digits kept in a tick step.
const tickDigits = 6

// Ticks returns evenly spaced tick positions from lo towards hi for a
// requested count n. The step is span/n rounded to six significant digits,
// so a span that does not divide evenly still lands on readable values; the
// result has at most n+1 marks (both ends of n intervals).
func Ticks(lo, hi float64, n int) []float64 {
	if n < 1 || !(hi > lo) {
		return []float64{lo}
	}
	step := roundSig((hi-lo)/float64(n), tickDigits)
	if step <= 0 {
		return []float64{lo, hi}
	}

	// The rounded step may overshoot hi by a few units in the last digit.
	count := n + 1
	if math.Abs(lo+float64(n)*step-hi) > float64(n)*step*1e-5 {
		count = min(int(math.Floor((hi-lo)/step+1e-9))+1, n+1)
	}

	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = roundSig(lo+float64(i)*step, 12)
	}
	return ticks
}

func roundSig(v float64, digits int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// FormatTick renders a tick value without trailing noise.
func FormatTick(v float64) string {
	return strconv.FormatFloat(roundSig(v, 10), 'g', -1, 64)
}
