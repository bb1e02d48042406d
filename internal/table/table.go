// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package table loads tabular input (delimited text or .xlsx) into named
// string columns and coerces them to numbers on demand.
package table

import (
	"math"
	"strconv"
	"strings"

	"astrograph/internal/logger"
)

// Table is an in-memory table of named columns. Cells are kept as text;
// Floats converts a column when it is plotted.
type Table struct {
	columns []string
	rows    [][]string
	index   map[string]int
}

// New builds a table from a header and records. Short records are padded
// with empty cells and long ones truncated. When a header name repeats, the
// first column with that name wins.
func New(header []string, records [][]string) *Table {
	t := &Table{
		columns: make([]string, len(header)),
		rows:    make([][]string, 0, len(records)),
		index:   make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		t.columns[i] = name
		if _, dup := t.index[name]; dup {
			logger.Warn("Duplicate column name; using the first occurrence", "column", name, "position", i+1)
			continue
		}
		t.index[name] = i
	}
	for _, rec := range records {
		row := make([]string, len(header))
		copy(row, rec)
		t.rows = append(t.rows, row)
	}
	return t
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Has reports whether the table has a column named name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Strings returns the raw cells of a column.
func (t *Table) Strings(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, true
}

// Floats returns a column coerced to numbers. Cells that are empty or not
// numeric become NaN so that callers can skip them per row.
func (t *Table) Floats(name string) ([]float64, bool) {
	cells, ok := t.Strings(name)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(cells))
	for r, cell := range cells {
		out[r] = ParseNumber(cell)
	}
	return out, true
}

// ParseNumber converts a cell to a float64, returning NaN when it is not
// numeric. Infinities count as non-numeric.
func ParseNumber(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// Filter returns a table holding only the rows for which keep returns true.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := &Table{columns: t.columns, index: t.index}
	for r, row := range t.rows {
		if keep(r) {
			out.rows = append(out.rows, row)
		}
	}
	return out
}
