// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"astrograph/internal/logger"
)

// ErrNoHeader is returned for an input without a header row.
var ErrNoHeader = errors.New("no header row")

// Load reads the table at path. Files ending in .xlsx are read from their
// first sheet; anything else is parsed as delimited text.
func Load(path string, delimiter string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path, "")
	}

	comma, size := utf8.DecodeRuneInString(delimiter)
	if size == 0 || size != len(delimiter) {
		return nil, fmt.Errorf("invalid delimiter %q", delimiter)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	t, err := Read(f, comma)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	logger.Debug("Loaded table", "path", path, "columns", len(t.columns), "rows", t.Len())
	return t, nil
}

// Read parses delimited text whose first record is the header.
func Read(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = comma != ' ' && comma != '\t'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return New(header, records), nil
}
