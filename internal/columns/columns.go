// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package columns maps table column names to the display names used for
// legends and axis titles. The table itself is never renamed.
package columns

import (
	"slices"
	"strings"

	"astrograph/internal/errs"
)

// Separator splits an "Original=Display" mapping token.
const Separator = "="

// Mapping holds original → display name pairs.
type Mapping map[string]string

// Parse turns "Original=Display" tokens into a Mapping. Token order does not
// matter; a later token for the same original column wins.
func Parse(tokens []string) (Mapping, error) {
	m := make(Mapping, len(tokens))
	for _, tok := range tokens {
		original, display, ok := strings.Cut(tok, Separator)
		original = strings.TrimSpace(original)
		display = strings.TrimSpace(display)
		if !ok || original == "" || display == "" {
			return nil, &errs.InvalidColumnMappingError{Token: tok}
		}
		m[original] = display
	}
	return m, nil
}

// Display returns the display name for column, defaulting to the column itself.
func (m Mapping) Display(column string) string {
	if name, ok := m[column]; ok {
		return name
	}
	return column
}

// Tokens renders the mapping back into sorted "Original=Display" tokens.
func (m Mapping) Tokens() []string {
	out := make([]string, 0, len(m))
	for original, display := range m {
		out = append(out, original+Separator+display)
	}
	slices.Sort(out)
	return out
}

// Apply parses the mapping tokens and returns the display name of every axis
// column. Columns without a mapping keep their own name.
func Apply(tokens []string, axisColumns []string) (map[string]string, error) {
	m, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(axisColumns))
	for _, col := range axisColumns {
		out[col] = m.Display(col)
	}
	return out, nil
}
