// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package table

import (
	"strings"

	"astrograph/internal/errs"
	"astrograph/internal/logger"
)

// CometIDColumn is the column matched by FilterCometIDs.
const CometIDColumn = "Comet ID"

// FilterCometIDs keeps only the rows whose Comet ID is one of ids. Both sides
// are compared after trimming whitespace.
func FilterCometIDs(t *Table, ids []string) (*Table, error) {
	if len(ids) == 0 {
		return t, nil
	}
	cells, ok := t.Strings(CometIDColumn)
	if !ok {
		return nil, &errs.InvalidValueError{
			Field:  "comet_ids",
			Reason: "table has no \"" + CometIDColumn + "\" column",
		}
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[strings.TrimSpace(id)] = true
	}
	out := t.Filter(func(row int) bool {
		return wanted[strings.TrimSpace(cells[row])]
	})
	if out.Len() == 0 {
		logger.Warn("Comet ID filter removed every row", "comet_ids", ids)
	}
	return out, nil
}
