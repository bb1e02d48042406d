// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a worksheet whose first row is the header. An empty sheet
// name selects the first sheet in the workbook.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrNoHeader)
	}
	return New(rows[0], rows[1:]), nil
}
