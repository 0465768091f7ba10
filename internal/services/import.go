package services

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "inventory-system/pkg/errors"
)

// importRow maps a header cell to the value in the same column. Headers are
// trimmed but kept in their original case so both snake_case and camelCase
// spreadsheets resolve.
type importRow map[string]string

// pick returns the first non-empty value among the given keys. Callers list
// the snake_case header first and the camelCase alias second.
func (r importRow) pick(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// decodeUploadRows reads an uploaded spreadsheet into raw cell rows. The
// format is chosen by file extension: .csv is parsed directly, .xlsx and
// .xls go through excelize and use the first sheet.
func decodeUploadRows(filename string, file io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, apperrors.NewInvalidInputError("could not parse csv file: %v", err)
		}
		return rows, nil
	case ".xlsx", ".xls":
		workbook, err := excelize.OpenReader(file)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("could not open spreadsheet: %v", err)
		}
		defer workbook.Close()

		sheets := workbook.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewInvalidInputError("spreadsheet has no sheets")
		}
		rows, err := workbook.GetRows(sheets[0])
		if err != nil {
			return nil, apperrors.NewInvalidInputError("could not read spreadsheet: %v", err)
		}
		return rows, nil
	default:
		return nil, apperrors.NewInvalidInputError("unsupported file type %q, expected .csv, .xlsx or .xls", filepath.Ext(filename))
	}
}

// rowsToRecords turns raw cell rows into header-keyed records. The first
// row is the header; rows with no non-empty cell are skipped.
func rowsToRecords(rows [][]string) ([]importRow, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewInvalidInputError("file is empty")
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	records := make([]importRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(importRow, len(header))
		empty := true
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			value := strings.TrimSpace(cell)
			record[header[i]] = value
			if value != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
