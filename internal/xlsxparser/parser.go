// =============================================================================
// Seatcard Sorter - XLSX Sheet Reader
// =============================================================================
//
// Box-office exports and version-mapping sheets are often kept as Excel
// workbooks rather than CSV. This module reads one worksheet and feeds it
// through the same csvparser.Schema used for CSV input, so header validation
// and field-count rules are identical regardless of file type.
//
// SHEET LAYOUT:
//   | Row 1  | header names (validated against the schema)        |
//   | Row 2+ | data rows; fully empty rows are skipped            |
//
//   Excel drops trailing empty cells, so a data row shorter than the header
//   is padded with empty values. A row longer than the header is an error.
//
// =============================================================================

package xlsxparser

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/seatcard-sorter/internal/csvparser"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ReadRows reads the first worksheet of the workbook at path.
//
// PARAMETERS:
//   - path: the .xlsx file to read.
//   - schema: the column rules; its ActualColumns are set from the header.
//
// RETURNS:
//   - the data rows in sheet order.
//   - an error if the workbook cannot be opened or the sheet is malformed.
func ReadRows(path string, schema *csvparser.Schema) ([]csvparser.Row, error) {
	return ReadSheet(path, "", schema)
}

// ReadSheet reads the named worksheet. An empty sheet name selects the
// first sheet in the workbook.
func ReadSheet(path, sheet string, schema *csvparser.Schema) ([]csvparser.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, errors.New("workbook has no sheets")
		}
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}

	return buildRows(cells, schema)
}

// buildRows validates the header and converts the remaining sheet rows.
func buildRows(cells [][]string, schema *csvparser.Schema) ([]csvparser.Row, error) {
	var rows []csvparser.Row
	headerRead := false

	for i, cellRow := range cells {
		if isRowEmpty(cellRow) {
			continue
		}

		if !headerRead {
			if err := schema.ValidateHeaders(cellRow); err != nil {
				return nil, &csvparser.ParseError{Row: i + 1, Err: err}
			}
			headerRead = true
			continue
		}

		width := len(schema.ActualColumns())
		values := make([]string, width)
		if len(cellRow) > width {
			values = cellRow
		} else {
			copy(values, cellRow)
		}

		row, err := schema.CreateRow(values)
		if err != nil {
			return nil, &csvparser.ParseError{Row: i + 1, Column: len(values), Err: err}
		}
		rows = append(rows, row)
	}

	if !headerRead {
		if err := schema.ValidateHeaders(nil); err != nil {
			return nil, &csvparser.ParseError{Row: 1, Err: err}
		}
	}

	return rows, nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// IsWorkbook reports whether path names an Excel workbook by extension.
func IsWorkbook(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm")
}
