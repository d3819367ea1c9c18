// =============================================================================
// Seatcard Sorter - File Operations
// =============================================================================
//
// Readers and writers for the four files the converter works with:
//
//   | File            | Format                 | Reader / Writer       |
//   |-----------------|------------------------|-----------------------|
//   | version names   | one name per line      | ReadVersionNames      |
//   | version mapping | CSV or XLSX            | ReadVersionMappings   |
//   | export          | CSV or XLSX            | ReadSourceRows        |
//   | seat cards      | CSV                    | ReadResultRows        |
//   |                 |                        | WriteResultRows       |
//
// Paths ending in .xlsx or .xlsm are read with the spreadsheet reader; every
// other path is read as strict CSV.
//
// =============================================================================

package converter

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/seatcard-sorter/internal/csvparser"
	"github.com/ginjaninja78/seatcard-sorter/internal/csvwriter"
	"github.com/ginjaninja78/seatcard-sorter/internal/types"
	"github.com/ginjaninja78/seatcard-sorter/internal/xlsxparser"
)

// ReadVersionNames reads one version name per line. Blank lines are kept
// so that list positions stay aligned with line numbers. A leading byte
// order mark is dropped.
func ReadVersionNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse list-name file")
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to parse list-name file")
	}
	return names, nil
}

// ReadVersionMappings reads a version-mapping file.
//
// RETURNS:
//   - the mapping table
//   - the version names that have a column in the file, in the order of
//     names
func ReadVersionMappings(path string, names, layouts []string) (VersionMapping, []string, error) {
	schema := csvparser.NewSchema(types.VersionMappingColumns, names, true)
	rows, err := readRows(path, schema)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to parse version mapping file")
	}

	var present []string
	for _, name := range names {
		if schema.Has(name) {
			present = append(present, name)
		}
	}

	parsed := make([]types.VersionMappingRow, 0, len(rows))
	for _, row := range rows {
		m, err := types.VersionMappingRowFromRow(row, present, layouts)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unable to parse version mapping file")
		}
		parsed = append(parsed, m)
	}

	return NewVersionMapping(parsed), present, nil
}

// ReadSourceRows reads a ticketing export.
func ReadSourceRows(path string, layouts []string) ([]types.SourceRow, error) {
	schema := csvparser.NewSchema(types.SourceColumns, nil, true)
	rows, err := readRows(path, schema)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse source CSV")
	}

	sources := make([]types.SourceRow, 0, len(rows))
	for i, row := range rows {
		src, err := types.SourceRowFromRow(row, layouts)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse source CSV: record %d", i+1)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// ReadResultRows reads a seat-card file written earlier.
//
// RETURNS:
//   - the rows; their sort fields are unset until Resort runs
//   - the header in file order, for writing the rows back out
func ReadResultRows(path string) ([]types.ResultRow, []string, error) {
	schema := csvparser.NewSchema(types.ResultColumns, nil, true)
	rows, err := readRows(path, schema)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to parse source CSV")
	}

	results := make([]types.ResultRow, len(rows))
	for i, row := range rows {
		results[i] = types.ResultRowFromRow(row)
	}
	return results, schema.ActualColumns(), nil
}

// WriteResultRows writes rows to a new CSV file at path.
func WriteResultRows(path string, headers []string, rows []types.ResultRow, bom bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to write target CSV")
	}

	records := make([]csvwriter.Record, len(rows))
	for i, row := range rows {
		records[i] = row
	}

	writeErr := csvwriter.NewWriter(f, csvwriter.WithBOM(bom)).WriteAll(headers, records)
	closeErr := f.Close()
	if writeErr != nil {
		return errors.Wrap(writeErr, "unable to write target CSV")
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "unable to write target CSV")
	}
	return nil
}

// readRows reads every row of a CSV or spreadsheet file against schema.
func readRows(path string, schema *csvparser.Schema) ([]csvparser.Row, error) {
	if xlsxparser.IsWorkbook(path) {
		return xlsxparser.ReadRows(path, schema)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	reader := csvparser.NewReader(f, schema)
	defer reader.Close()

	return reader.ReadAll()
}
