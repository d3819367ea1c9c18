package types

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/seatcard-sorter/internal/csvparser"
)

// =============================================================================
// BOUNDARY ERRORS
// =============================================================================

var (
	// ErrCustomerNumber is returned when customer_no is not an unsigned integer.
	ErrCustomerNumber = errors.New("invalid customer number")

	// ErrDate is returned when a date value matches none of the layouts.
	ErrDate = errors.New("invalid date")
)

// DefaultDateLayouts are the layouts tried, in order, when parsing the
// performance date of an export or mapping file.
var DefaultDateLayouts = []string{
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses value with the first layout that accepts it.
func ParseDate(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrDate, "%q", value)
}

// ShortDate formats t as the MM/DD text written to the output.
func ShortDate(t time.Time) string {
	return t.Format("01/02")
}

// ParseCustomerNumber parses a customer_no value.
func ParseCustomerNumber(value string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrCustomerNumber, "%q", value)
	}
	return uint32(n), nil
}

// =============================================================================
// ROW CONVERSION
// =============================================================================

// SourceRowFromRow converts a validated export row.
func SourceRowFromRow(row csvparser.Row, layouts []string) (SourceRow, error) {
	date, err := ParseDate(row.Get(ColPerformanceDate), layouts)
	if err != nil {
		return SourceRow{}, errors.Wrap(err, ColPerformanceDate)
	}

	customer, err := ParseCustomerNumber(row.Get(ColCustomerNumber))
	if err != nil {
		return SourceRow{}, err
	}

	src := SourceRow{
		PerformanceName:  row.Get(ColPerformanceName),
		PerformanceDate:  date,
		CustomerNumber:   customer,
		Location:         row.Get(ColLocation),
		Section:          row.Get(ColSection),
		FirstName:        row.Get(ColFirstName),
		LastName:         row.Get(ColLastName),
		LetterSalutation: row.Get(ColSalutation),
		Aisle:            row.Get(ColAisle),
	}

	if years, err := strconv.Atoi(strings.TrimSpace(row.Get(ColYearsSubscribed))); err == nil {
		src.YearsSubscribed = &years
	}

	for i, name := range ListColumns {
		src.Lists[i] = row.Get(name)
	}

	return src, nil
}

// ResultRowFromRow converts a row of a previously written result file.
// Base columns fill the named fields; every other column goes to Extra so it
// survives a rewrite. The sort fields are left for the caller to derive.
func ResultRowFromRow(row csvparser.Row) ResultRow {
	res := ResultRow{
		PerformanceDate:  row.Get(ColPerformanceDate),
		CustomerNumber:   row.Get(ColCustomerNumber),
		Location:         row.Get(ColLocation),
		FullName:         row.Get(ColFullName),
		LetterSalutation: row.Get(ColSalutation),
		YearsSubscribed:  row.Get(ColYearsSubscribed),
		Version:          row.Get(ColVersion),
	}

	for i, name := range row.Columns() {
		if isResultColumn(name) {
			continue
		}
		res.SetExtra(name, row.Values()[i])
	}

	return res
}

// VersionMappingRowFromRow converts a mapping-file row, keeping the values of
// the given version columns.
func VersionMappingRowFromRow(row csvparser.Row, versions []string, layouts []string) (VersionMappingRow, error) {
	date, err := ParseDate(row.Get(ColPerfDate), layouts)
	if err != nil {
		return VersionMappingRow{}, errors.Wrap(err, ColPerfDate)
	}

	m := VersionMappingRow{
		PerformanceDate: date,
		Values:          make(map[string]string, len(versions)),
	}
	for _, v := range versions {
		if value, ok := row.Lookup(v); ok {
			m.Values[v] = value
		}
	}
	return m, nil
}

func isResultColumn(name string) bool {
	for _, c := range ResultColumns {
		if c == name {
			return true
		}
	}
	return false
}
