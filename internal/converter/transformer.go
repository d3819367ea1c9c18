// =============================================================================
// Seatcard Sorter - Row Transformer
// =============================================================================
//
// This module turns one export row into one seat-card row.
//
// FIELD RULES:
//   - performance_dt : the performance date as MM/DD; the full date is kept
//                      on the row for sorting
//   - customer_no    : the parsed number, written without leading zeros
//   - num_years_sub  : the parsed number, or empty
//   - FullName       : first and last name, trimmed and joined by one space;
//                      a trailing " Household" is dropped
//   - Version        : see ClassifyVersion
//   - location       : see location.Resolve
//
// When the row has a version and the mapping table has an entry for that
// version and performance, the entry is stored in the column named after
// the version.
//
// =============================================================================

package converter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/seatcard-sorter/internal/location"
	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

const householdSuffix = " Household"

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer converts export rows using one set of version names and one
// version mapping.
type Transformer struct {
	names   []string
	mapping VersionMapping
}

// NewTransformer creates a Transformer. mapping may be nil.
func NewTransformer(names []string, mapping VersionMapping) *Transformer {
	return &Transformer{
		names:   names,
		mapping: mapping,
	}
}

// Transform builds the result row for src.
//
// RETURNS:
//   - the result row; an unresolvable location is flagged on the row
//   - an error if the list flags conflict or the location texts are
//     malformed beyond recovery
func (t *Transformer) Transform(src types.SourceRow) (types.ResultRow, error) {
	version, hasVersion, err := ClassifyVersion(src.CustomerNumber, src.ListFlags(), t.names)
	if err != nil {
		return types.ResultRow{}, err
	}

	res := types.ResultRow{
		PerformanceDate:     types.ShortDate(src.PerformanceDate),
		PerformanceFullDate: src.PerformanceDate,
		CustomerNumber:      strconv.FormatUint(uint64(src.CustomerNumber), 10),
		FullName:            FullName(src.FirstName, src.LastName),
		LetterSalutation:    src.LetterSalutation,
		Version:             version,
	}
	if src.YearsSubscribed != nil {
		res.YearsSubscribed = strconv.Itoa(*src.YearsSubscribed)
	}

	if hasVersion {
		if text, ok := t.mapping.Lookup(version, src.PerformanceDate); ok {
			res.SetExtra(version, text)
		}
	}

	resolution, err := location.Resolve(src.Section, src.Location)
	if err != nil {
		return types.ResultRow{}, errors.Wrapf(err, "customer_no %d", src.CustomerNumber)
	}
	resolution.Apply(&res)

	return res, nil
}

// FullName joins the trimmed name parts and drops a trailing household
// suffix, compared case-insensitively.
func FullName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)

	var name string
	switch {
	case first != "" && last != "":
		name = first + " " + last
	case first != "":
		name = first
	default:
		name = last
	}

	n := len(name) - len(householdSuffix)
	if n >= 0 && strings.EqualFold(name[n:], householdSuffix) {
		name = strings.TrimRightFunc(name[:n], unicode.IsSpace)
	}
	return name
}
