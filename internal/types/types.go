// =============================================================================
// Seatcard Sorter - Shared Types
// =============================================================================
//
// This package contains the record types shared by the converter, the
// location resolver and the command layer. Each record kind is an explicit
// struct; the raw csvparser.Row is only used at the boundary, where the
// conversion functions in rows.go turn it into one of these types.
//
// RECORD KINDS:
//   - SourceRow         : one line of the ticketing export
//   - ResultRow         : one line of the seat-card output
//   - VersionMappingRow : per-performance display text for each version
//
// =============================================================================

package types

import "time"

// =============================================================================
// COLUMN SETS
// =============================================================================

// ErrorLevel marks a ResultRow whose location could not be resolved.
// It doubles as the prefix of such a row's location text.
const ErrorLevel = "ERROR "

// Source export columns.
const (
	ColPerformanceName = "performance_name"
	ColPerformanceDate = "performance_dt"
	ColCustomerNumber  = "customer_no"
	ColLocation        = "location"
	ColSection         = "section"
	ColFirstName       = "fname"
	ColLastName        = "lname"
	ColSalutation      = "lsal"
	ColYearsSubscribed = "num_years_sub"
	ColAisle           = "aisle"
)

// Result-only columns.
const (
	ColFullName = "FullName"
	ColVersion  = "Version"
)

// ColPerfDate is the date column of the version-mapping file.
const ColPerfDate = "PerfDate"

// ListColumns are the five list-membership flag columns, in ordinal order.
var ListColumns = []string{"list1", "list2", "list3", "list4", "list5"}

// SourceColumns are the columns every ticketing export must contain.
var SourceColumns = append([]string{
	ColPerformanceName,
	ColPerformanceDate,
	ColCustomerNumber,
	ColLocation,
	ColSection,
	ColFirstName,
	ColLastName,
	ColSalutation,
	ColYearsSubscribed,
	ColAisle,
}, ListColumns...)

// ResultColumns are the base output columns, in output order. Version
// display columns follow them when a mapping file is in use.
var ResultColumns = []string{
	ColPerformanceDate,
	ColCustomerNumber,
	ColLocation,
	ColFullName,
	ColSalutation,
	ColYearsSubscribed,
	ColVersion,
}

// VersionMappingColumns are the required columns of a version-mapping file.
var VersionMappingColumns = []string{ColPerfDate}

// =============================================================================
// RECORD TYPES
// =============================================================================

// SourceRow is one seat from the ticketing export.
type SourceRow struct {
	PerformanceName  string
	PerformanceDate  time.Time
	CustomerNumber   uint32
	Location         string
	Section          string
	FirstName        string
	LastName         string
	LetterSalutation string

	// YearsSubscribed is nil when the export value is empty or not a number.
	YearsSubscribed *int

	Aisle string

	// Lists holds the raw list1..list5 values; a non-empty value means the
	// customer is on that list.
	Lists [5]string
}

// ListFlags reports which list columns are set.
func (s SourceRow) ListFlags() [5]bool {
	var flags [5]bool
	for i, v := range s.Lists {
		flags[i] = v != ""
	}
	return flags
}

// ResultRow is one seat card. The exported string fields are written to the
// output file; Level, Section, Row, SeatNumber and PerformanceFullDate are
// derived for sorting only and are never serialized.
type ResultRow struct {
	PerformanceDate  string // MM/DD
	CustomerNumber   string
	Location         string
	FullName         string
	LetterSalutation string
	YearsSubscribed  string
	Version          string

	// Extra holds any other column: per-version display values written by
	// the converter, or pass-through columns read from an existing file.
	Extra map[string]string

	Level               string
	Section             string
	Row                 string
	SeatNumber          uint32
	PerformanceFullDate time.Time
}

// IsError reports whether the row carries the unresolved-location sentinel.
func (r ResultRow) IsError() bool {
	return r.Level == ErrorLevel
}

// SetExtra stores a non-base column value.
func (r *ResultRow) SetExtra(name, value string) {
	if r.Extra == nil {
		r.Extra = make(map[string]string)
	}
	r.Extra[name] = value
}

// Field implements csvwriter.Record.
func (r ResultRow) Field(name string) (string, bool) {
	switch name {
	case ColPerformanceDate:
		return r.PerformanceDate, true
	case ColCustomerNumber:
		return r.CustomerNumber, true
	case ColLocation:
		return r.Location, true
	case ColFullName:
		return r.FullName, true
	case ColSalutation:
		return r.LetterSalutation, true
	case ColYearsSubscribed:
		return r.YearsSubscribed, true
	case ColVersion:
		return r.Version, true
	}
	v, ok := r.Extra[name]
	return v, ok
}

// VersionMappingRow gives, for one performance, the display text of each
// version present in the mapping file.
type VersionMappingRow struct {
	PerformanceDate time.Time
	Values          map[string]string
}
