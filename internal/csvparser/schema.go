// =============================================================================
// Seatcard Sorter - CSV Read Schema
// =============================================================================
//
// A Schema declares which columns a record type must have, which it may have,
// and whether anything else is tolerated. Validating a real header line fixes
// the column order ("actual columns") used to build every subsequent Row.
//
// =============================================================================

package csvparser

import (
	"strings"

	"github.com/pkg/errors"
)

// Schema declares required and optional columns for one record type.
// A Schema is bound to a single input: ValidateHeaders records the realized
// column order and CreateRow relies on it.
type Schema struct {
	required   []string
	optional   []string
	allowExtra bool

	actual []string
	index  map[string]int
}

// NewSchema creates a Schema. Either column list may be nil.
func NewSchema(required, optional []string, allowExtra bool) *Schema {
	return &Schema{
		required:   required,
		optional:   optional,
		allowExtra: allowExtra,
	}
}

// ActualColumns returns the column order realized from the header line.
// It is empty until ValidateHeaders succeeds.
func (s *Schema) ActualColumns() []string {
	return s.actual
}

// Has reports whether the validated header contains the named column.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// ValidateHeaders checks a header line against the schema and records its
// column order.
//
// RULES:
//   - a name may appear only once
//   - a name that is neither required nor optional is rejected unless
//     extra columns are allowed
//   - every required column must be present
func (s *Schema) ValidateHeaders(names []string) error {
	actual := make([]string, 0, len(names))
	index := make(map[string]int, len(names))
	requiredSeen := 0

	for _, name := range names {
		if _, dup := index[name]; dup {
			return errors.Wrapf(ErrDuplicateHeader, "%q appears multiple times", name)
		}

		switch {
		case contains(s.required, name):
			requiredSeen++
		case contains(s.optional, name):
		case !s.allowExtra:
			return errors.Wrapf(ErrUnexpectedHeader, "%q", name)
		}

		index[name] = len(actual)
		actual = append(actual, name)
	}

	if requiredSeen != len(s.required) {
		var missing []string
		for _, name := range s.required {
			if _, ok := index[name]; !ok {
				missing = append(missing, name)
			}
		}
		return errors.Wrapf(ErrMissingHeader, "%s (header was: %s)",
			strings.Join(missing, ", "), strings.Join(actual, ", "))
	}

	s.actual = actual
	s.index = index
	return nil
}

// CreateRow builds a Row from values listed in header order.
func (s *Schema) CreateRow(values []string) (Row, error) {
	if len(values) != len(s.actual) {
		return Row{}, errors.Wrapf(ErrFieldCount, "row has %d, header has %d",
			len(values), len(s.actual))
	}
	return Row{index: s.index, values: values}, nil
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
