// =============================================================================
// Seatcard Sorter - CSV Parse Errors
// =============================================================================
//
// Every malformed-input condition the reader or schema can detect is one of
// the sentinel errors below, wrapped in a *ParseError that records where in
// the input the problem was found. Callers test with errors.Is.
//
// =============================================================================

package csvparser

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrQuote reports content after a closing double-quote that is not a
	// field or row boundary, or a quoted field still open at end of input.
	ErrQuote = errors.New("double-quote not at a field boundary")

	// ErrBareQuote reports a double-quote inside an unquoted field.
	ErrBareQuote = errors.New("double-quote in unquoted field")

	// ErrBareCR reports a CR outside quotes that is not followed by LF.
	ErrBareCR = errors.New("CR must be followed by LF to end a row")

	// ErrBareLF reports an LF outside quotes that is not preceded by CR.
	ErrBareLF = errors.New("LF must be preceded by CR to end a row")

	// ErrFieldCount reports a row whose field count differs from the header.
	ErrFieldCount = errors.New("wrong number of fields")

	ErrDuplicateHeader  = errors.New("duplicate header")
	ErrMissingHeader    = errors.New("missing required header")
	ErrUnexpectedHeader = errors.New("unexpected header")
)

// ParseError is returned for any CSV format failure.
// Row and Column are 1-based; Column is 0 for header-level failures.
type ParseError struct {
	Row    int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %d: %v", e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
