// =============================================================================
// Seatcard Sorter - CSV Reader
// =============================================================================
//
// This module reads CSV text in a strict RFC 4180 dialect and turns it into
// schema-validated rows. Unlike encoding/csv it refuses anything ambiguous:
//   - rows must end in CRLF; a lone CR or LF outside quotes is an error
//   - a field is quoted only if its first character is a double-quote
//   - inside quotes, "" is a literal quote and CR/LF are literal content
//   - after a closing quote only a comma, CR or end of input may follow
//   - unquoted fields may not contain a double-quote
//   - every data row must have exactly as many fields as the header
//
// The input is consumed one rune at a time through a buffered reader, so a
// field, a quote pair or a CRLF split across read boundaries is handled the
// same as one that arrives in a single chunk.
//
// USAGE:
//   schema := csvparser.NewSchema(required, nil, true)
//   reader := csvparser.NewReader(file, schema)
//   defer reader.Close()
//   rows, err := reader.ReadAll()
//
// =============================================================================

package csvparser

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// =============================================================================
// PARSER STATE
// =============================================================================

type state int

const (
	// stateFieldStart: nothing read for the current field yet.
	stateFieldStart state = iota
	stateUnquoted
	stateQuoted
	// stateQuoteInQuoted: a double-quote was read inside a quoted field; the
	// next rune decides between an escaped quote and the end of the field.
	stateQuoteInQuoted
	// stateCR: a CR was read outside quotes and must be followed by LF.
	stateCR
)

// =============================================================================
// READER
// =============================================================================

// Reader parses CSV rows against a Schema.
type Reader struct {
	source    io.Reader
	in        *bufio.Reader
	schema    *Schema
	leaveOpen bool
	header    []string
}

// Option configures a Reader.
type Option func(*Reader)

// WithLeaveOpen keeps the source open when the Reader is closed.
func WithLeaveOpen(leaveOpen bool) Option {
	return func(r *Reader) {
		r.leaveOpen = leaveOpen
	}
}

// NewReader creates a Reader over r. A nil schema accepts any header.
// Byte-order marks are honored: UTF-8 and UTF-16 input with a BOM is decoded,
// input without one is read as UTF-8.
func NewReader(r io.Reader, schema *Schema, opts ...Option) *Reader {
	if schema == nil {
		schema = NewSchema(nil, nil, true)
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := &Reader{
		source: r,
		in:     bufio.NewReader(decoded),
		schema: schema,
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Header returns the validated header, in input order.
func (r *Reader) Header() []string {
	return r.header
}

// Close releases the underlying source unless the reader was told to leave
// it open. Calling Close more than once is safe.
func (r *Reader) Close() error {
	if r.source == nil {
		return nil
	}
	src := r.source
	r.source = nil
	if r.leaveOpen {
		return nil
	}
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadAll reads the header and every data row.
//
// RETURNS:
//   - the data rows, in input order
//   - a *ParseError for any format problem, or the underlying I/O error
func (r *Reader) ReadAll() ([]Row, error) {
	var (
		rows    []Row
		fields  []string
		field   strings.Builder
		st      = stateFieldStart
		pending = false
		line    = 1 // physical row number used in errors
		rowLine = 1 // row number where the current logical row started
	)

	fail := func(err error) ([]Row, error) {
		return nil, &ParseError{Row: rowLine, Column: len(fields) + 1, Err: err}
	}

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}

	endRow := func() error {
		endField()
		defer func() {
			fields = fields[:0]
			pending = false
			st = stateFieldStart
			rowLine = line
		}()

		// A blank line has one empty field. It is noise (typically trailing
		// newlines) unless the schema has a single column, where an empty
		// value is a real row.
		if len(fields) == 1 && fields[0] == "" && len(r.schema.ActualColumns()) != 1 {
			return nil
		}

		values := make([]string, len(fields))
		copy(values, fields)

		if r.header == nil {
			if err := r.schema.ValidateHeaders(values); err != nil {
				return &ParseError{Row: rowLine, Err: err}
			}
			r.header = r.schema.ActualColumns()
			return nil
		}

		row, err := r.schema.CreateRow(values)
		if err != nil {
			return &ParseError{Row: rowLine, Column: len(values), Err: err}
		}
		rows = append(rows, row)
		return nil
	}

	for {
		c, _, err := r.in.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		pending = true

		switch st {
		case stateCR:
			if c != '\n' {
				return fail(ErrBareCR)
			}
			line++
			if err := endRow(); err != nil {
				return nil, err
			}

		case stateQuoted:
			if c == '"' {
				st = stateQuoteInQuoted
				continue
			}
			if c == '\n' {
				line++
			}
			field.WriteRune(c)

		case stateQuoteInQuoted:
			switch c {
			case '"':
				field.WriteRune('"')
				st = stateQuoted
			case ',':
				endField()
				st = stateFieldStart
			case '\r':
				st = stateCR
			case '\n':
				return fail(ErrBareLF)
			default:
				return fail(ErrQuote)
			}

		default: // stateFieldStart, stateUnquoted
			switch c {
			case '"':
				if st == stateUnquoted {
					return fail(ErrBareQuote)
				}
				st = stateQuoted
			case ',':
				endField()
				st = stateFieldStart
			case '\r':
				st = stateCR
			case '\n':
				return fail(ErrBareLF)
			default:
				field.WriteRune(c)
				st = stateUnquoted
			}
		}
	}

	// End of input: a lone CR or an open quote is malformed; an unterminated
	// final row is accepted as complete.
	switch st {
	case stateCR:
		return fail(ErrBareCR)
	case stateQuoted:
		return fail(ErrQuote)
	}
	if pending {
		if err := endRow(); err != nil {
			return nil, err
		}
	}

	if r.header == nil {
		if err := r.schema.ValidateHeaders(nil); err != nil {
			return nil, &ParseError{Row: 1, Err: err}
		}
		r.header = r.schema.ActualColumns()
	}

	return rows, nil
}
