// =============================================================================
// Seatcard Sorter - CSV Writer
// =============================================================================
//
// This module serializes records back to CSV in the same strict dialect the
// reader accepts:
//   - the header line comes first, then one line per record
//   - fields are written in header order; a field the record lacks is empty
//   - a value is quoted when it contains a double-quote, comma, CR or LF
//   - embedded double-quotes are doubled
//   - every line ends in CRLF
//
// OUTPUT:
//   The writer buffers internally and flushes once at the end of WriteAll.
//   A failure part way through leaves a partial file behind; callers should
//   treat the target as invalid whenever WriteAll returns an error.
//
// =============================================================================

package csvwriter

import (
	"bufio"
	"io"
	"strings"
)

// Record is anything that can supply a value per column name.
type Record interface {
	Field(name string) (string, bool)
}

const (
	lineEnding = "\r\n"
	byteOrder  = "\ufeff"
)

// Writer writes headers and records as CSV.
type Writer struct {
	out *bufio.Writer
	bom bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithBOM writes a UTF-8 byte-order mark before the header line.
func WithBOM(bom bool) Option {
	return func(w *Writer) {
		w.bom = bom
	}
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	writer := &Writer{out: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(writer)
	}
	return writer
}

// WriteAll writes the header line followed by every record.
//
// PARAMETERS:
//   - headers: column names, in output order
//   - records: the rows to write; each is asked for every header
func (w *Writer) WriteAll(headers []string, records []Record) error {
	if w.bom {
		if _, err := w.out.WriteString(byteOrder); err != nil {
			return err
		}
	}

	if err := w.writeLine(headers, func(i int) string { return headers[i] }); err != nil {
		return err
	}

	for _, rec := range records {
		err := w.writeLine(headers, func(i int) string {
			v, _ := rec.Field(headers[i])
			return v
		})
		if err != nil {
			return err
		}
	}

	return w.out.Flush()
}

func (w *Writer) writeLine(headers []string, value func(int) string) error {
	for i := range headers {
		if i > 0 {
			if err := w.out.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.out.WriteString(Quote(value(i))); err != nil {
			return err
		}
	}
	_, err := w.out.WriteString(lineEnding)
	return err
}

// Quote returns value as it should appear in a CSV field.
func Quote(value string) string {
	if !strings.ContainsAny(value, "\",\r\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
