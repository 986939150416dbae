// Package csvout writes CSV records for the question bank importer.
//
// It differs from encoding/csv in two ways: records always end with a bare
// "\n", and any field containing '<' is quoted, since most fields carry
// HTML markup and the importer expects those quoted.
package csvout

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes records to a buffered destination.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes a single record. Errors are sticky.
func (w *Writer) Write(record []string) error {
	if w.err != nil {
		return w.err
	}

	for i, field := range record {
		if i > 0 {
			if w.err = w.w.WriteByte(','); w.err != nil {
				return w.err
			}
		}
		if _, w.err = w.w.WriteString(Escape(field)); w.err != nil {
			return w.err
		}
	}

	w.err = w.w.WriteByte('\n')
	return w.err
}

// WriteNullable writes a record whose nil fields are written empty.
func (w *Writer) WriteNullable(record []*string) error {
	fields := make([]string, len(record))
	for i, f := range record {
		if f != nil {
			fields[i] = *f
		}
	}
	return w.Write(fields)
}

// Flush writes any buffered data to the underlying io.Writer.
// Use Error to check whether it succeeded.
func (w *Writer) Flush() {
	if w.err != nil {
		return
	}
	w.err = w.w.Flush()
}

// Error reports any error from a previous Write or Flush.
func (w *Writer) Error() error {
	return w.err
}

// NeedsQuoting reports whether field must be wrapped in double quotes.
func NeedsQuoting(field string) bool {
	return strings.ContainsAny(field, ",\n\r\"<")
}

// Escape returns field as it appears in the output.
func Escape(field string) string {
	if !NeedsQuoting(field) {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
