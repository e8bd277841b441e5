// Package table holds the in-memory model for one parsed CSV document
// plus the parse, serialize, and column-resolution primitives everything
// else builds on.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrColumnRange is returned when a numeric column spec falls outside 1..width.
	ErrColumnRange = errors.New("csvtool: column index out of range")
	// ErrUnknownColumn is returned when a named column spec has no exact header match.
	ErrUnknownColumn = errors.New("csvtool: unknown column")
)

// Table is one fully-loaded CSV document. Header is nil when the input
// was read in no-header mode (or was empty); Rows hold every data row in
// input order. Rows may be ragged, transformers must tolerate that.
type Table struct {
	Header []string
	Rows   [][]string
}

// Width returns the column count used for index resolution: the header
// length when a header exists, otherwise the first data row's length.
func (t *Table) Width() int {
	if t.Header != nil {
		return len(t.Header)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return 0
}

// Empty reports whether the table carries neither header nor rows.
func (t *Table) Empty() bool {
	return t.Header == nil && len(t.Rows) == 0
}

// Resolve translates user-facing column specs into 0-based offsets.
// Each spec splits on commas and every token resolves independently, so
// "5,1,3" or "Price,1" both work and the given order is preserved.
// Numeric tokens are 1-based; anything else is an exact, case-sensitive
// header name. Duplicate columns are allowed.
func (t *Table) Resolve(specs []string) ([]int, error) {
	width := t.Width()
	var cols []int
	for _, spec := range specs {
		for _, tok := range strings.Split(spec, ",") {
			tok = strings.TrimSpace(tok)
			if n, err := strconv.Atoi(tok); err == nil {
				if n < 1 || n > width {
					return nil, fmt.Errorf("%w: %d (table has %d columns)", ErrColumnRange, n, width)
				}
				cols = append(cols, n-1)
				continue
			}
			idx := -1
			for i, name := range t.Header {
				if name == tok {
					idx = i
					break
				}
			}
			if idx < 0 {
				if t.Header == nil {
					return nil, fmt.Errorf("%w: %q (input has no header row)", ErrUnknownColumn, tok)
				}
				return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, tok)
			}
			cols = append(cols, idx)
		}
	}
	return cols, nil
}
