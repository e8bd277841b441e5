// Package transform implements the three row transformers. Each one is
// a pure function from Table to Table; the input is never mutated.
package transform

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/darianmavgo/csvtool/table"
)

// ErrPattern is returned when a search pattern fails to compile.
var ErrPattern = errors.New("csvtool: invalid search pattern")

// Select projects the table onto cols, in the given order. Indices may
// repeat, duplicating that column in the output. Ragged rows yield empty
// cells for indices they do not reach.
func Select(t *table.Table, cols []int) *table.Table {
	out := &table.Table{}
	if t.Header != nil {
		out.Header = pick(t.Header, cols)
	}
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = pick(row, cols)
	}
	return out
}

func pick(row []string, cols []int) []string {
	picked := make([]string, len(cols))
	for i, c := range cols {
		if c < len(row) {
			picked[i] = row[c]
		}
	}
	return picked
}

// Search keeps the rows whose cell in column col contains at least one
// match of pattern. Matching is unanchored unless the pattern anchors
// itself, and case-sensitive. The header always survives. Ragged rows
// that do not reach col are dropped.
func Search(t *table.Table, col int, pattern string) (*table.Table, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPattern, err)
	}

	out := &table.Table{Header: t.Header}
	for _, row := range t.Rows {
		if col < len(row) && re.MatchString(row[col]) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}

// Replace swaps cells in column col that are exactly equal to old for
// new. This is a full-cell literal comparison, not a substring or regex
// substitution. The header is never touched.
func Replace(t *table.Table, col int, old, new string) *table.Table {
	out := &table.Table{Header: t.Header}
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		if col < len(row) && row[col] == old {
			changed := make([]string, len(row))
			copy(changed, row)
			changed[col] = new
			out.Rows[i] = changed
		} else {
			out.Rows[i] = row
		}
	}
	return out
}
