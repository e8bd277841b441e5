// Package render turns a Table into an aligned text grid for human
// inspection. Output here is purely presentational and never feeds back
// into parsing.
package render

import (
	"strings"
	"unicode/utf8"

	"github.com/darianmavgo/csvtool/table"
)

// Grid renders t with every cell left-justified and space-padded to its
// column's width, cells joined with " | ". When a header exists, a dash
// rule joined with "-|-" separates it from the data rows. Ragged rows
// render blank padding for the columns they do not reach.
func Grid(t *table.Table) string {
	var all [][]string
	if t.Header != nil {
		all = append(all, t.Header)
	}
	all = append(all, t.Rows...)
	if len(all) == 0 {
		return ""
	}

	widths := columnWidths(all)

	var sb strings.Builder
	for r, row := range all {
		for c, w := range widths {
			if c > 0 {
				sb.WriteString(" | ")
			}
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			sb.WriteString(cell)
			for pad := utf8.RuneCountInString(cell); pad < w; pad++ {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		if r == 0 && t.Header != nil {
			for c, w := range widths {
				if c > 0 {
					sb.WriteString("-|-")
				}
				sb.WriteString(strings.Repeat("-", w))
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// columnWidths computes, per column, the widest cell in rune count. The
// column count is the longest row so wide ragged rows keep the grid
// rectangular.
func columnWidths(rows [][]string) []int {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[c] {
				widths[c] = n
			}
		}
	}
	return widths
}
