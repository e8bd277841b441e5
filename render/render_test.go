package render

import (
	"strings"
	"testing"

	"github.com/darianmavgo/csvtool/table"
)

func TestGridWithHeader(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"Year", "Make"},
		Rows: [][]string{
			{"1999", "Chevy"},
			{"2000", "Ford"},
		},
	}
	want := strings.Join([]string{
		"Year | Make ",
		"-----|------",
		"1999 | Chevy",
		"2000 | Ford ",
		"",
	}, "\n")

	if got := Grid(in); got != want {
		t.Fatalf("grid mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGridNoHeaderHasNoRule(t *testing.T) {
	t.Parallel()

	in := &table.Table{Rows: [][]string{{"a", "bb"}, {"cc", "d"}}}
	want := "a  | bb\ncc | d \n"
	if got := Grid(in); got != want {
		t.Fatalf("grid mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestGridRaggedRowPadding(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"a", "bb", "ccc"},
		Rows:   [][]string{{"1"}},
	}
	lines := strings.Split(strings.TrimRight(Grid(in), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	// Missing trailing cells render as blank padding of full width
	// (column widths here are 1, 2, and 3).
	if want := "1 |    |    "; lines[2] != want {
		t.Fatalf("ragged row mismatch\n got: %q\nwant: %q", lines[2], want)
	}
}

func TestGridEmptyTable(t *testing.T) {
	t.Parallel()

	if got := Grid(&table.Table{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestGridRuneWidths(t *testing.T) {
	t.Parallel()

	in := &table.Table{Rows: [][]string{{"héllo", "x"}, {"ab", "y"}}}
	want := "héllo | x\nab    | y\n"
	if got := Grid(in); got != want {
		t.Fatalf("grid mismatch\n got: %q\nwant: %q", got, want)
	}
}
