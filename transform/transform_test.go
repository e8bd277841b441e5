package transform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/darianmavgo/csvtool/table"
)

func carsTable() *table.Table {
	return &table.Table{
		Header: []string{"Year", "Make", "Model", "Description", "Price"},
		Rows: [][]string{
			{"1997", "Ford", "E350", "ac, abs, moon", "3000.00"},
			{"1999", "Chevy", "Venture", "", "4900.00"},
			{"2001", "Chevy2", "Tahoe", "", "5100.00"},
		},
	}
}

func TestSelectReorders(t *testing.T) {
	t.Parallel()

	in := carsTable()
	got := Select(in, []int{4, 0, 2})

	if !reflect.DeepEqual(got.Header, []string{"Price", "Year", "Model"}) {
		t.Fatalf("unexpected header: %q", got.Header)
	}
	want := [][]string{
		{"3000.00", "1997", "E350"},
		{"4900.00", "1999", "Venture"},
		{"5100.00", "2001", "Tahoe"},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows mismatch\n got: %q\nwant: %q", got.Rows, want)
	}
	// Input must stay untouched.
	if !reflect.DeepEqual(in, carsTable()) {
		t.Fatal("Select mutated its input")
	}
}

func TestSelectDuplicateColumn(t *testing.T) {
	t.Parallel()

	got := Select(carsTable(), []int{1, 1})
	if !reflect.DeepEqual(got.Header, []string{"Make", "Make"}) {
		t.Fatalf("unexpected header: %q", got.Header)
	}
	if !reflect.DeepEqual(got.Rows[0], []string{"Ford", "Ford"}) {
		t.Fatalf("unexpected row: %q", got.Rows[0])
	}
}

func TestSelectRaggedRow(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"a", "b", "c"},
		Rows:   [][]string{{"1"}},
	}
	got := Select(in, []int{2, 0})
	if !reflect.DeepEqual(got.Rows[0], []string{"", "1"}) {
		t.Fatalf("expected blank fill for missing cells, got %q", got.Rows[0])
	}
}

func TestSearchAnchoredExactness(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"Year", "Make"},
		Rows: [][]string{
			{"1999", "Chevy"},
			{"2001", "Chevy2"},
			{"2002", "NotChevy"},
		},
	}
	got, err := Search(in, 1, "^Chevy$")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(got.Rows, [][]string{{"1999", "Chevy"}}) {
		t.Fatalf("expected exactly the Chevy row, got %q", got.Rows)
	}
	if !reflect.DeepEqual(got.Header, in.Header) {
		t.Fatal("Search dropped the header")
	}
}

func TestSearchUnanchoredSubstring(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"Make"},
		Rows:   [][]string{{"Chevy"}, {"Chevy2"}, {"Ford"}},
	}
	got, err := Search(in, 0, "Chevy")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected both Chevy rows, got %q", got.Rows)
	}
}

func TestSearchInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := Search(carsTable(), 1, "("); !errors.Is(err, ErrPattern) {
		t.Fatalf("expected ErrPattern, got %v", err)
	}
}

func TestSearchDropsRowsMissingColumn(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"x", "match"}, {"short"}},
	}
	got, err := Search(in, 1, "match")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got.Rows) != 1 {
		t.Fatalf("expected the ragged row dropped, got %q", got.Rows)
	}
}

func TestReplaceExactCellOnly(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"Year", "Make"},
		Rows: [][]string{
			{"1997", "Ford"},
			{"1998", "Ford350"},
			{"1999", "Chevy"},
		},
	}
	got := Replace(in, 1, "Ford", "Ford Motor Co.")

	want := [][]string{
		{"1997", "Ford Motor Co."},
		{"1998", "Ford350"},
		{"1999", "Chevy"},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows mismatch\n got: %q\nwant: %q", got.Rows, want)
	}
	// The matching input row must not be mutated in place.
	if in.Rows[0][1] != "Ford" {
		t.Fatal("Replace mutated its input")
	}
}

func TestReplaceSkipsRowsMissingColumn(t *testing.T) {
	t.Parallel()

	in := &table.Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"only"}},
	}
	got := Replace(in, 1, "only", "changed")
	if !reflect.DeepEqual(got.Rows, [][]string{{"only"}}) {
		t.Fatalf("expected ragged row unchanged, got %q", got.Rows)
	}
}
