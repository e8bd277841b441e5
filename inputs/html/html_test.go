package html

import (
	"reflect"
	"strings"
	"testing"

	"github.com/darianmavgo/csvtool/inputs"
)

const page = `<html><body>
<h1>Inventory</h1>
<table>
  <tr><th>Year</th><th>Make</th></tr>
  <tr><td>1999</td><td>Chevy</td></tr>
  <tr><td>2000</td><td> Ford </td></tr>
</table>
<table><tr><td>second table ignored</td></tr></table>
</body></html>`

func TestOpenFirstTable(t *testing.T) {
	t.Parallel()

	got, err := inputs.Open("html", strings.NewReader(page), inputs.Options{})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !reflect.DeepEqual(got.Header, []string{"Year", "Make"}) {
		t.Fatalf("unexpected header: %q", got.Header)
	}
	want := [][]string{{"1999", "Chevy"}, {"2000", "Ford"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows mismatch\n got: %q\nwant: %q", got.Rows, want)
	}
}

func TestOpenNoHeaderMode(t *testing.T) {
	t.Parallel()

	got, err := inputs.Open("html", strings.NewReader(page), inputs.Options{NoHeader: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got.Header != nil {
		t.Fatalf("expected nil header, got %q", got.Header)
	}
	if len(got.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %q", got.Rows)
	}
}

func TestOpenNoTable(t *testing.T) {
	t.Parallel()

	if _, err := inputs.Open("html", strings.NewReader("<html><body><p>nope</p></body></html>"), inputs.Options{}); err == nil {
		t.Fatal("expected an error for a document without tables")
	}
}
