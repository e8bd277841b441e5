package sqlite

import (
	"reflect"
	"testing"
)

func TestColumnNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "snakeCasesAndLowers",
			in:   []string{"Year", "Unit Price", "Model Name "},
			want: []string{"year", "unit_price", "model_name"},
		},
		{
			name: "stripsBadCharacters",
			in:   []string{"Price ($)", "% Change"},
			want: []string{"price_", "_change"},
		},
		{
			name: "dodgesKeywords",
			in:   []string{"select", "from"},
			want: []string{"cl0", "cl1"},
		},
		{
			name: "emptyHeadersGetDefaults",
			in:   []string{"", "  "},
			want: []string{"cl0", "cl1"},
		},
		{
			name: "leadingDigitPrefixed",
			in:   []string{"2024 total"},
			want: []string{"cl02024_total"},
		},
		{
			name: "duplicatesGetCounters",
			in:   []string{"name", "name", "name"},
			want: []string{"name", "name2", "name3"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ColumnNames(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ColumnNames(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
