// Package all links every input driver into a binary with one import.
package all

import (
	_ "github.com/darianmavgo/csvtool/inputs/csv"
	_ "github.com/darianmavgo/csvtool/inputs/excel"
	_ "github.com/darianmavgo/csvtool/inputs/html"
)
