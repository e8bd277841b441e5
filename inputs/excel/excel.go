// Package excel loads the first sheet of an Excel workbook as a Table,
// so spreadsheet exports can go through the same pipeline as CSV text.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/darianmavgo/csvtool/inputs"
	"github.com/darianmavgo/csvtool/table"
)

func init() {
	inputs.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(r io.Reader, opts inputs.Options) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel stream: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	// One Table per invocation, so only the first sheet is loaded.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	t := &table.Table{}
	if opts.NoHeader {
		t.Rows = rows
		return t, nil
	}
	if len(rows) > 0 {
		t.Header = rows[0]
		t.Rows = rows[1:]
	}
	return t, nil
}
