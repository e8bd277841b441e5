package table

// ParseOptions controls how raw text is tokenized into a Table.
type ParseOptions struct {
	// Delimiter is the field separator. Zero means ','.
	Delimiter byte
	// NoHeader treats every row as data, leaving Table.Header nil.
	NoHeader bool
}

// Parse scans text into a Table. The scanner is deliberately permissive:
// a quote only opens a quoted field when it is the first character of
// that field, a quote appearing mid-field is kept as a literal, and an
// unterminated quoted field at end of input is closed implicitly with
// whatever accumulated. Ragged rows are preserved as-is.
//
// The error return is reserved for future strict policies; the
// permissive scanner itself never fails.
func Parse(text string, opts ParseOptions) (*Table, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}

	rows := splitRecords(text, delim)

	t := &Table{}
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

// splitRecords runs the quote-aware state machine over the whole input.
func splitRecords(text string, delim byte) [][]string {
	var (
		rows  [][]string
		row   []string
		field []byte

		inQuotes     bool // inside a quoted field
		fieldStarted bool // at least one byte consumed for the current field
	)

	endField := func() {
		row = append(row, string(field))
		field = field[:0]
		fieldStarted = false
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		b := text[i]

		if inQuotes {
			if b != '"' {
				field = append(field, b)
				continue
			}
			// Doubled quote is an escaped literal quote.
			if i+1 < len(text) && text[i+1] == '"' {
				field = append(field, '"')
				i++
				continue
			}
			inQuotes = false
			continue
		}

		switch b {
		case delim:
			endField()
		case '\n':
			endRow()
		case '\r':
			// Only a CRLF pair terminates the row; a lone CR is data.
			if i+1 < len(text) && text[i+1] == '\n' {
				endRow()
				i++
			} else {
				field = append(field, b)
				fieldStarted = true
			}
		case '"':
			if !fieldStarted {
				inQuotes = true
				fieldStarted = true
			} else {
				// Mid-field quote outside quoted mode stays literal.
				field = append(field, '"')
			}
		default:
			field = append(field, b)
			fieldStarted = true
		}
	}

	// Flush a trailing record when input ended without a newline. An
	// unterminated quoted field counts as started and is closed here.
	// A final newline leaves nothing pending, so no empty row appears.
	if fieldStarted || len(row) > 0 {
		endRow()
	}
	return rows
}
