package table

import (
	"bufio"
	"io"
	"strings"
)

// WriteOptions controls CSV emission.
type WriteOptions struct {
	// Delimiter is the field separator. Zero means ','.
	Delimiter byte
	// OmitTrailingTerminator leaves the final row without a newline.
	// Downstream shell tools vary in tolerance, so it is a knob; the
	// zero value keeps the conventional terminated form.
	OmitTrailingTerminator bool
}

// DefaultWriteOptions matches common CSV-writer conventions: comma
// delimiter, every row newline-terminated including the last.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Delimiter: ','}
}

// Write emits t as delimited text. A cell is quoted only when it
// contains the delimiter, a quote, or a line terminator; internal quotes
// are doubled. The header, when present, is written first. Write errors
// propagate unwrapped so the caller can classify a closed pipe.
func Write(w io.Writer, t *Table, opts WriteOptions) error {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}

	bw := bufio.NewWriter(w)
	first := true
	writeRecord := func(rec []string) error {
		if !first {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		first = false
		for i, cell := range rec {
			if i > 0 {
				if err := bw.WriteByte(delim); err != nil {
					return err
				}
			}
			if err := writeCell(bw, cell, delim); err != nil {
				return err
			}
		}
		return nil
	}

	if t.Header != nil {
		if err := writeRecord(t.Header); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := writeRecord(row); err != nil {
			return err
		}
	}
	if !first && !opts.OmitTrailingTerminator {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Serialize renders t to a string using Write.
func Serialize(t *Table, opts WriteOptions) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = Write(&sb, t, opts)
	return sb.String()
}

func writeCell(bw *bufio.Writer, cell string, delim byte) error {
	if !cellNeedsQuote(cell, delim) {
		_, err := bw.WriteString(cell)
		return err
	}
	if err := bw.WriteByte('"'); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(cell); i++ {
		if cell[i] == '"' {
			if _, err := bw.WriteString(cell[start : i+1]); err != nil {
				return err
			}
			if err := bw.WriteByte('"'); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if _, err := bw.WriteString(cell[start:]); err != nil {
		return err
	}
	return bw.WriteByte('"')
}

func cellNeedsQuote(cell string, delim byte) bool {
	for i := 0; i < len(cell); i++ {
		switch cell[i] {
		case delim, '"', '\n', '\r':
			return true
		}
	}
	return false
}
