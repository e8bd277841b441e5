// Package csv is the delimited-text input driver. It reads the source
// fully and hands it to the permissive tokenizer.
package csv

import (
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/csvtool/inputs"
	"github.com/darianmavgo/csvtool/table"
)

func init() {
	inputs.Register("csv", &csvDriver{})
}

type csvDriver struct{}

func (d *csvDriver) Open(r io.Reader, opts inputs.Options) (*table.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	text := string(raw)

	delim := opts.Delimiter
	if opts.DetectDelimiter {
		delim = DetectDelimiter(firstLine(text))
	}

	return table.Parse(text, table.ParseOptions{
		Delimiter: delim,
		NoHeader:  opts.NoHeader,
	})
}

func firstLine(text string) string {
	if idx := strings.IndexAny(text, "\r\n"); idx != -1 {
		return text[:idx]
	}
	return text
}

// DetectDelimiter attempts to detect the delimiter from a raw line of text.
// It checks common delimiters and returns the one that occurs most often.
// Defaults to comma if line is empty or no clear winner.
func DetectDelimiter(line string) byte {
	if line == "" {
		return ','
	}

	delimiters := []byte{',', '\t', ';', '|'}
	maxCount := -1
	winner := byte(',')

	for _, delim := range delimiters {
		count := strings.Count(line, string(delim))
		if count > maxCount {
			maxCount = count
			winner = delim
		}
	}

	return winner
}
