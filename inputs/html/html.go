// Package html loads the first <table> element of an HTML document as a
// Table. Useful for inspecting tables scraped off report pages.
package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/darianmavgo/csvtool/inputs"
	"github.com/darianmavgo/csvtool/table"
)

func init() {
	inputs.Register("html", &htmlDriver{})
}

type htmlDriver struct{}

func (d *htmlDriver) Open(r io.Reader, opts inputs.Options) (*table.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	node := findTable(doc)
	if node == nil {
		return nil, fmt.Errorf("no <table> found in HTML document")
	}

	rows := extractRows(node)

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

func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTable(c); found != nil {
			return found
		}
	}
	return nil
}

func extractRows(n *html.Node) [][]string {
	var rows [][]string
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			var row []string
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, extractText(c))
				}
			}
			rows = append(rows, row)
			return // don't look for TRs inside TRs
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return rows
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
