// Package inputs maps input sources onto the Table model through a
// small driver registry, so csv, excel, and html files all arrive at
// the same in-memory representation.
package inputs

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/darianmavgo/csvtool/table"
)

// Options carries the per-invocation knobs every driver honors.
type Options struct {
	// Delimiter for delimited-text drivers. Zero means ','.
	Delimiter byte
	// DetectDelimiter samples the first line instead of using Delimiter.
	DetectDelimiter bool
	// NoHeader treats every row as data.
	NoHeader bool
}

// Driver loads one input stream into a Table.
type Driver interface {
	Open(r io.Reader, opts Options) (*table.Table, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes an input driver available by the provided name.
// If Register is called twice with the same name or if driver is nil, it panics.
func Register(name string, driver Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("inputs: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("inputs: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// Open loads r through the named driver.
func Open(name string, r io.Reader, opts Options) (*table.Table, error) {
	driversMu.RLock()
	driver, ok := drivers[name]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("inputs: unknown driver %q (forgotten import?)", name)
	}
	return driver.Open(r, opts)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// DriverForPath picks a driver from the file extension. Anything not
// recognized as a spreadsheet or HTML document is read as delimited
// text, this is a CSV tool first.
func DriverForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return "excel"
	case ".html", ".htm":
		return "html"
	}
	return "csv"
}
