// Package sqlite writes a parsed Table into a SQLite database file so a
// CSV snapshot can be queried with ordinary SQL tooling afterwards.
package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/darianmavgo/csvtool/table"
)

// DefaultTable is the table name used when none is configured.
const DefaultTable = "tb0"

// ExportOptions defines configuration for the export process.
type ExportOptions struct {
	TableName string // defaults to DefaultTable
	BatchSize int    // rows per transaction, defaults to 1000
	Verbose   bool   // enables progress logging
}

// Export creates (or overwrites the table in) the database at path and
// inserts every row of t. Headers become sanitized column names; a
// headerless table gets cl0..clN. Every column is TEXT. Rows are padded
// or truncated to the table width, matching how ragged input is
// tolerated everywhere else.
func Export(t *table.Table, path string, opts ExportOptions) error {
	tableName := opts.TableName
	if tableName == "" {
		tableName = DefaultTable
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}

	width := t.Width()
	if width == 0 {
		return fmt.Errorf("nothing to export: table has no columns")
	}

	headers := t.Header
	if headers == nil {
		headers = make([]string, width)
	}
	columns := ColumnNames(headers)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// One connection avoids locking issues with tx.Stmt.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA page_size = 65536; PRAGMA cache_size = -2000;"); err != nil {
		return fmt.Errorf("failed to set PRAGMAs: %w", err)
	}

	if _, err := db.Exec(createTableSQL(tableName, columns)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	if opts.Verbose {
		log.Printf("[CSVTOOL] Created table %s with columns %v", tableName, columns)
	}

	stmt, err := db.Prepare(insertSQL(tableName, columns))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var tx *sql.Tx
	inBatch := 0
	for _, row := range t.Rows {
		if tx == nil {
			if tx, err = db.Begin(); err != nil {
				return fmt.Errorf("failed to begin transaction: %w", err)
			}
		}

		args := make([]interface{}, width)
		for i := range args {
			if i < len(row) {
				args[i] = row[i]
			} else {
				args[i] = ""
			}
		}
		if _, err := tx.Stmt(stmt).Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row: %w", err)
		}

		inBatch++
		if inBatch >= batchSize {
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("failed to commit batch: %w", err)
			}
			if opts.Verbose {
				log.Printf("[CSVTOOL] Committed batch of %d rows", inBatch)
			}
			tx = nil
			inBatch = 0
		}
	}
	if tx != nil {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit final batch: %w", err)
		}
	}
	return nil
}

func createTableSQL(tableName string, columns []string) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = col + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(defs, ", "))
}

func insertSQL(tableName string, columns []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName,
		strings.Join(columns, ", "),
		strings.Repeat("?,", len(columns)-1)+"?",
	)
}
