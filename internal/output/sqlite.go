// internal/output/sqlite.go
package output

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/qaharvest/qaharvest/pkg/types"
)

// SQLiteWriter mirrors the deduplicated records into an embedded database so
// downstream tooling can query them without reparsing the flat files.
type SQLiteWriter struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS qa_pairs (
	question TEXT NOT NULL,
	answer   TEXT NOT NULL,
	source   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS discussions (
	title   TEXT NOT NULL,
	content TEXT NOT NULL,
	source  TEXT NOT NULL
);`

// NewSQLiteWriter opens (creating if needed) the database at path.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite database path is required")
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteWriter{db: db}, nil
}

// ReplaceQA swaps the qa_pairs table contents for the given records.
func (w *SQLiteWriter) ReplaceQA(pairs []types.QAPair) error {
	return w.replace("qa_pairs", recordsOf(pairs))
}

// ReplaceDiscussions swaps the discussions table contents for the given records.
func (w *SQLiteWriter) ReplaceDiscussions(posts []types.DiscussionPost) error {
	return w.replace("discussions", recordsOf(posts))
}

// replace rewrites a table inside one transaction.
func (w *SQLiteWriter) replace(table string, records []types.Record) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.Prepare("INSERT INTO " + table + " VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		values := record.Values()
		if _, err := stmt.Exec(values[0], values[1], values[2]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// Close closes the database handle.
func (w *SQLiteWriter) Close() error {
	if w.db == nil {
		return nil
	}
	err := w.db.Close()
	w.db = nil
	return err
}

// recordsOf widens a typed record slice to the Record interface.
func recordsOf[T types.Record](items []T) []types.Record {
	records := make([]types.Record, len(items))
	for i, item := range items {
		records[i] = item
	}
	return records
}
