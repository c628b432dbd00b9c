package store

import (
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

const memoryPath = ":memory:"

// NewDB opens the DuckDB ledger at path. ":memory:" opens a private in-memory
// database.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if path == memoryPath {
		dsn = ""
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger %q: %w", path, err)
	}

	// an in-memory database lives as long as its connection
	if dsn == "" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open ledger %q: %w", path, err)
	}
	return db, nil
}
