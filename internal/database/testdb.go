package database

import (
	"context"
	"database/sql"
	"testing"
)

// NewTestDB creates a fresh in-memory SQLite database with the schema
// applied.  The database is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Go through openSQLite so tests run with the same pragma setup the
	// production backend ships.
	db, err := openSQLite(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	// A second pool connection would see its own empty :memory: database.
	db.SetMaxOpenConns(1)

	if err := EnsureSchema(context.Background(), db, SQLite); err != nil {
		t.Fatalf("applying schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
