// Package testutil provides shared helpers for tests that need a real
// database. SQLite needs no external server, so helpers open a throwaway
// database file under the test's temporary directory.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

// NewSQLDB opens a *sql.DB backed by a fresh SQLite file under t.TempDir().
//
// Every call gets its own file, so tests never share state. The connection
// is closed automatically when the test (and all its subtests) finish.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tripplan.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	// A single connection avoids SQLITE_BUSY between goroutines in tests.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for the given SQLite file and panics on any
// error. Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(path string) *sql.DB {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	db.SetMaxOpenConns(1)
	return db
}
