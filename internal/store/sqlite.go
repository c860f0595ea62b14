package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
	"github.com/pressly/goose/v3"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
	"github.com/Nazish-kiran/travel-planner/migrations"
)

// slotKey is the fixed key the trip document is stored under. There is only
// ever one active trip, so the slot table holds at most one row.
const slotKey = "trip"

// OpenDB opens (creating if necessary) the SQLite database at path and
// verifies the connection. The parent directory is created when missing.
//
// DSN options: WAL journaling for concurrent reads, a 5s busy timeout so a
// second process waits instead of failing, NORMAL synchronous mode as a
// safety/performance balance.
func OpenDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store.OpenDB: create directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store.OpenDB: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.OpenDB: ping: %w", err)
	}

	db.SetMaxOpenConns(1) // a single local writer; avoids SQLITE_BUSY churn

	return db, nil
}

// Migrate applies all embedded goose migrations to the database.
func Migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("store.Migrate: provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("store.Migrate: up: %w", err)
	}
	return nil
}

// SQLiteMirror persists the JSON-serialized trip under a single fixed slot
// in a local SQLite database. It is the production Mirror implementation.
type SQLiteMirror struct {
	db *sql.DB
}

// NewSQLiteMirror constructs a SQLiteMirror over an open database handle.
// The schema must already be in place (see Migrate).
func NewSQLiteMirror(db *sql.DB) *SQLiteMirror {
	return &SQLiteMirror{db: db}
}

// compile-time check: SQLiteMirror must satisfy Mirror.
var _ Mirror = (*SQLiteMirror)(nil)

// Load reads and decodes the persisted trip. An empty slot returns
// (nil, nil). Malformed stored JSON is logged and discarded — the contract
// is that corrupt persisted state degrades to "no trip", never to a crash.
func (m *SQLiteMirror) Load(ctx context.Context) (*domain.Trip, error) {
	const q = `SELECT body FROM trip_slot WHERE slot = ?`

	var body string
	err := m.db.QueryRowContext(ctx, q, slotKey).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.SQLiteMirror.Load: %w", err)
	}

	var trip domain.Trip
	if err := json.Unmarshal([]byte(body), &trip); err != nil {
		slog.Warn("discarding corrupt persisted trip", "error", err)
		return nil, nil
	}
	return &trip, nil
}

// Save serializes the whole trip and upserts it under the fixed slot.
func (m *SQLiteMirror) Save(ctx context.Context, trip *domain.Trip) error {
	body, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("store.SQLiteMirror.Save: encode: %w", err)
	}

	const q = `
		INSERT INTO trip_slot (slot, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			body       = excluded.body,
			updated_at = excluded.updated_at`

	if _, err := m.db.ExecContext(ctx, q, slotKey, string(body), time.Now().UTC()); err != nil {
		return fmt.Errorf("store.SQLiteMirror.Save: %w", err)
	}
	return nil
}

// Clear deletes the slot so a later Load yields nil. Deleting an empty slot
// succeeds, so clearing is idempotent.
func (m *SQLiteMirror) Clear(ctx context.Context) error {
	const q = `DELETE FROM trip_slot WHERE slot = ?`

	if _, err := m.db.ExecContext(ctx, q, slotKey); err != nil {
		return fmt.Errorf("store.SQLiteMirror.Clear: %w", err)
	}
	return nil
}
