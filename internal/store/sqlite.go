// Package store provides ledger persistence implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"paperdesk/internal/errors"
)

// SQLiteStore implements LedgerStore using SQLite. The full ledger is
// serialized as a JSON payload under a fixed key; concurrent writers to
// the same key race last-writer-wins, which the simulation accepts.
type SQLiteStore struct {
	db     *sql.DB
	key    string
	maxAge time.Duration
}

// SQLiteOptions holds optional settings for the SQLite store.
type SQLiteOptions struct {
	Key    string        // persistence key, DefaultKey when empty
	MaxAge time.Duration // staleness window, DefaultMaxAge when zero
}

// NewSQLiteStore opens (or creates) a SQLite-backed ledger store at dbPath.
func NewSQLiteStore(dbPath string, opts SQLiteOptions) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "opening ledger database")
	}

	// Single-row workload; one connection avoids writer contention.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{
		db:     db,
		key:    opts.Key,
		maxAge: opts.MaxAge,
	}
	if s.key == "" {
		s.key = DefaultKey
	}
	if s.maxAge == 0 {
		s.maxAge = DefaultMaxAge
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initializing ledger schema")
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ledgers (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the persisted ledger under the store's key. Absent, corrupt,
// or stale records all yield ok=false; the error return is reserved for
// the database itself being unusable.
func (s *SQLiteStore) Load(ctx context.Context) (*Record, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM ledgers WHERE key = ?`, s.key,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewStoreError("load", s.key, err)
	}

	rec, ok := decodeRecord([]byte(payload))
	if !ok {
		return nil, false, nil
	}
	if rec.Stale(s.maxAge, time.Now()) {
		return nil, false, nil
	}
	return rec, true, nil
}

// Save serializes the full ledger under the store's key, refreshing the
// record timestamp.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	rec.SchemaVersion = SchemaVersion
	rec.LastUpdated = time.Now()

	payload, err := json.Marshal(rec)
	if err != nil {
		return errors.NewStoreError("save", s.key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ledgers (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.key, string(payload), rec.LastUpdated,
	)
	if err != nil {
		return errors.NewStoreError("save", s.key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ LedgerStore = (*SQLiteStore)(nil)
