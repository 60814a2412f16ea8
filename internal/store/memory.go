package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore implements LedgerStore in process memory. It is used for
// tests and for ephemeral sessions that should not touch disk. The record
// is round-tripped through JSON so memory and SQLite stores share the
// same serialization behavior.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte
	maxAge  time.Duration
}

// NewMemoryStore creates an empty in-memory ledger store.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	if maxAge == 0 {
		maxAge = DefaultMaxAge
	}
	return &MemoryStore{maxAge: maxAge}
}

// Load returns the stored record, if any.
func (m *MemoryStore) Load(ctx context.Context) (*Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.payload == nil {
		return nil, false, nil
	}
	rec, ok := decodeRecord(m.payload)
	if !ok {
		return nil, false, nil
	}
	if rec.Stale(m.maxAge, time.Now()) {
		return nil, false, nil
	}
	return rec, true, nil
}

// Save serializes the record, refreshing the timestamp.
func (m *MemoryStore) Save(ctx context.Context, rec *Record) error {
	rec.SchemaVersion = SchemaVersion
	rec.LastUpdated = time.Now()

	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.payload = payload
	m.mu.Unlock()
	return nil
}

// SetPayload overwrites the raw stored payload. Tests use it to simulate
// corrupt or hand-written records.
func (m *MemoryStore) SetPayload(payload []byte) {
	m.mu.Lock()
	m.payload = payload
	m.mu.Unlock()
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}

var _ LedgerStore = (*MemoryStore)(nil)
