// Package store provides ledger persistence interfaces and implementations.
package store

import (
	"context"
	"encoding/json"
	"time"

	"paperdesk/internal/models"
)

// SchemaVersion is the current persisted-record layout version. Records
// written before versioning existed carry 0 and are migrated on load.
const SchemaVersion = 2

// DefaultKey is the persistence key used when none is configured. Exactly
// one ledger exists per key.
const DefaultKey = "default"

// DefaultMaxAge is the staleness window: persisted state older than this
// is discarded on load and replaced with a fresh default ledger.
const DefaultMaxAge = 7 * 24 * time.Hour

// Record mirrors the account ledger fields exactly as persisted.
type Record struct {
	SchemaVersion  int                        `json:"schema_version"`
	Cash           float64                    `json:"cash"`
	TotalAsset     float64                    `json:"total_asset"`
	InitialCapital float64                    `json:"initial_capital"`
	Currency       string                     `json:"currency"`
	Positions      map[string]models.Position `json:"positions"`
	History        []models.Trade             `json:"history"`
	LastUpdated    time.Time                  `json:"last_updated"`
}

// Stale reports whether the record's last update is older than maxAge.
func (r *Record) Stale(maxAge time.Duration, now time.Time) bool {
	return now.Sub(r.LastUpdated) > maxAge
}

// LedgerStore defines the interface for ledger persistence.
//
// Load returns ok=false when no usable record exists under the key:
// nothing persisted yet, an unparsable payload, or a record past the
// staleness window. None of these are errors; the caller starts fresh.
// Save errors are surfaced so the composing application can warn that
// state is not being persisted.
type LedgerStore interface {
	Load(ctx context.Context) (rec *Record, ok bool, err error)
	Save(ctx context.Context, rec *Record) error
	Close() error
}

// decodeRecord parses a persisted payload and migrates it to the current
// schema version. ok=false means the payload is unusable and should be
// treated as absent.
func decodeRecord(payload []byte) (*Record, bool) {
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, false
	}
	if rec.SchemaVersion > SchemaVersion {
		// Written by a newer build. Best effort: discard rather than
		// guess at unknown fields.
		return nil, false
	}
	migrate(&rec)
	return &rec, true
}

// migrate brings an older record forward to the current schema.
func migrate(rec *Record) {
	switch {
	case rec.SchemaVersion < 2:
		// v0/v1 records predate per-trade realized P&L and the version
		// field itself. Historical sells keep a zero RealizedPnL; new
		// fills record it going forward.
		rec.SchemaVersion = SchemaVersion
	}
	if rec.Positions == nil {
		rec.Positions = make(map[string]models.Position)
	}
}
