// Package models provides domain models for the simulated brokerage ledger.
package models

import (
	"time"
)

// Side represents the side of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Valid reports whether the side is one of the known order sides.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Position represents a held quantity of a single symbol.
//
// AverageCost is the volume-weighted cost per share including capitalized
// buy-side fees. It changes only on buys; sells and price updates leave it
// untouched. A Position with Quantity 0 is never stored — the account drops
// it the moment it closes.
type Position struct {
	Symbol      string  `json:"symbol"`
	Quantity    int     `json:"quantity"`
	AverageCost float64 `json:"average_cost"`
	LastPrice   float64 `json:"last_price"`
}

// MarketValue returns the position value at the last observed price.
func (p Position) MarketValue() float64 {
	return float64(p.Quantity) * p.LastPrice
}

// UnrealizedPnL returns the open profit at the last observed price.
func (p Position) UnrealizedPnL() float64 {
	return (p.LastPrice - p.AverageCost) * float64(p.Quantity)
}

// Trade represents a single fill recorded in the account history.
// Trade records are immutable and append-only.
type Trade struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Symbol      string    `json:"symbol"`
	Side        Side      `json:"side"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Fee         float64   `json:"fee"`
	RealizedPnL float64   `json:"realized_pnl,omitempty"` // sells only, net of fees
}

// Tick represents a price update for a single symbol.
type Tick struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// Snapshot is a read-only projection of the account for rendering.
// It shares no storage with the live account; mutating a snapshot has
// no effect on the ledger.
type Snapshot struct {
	Cash           float64             `json:"cash"`
	TotalAsset     float64             `json:"total_asset"`
	InitialCapital float64             `json:"initial_capital"`
	PnL            float64             `json:"pnl"`
	PnLRatio       float64             `json:"pnl_ratio"`
	Currency       string              `json:"currency"`
	Positions      map[string]Position `json:"positions"`
	History        []Trade             `json:"history"` // most recent first
	LastUpdated    time.Time           `json:"last_updated"`
}
