// Package integration exercises the ledger, store, and hub together.
package integration

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"paperdesk/internal/ledger"
	"paperdesk/internal/models"
	"paperdesk/internal/store"
	"paperdesk/internal/stream"
)

func TestTradingSessionSurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	open := func() (*ledger.Account, *stream.Hub, store.LedgerStore) {
		s, err := store.NewSQLiteStore(dbPath, store.SQLiteOptions{})
		if err != nil {
			t.Fatalf("opening store: %v", err)
		}
		hub := stream.NewHub()
		acct := ledger.Open(ctx, ledger.Config{
			Store:  s,
			Hub:    hub,
			Logger: zerolog.Nop(),
		})
		return acct, hub, s
	}

	// Session one: trade and tick.
	acct, hub, s := open()
	events := hub.Subscribe("ui")

	if _, err := acct.ExecuteOrder(ctx, "600519", models.SideBuy, 1800, 100); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if _, err := acct.ExecuteOrder(ctx, "600519", models.SideSell, 1900, 50); err != nil {
		t.Fatalf("sell: %v", err)
	}
	if err := acct.UpdateMarketPrice(ctx, "600519", 1950); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if len(events) != 3 { // buy + sell + tick; load fired before we subscribed
		t.Errorf("events = %d, want 3", len(events))
	}

	want := acct.Snapshot()
	hub.Stop()
	if err := s.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}

	// Session two: state restored from disk.
	acct, hub, s = open()
	defer hub.Stop()
	defer s.Close()

	got := acct.Snapshot()
	if math.Abs(got.Cash-want.Cash) > 1e-6 {
		t.Errorf("cash = %v, want %v", got.Cash, want.Cash)
	}
	if math.Abs(got.TotalAsset-want.TotalAsset) > 1e-6 {
		t.Errorf("totalAsset = %v, want %v", got.TotalAsset, want.TotalAsset)
	}

	pos := got.Positions["600519"]
	if pos.Quantity != 50 {
		t.Errorf("quantity = %d, want 50", pos.Quantity)
	}
	if math.Abs(pos.AverageCost-1800.486) > 1e-6 {
		t.Errorf("average cost = %v, want 1800.486", pos.AverageCost)
	}
	if pos.LastPrice != 1950 {
		t.Errorf("last price = %v, want 1950", pos.LastPrice)
	}
	if len(got.History) != 2 {
		t.Errorf("history = %d trades, want 2", len(got.History))
	}

	// The restored account keeps trading where the old one left off.
	if _, err := acct.ExecuteOrder(ctx, "600519", models.SideSell, 1950, 50); err != nil {
		t.Fatalf("closing sell: %v", err)
	}
	if _, held := acct.Snapshot().Positions["600519"]; held {
		t.Error("fully sold position should be removed")
	}
}
