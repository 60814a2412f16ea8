package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"paperdesk/internal/models"
)

func TestWriteTrades(t *testing.T) {
	trades := []models.Trade{
		{
			ID:          "01B",
			Timestamp:   time.Date(2030, 1, 3, 14, 0, 0, 0, time.UTC),
			Symbol:      "600519",
			Side:        models.SideSell,
			Price:       1900,
			Quantity:    50,
			Fee:         120.65,
			RealizedPnL: 4855.05,
		},
		{
			ID:        "01A",
			Timestamp: time.Date(2030, 1, 2, 10, 30, 0, 0, time.UTC),
			Symbol:    "600519",
			Side:      models.SideBuy,
			Price:     1800,
			Quantity:  100,
			Fee:       48.6,
		},
	}

	var buf bytes.Buffer
	if err := WriteTrades(&buf, trades); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows:\n%s", len(lines), buf.String())
	}

	header := lines[0]
	for _, col := range []string{"id", "timestamp", "symbol", "side", "price", "quantity", "fee", "realized_pnl"} {
		if !strings.Contains(header, col) {
			t.Errorf("header missing %q: %s", col, header)
		}
	}

	// Ordering preserved: most recent trade first.
	if !strings.Contains(lines[1], "01B") || !strings.Contains(lines[1], "SELL") {
		t.Errorf("first row = %q, want the sell", lines[1])
	}
	if !strings.Contains(lines[2], "01A") || !strings.Contains(lines[2], "BUY") {
		t.Errorf("second row = %q, want the buy", lines[2])
	}
}

func TestWriteTradesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTrades(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "id") {
		t.Errorf("empty export should still emit a header: %q", buf.String())
	}
}
