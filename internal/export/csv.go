// Package export writes trade history to external formats.
package export

import (
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"paperdesk/internal/models"
)

// tradeRow is the CSV projection of a trade record.
type tradeRow struct {
	ID          string  `csv:"id"`
	Timestamp   string  `csv:"timestamp"`
	Symbol      string  `csv:"symbol"`
	Side        string  `csv:"side"`
	Price       float64 `csv:"price"`
	Quantity    int     `csv:"quantity"`
	Fee         float64 `csv:"fee"`
	RealizedPnL float64 `csv:"realized_pnl"`
}

// WriteTrades writes the trade history as CSV, preserving the ledger's
// most-recent-first ordering.
func WriteTrades(w io.Writer, trades []models.Trade) error {
	rows := make([]*tradeRow, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, &tradeRow{
			ID:          t.ID,
			Timestamp:   t.Timestamp.Format(time.RFC3339),
			Symbol:      t.Symbol,
			Side:        string(t.Side),
			Price:       t.Price,
			Quantity:    t.Quantity,
			Fee:         t.Fee,
			RealizedPnL: t.RealizedPnL,
		})
	}
	return gocsv.Marshal(rows, w)
}

// WriteTradesFile writes the trade history to a CSV file at path.
func WriteTradesFile(path string, trades []models.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteTrades(f, trades)
}
