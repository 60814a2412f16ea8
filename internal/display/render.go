package display

import (
	"fmt"
	"sort"
	"strings"

	"paperdesk/internal/models"
)

// RenderDashboard renders a snapshot as a text dashboard: account summary,
// open positions, and the most recent trades.
func RenderDashboard(snap models.Snapshot, maxTrades int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Account (%s)\n", snap.Currency)
	fmt.Fprintf(&b, "  Cash         %s\n", FormatCNY(snap.Cash))
	fmt.Fprintf(&b, "  Total Asset  %s\n", FormatCompactCNY(snap.TotalAsset))
	fmt.Fprintf(&b, "  P&L          %s (%s)\n", FormatPnL(snap.PnL), FormatPercent(snap.PnLRatio))

	b.WriteString("\n")
	b.WriteString(RenderPositions(snap.Positions))

	if len(snap.History) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderTrades(snap.History, maxTrades))
	}

	return b.String()
}

// RenderPositions renders the position table, symbols sorted for stable
// output.
func RenderPositions(positions map[string]models.Position) string {
	var b strings.Builder

	if len(positions) == 0 {
		b.WriteString("No open positions\n")
		return b.String()
	}

	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	fmt.Fprintf(&b, "%-10s %8s %12s %12s %14s %14s\n",
		"SYMBOL", "QTY", "AVG COST", "LAST", "VALUE", "UNREAL P&L")
	for _, symbol := range symbols {
		pos := positions[symbol]
		fmt.Fprintf(&b, "%-10s %8d %12.3f %12.2f %14s %14s\n",
			pos.Symbol, pos.Quantity, pos.AverageCost, pos.LastPrice,
			FormatCNY(pos.MarketValue()), FormatPnL(pos.UnrealizedPnL()))
	}
	return b.String()
}

// RenderTrades renders up to maxTrades history rows, most recent first.
// maxTrades <= 0 renders everything.
func RenderTrades(history []models.Trade, maxTrades int) string {
	var b strings.Builder

	if maxTrades <= 0 || maxTrades > len(history) {
		maxTrades = len(history)
	}

	fmt.Fprintf(&b, "%-20s %-10s %-5s %10s %8s %10s\n",
		"TIME", "SYMBOL", "SIDE", "PRICE", "QTY", "FEE")
	for _, trade := range history[:maxTrades] {
		fmt.Fprintf(&b, "%-20s %-10s %-5s %10.2f %8d %10.2f\n",
			trade.Timestamp.Format("2006-01-02 15:04:05"),
			trade.Symbol, trade.Side, trade.Price, trade.Quantity, trade.Fee)
	}
	return b.String()
}
