// Package ledger implements the simulated single-account brokerage ledger.
package ledger

import (
	"paperdesk/internal/models"
)

// applyBuy folds a fill into a position, starting from the zero value when
// the symbol was not previously held. The fee is capitalized into the cost
// basis: the new average cost is the total money spent, fees included,
// divided by the total quantity held.
func applyBuy(pos models.Position, symbol string, price float64, qty int, fee float64) models.Position {
	oldQty := float64(pos.Quantity)
	newQty := pos.Quantity + qty

	pos.Symbol = symbol
	pos.AverageCost = (pos.AverageCost*oldQty + price*float64(qty) + fee) / float64(newQty)
	pos.Quantity = newQty
	pos.LastPrice = price
	return pos
}

// applySell reduces a position by the sold quantity. The average cost is
// left untouched; closed=true means the position reached zero and must be
// dropped from the account. The caller has already checked that
// pos.Quantity >= qty.
func applySell(pos models.Position, price float64, qty int) (next models.Position, closed bool) {
	pos.Quantity -= qty
	pos.LastPrice = price
	return pos, pos.Quantity == 0
}

// markToMarket revalues a position at the latest observed price without
// altering its cost basis.
func markToMarket(pos models.Position, price float64) models.Position {
	pos.LastPrice = price
	return pos
}
