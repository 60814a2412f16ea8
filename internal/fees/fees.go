// Package fees implements the A-share trading fee schedule.
package fees

import (
	"paperdesk/internal/models"
)

// Schedule holds the fee rates applied to simulated fills.
type Schedule struct {
	CommissionRate  float64
	MinCommission   float64
	TransferFeeRate float64
	StampDutyRate   float64
}

// DefaultSchedule returns the standard A-share retail fee schedule.
func DefaultSchedule() Schedule {
	return Schedule{
		CommissionRate:  0.00025,
		MinCommission:   5,
		TransferFeeRate: 0.00002,
		StampDutyRate:   0.001,
	}
}

// Breakdown is the per-order fee decomposition. Only the total is persisted
// on the trade record; the breakdown itself is transient.
type Breakdown struct {
	Commission  float64
	TransferFee float64
	StampDuty   float64
}

// Total returns the sum of all fee components.
func (b Breakdown) Total() float64 {
	return b.Commission + b.TransferFee + b.StampDuty
}

// Calculate computes the fees for a fill of the given trade value.
// Commission is floored at MinCommission, the transfer fee is charged on
// both sides, and stamp duty only on sells. The caller guarantees a
// positive trade value.
func (s Schedule) Calculate(side models.Side, tradeValue float64) Breakdown {
	commission := tradeValue * s.CommissionRate
	if commission < s.MinCommission {
		commission = s.MinCommission
	}

	b := Breakdown{
		Commission:  commission,
		TransferFee: tradeValue * s.TransferFeeRate,
	}
	if side == models.SideSell {
		b.StampDuty = tradeValue * s.StampDutyRate
	}
	return b
}
