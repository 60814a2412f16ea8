package fees

import (
	"math"
	"testing"

	"paperdesk/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateBuyFees(t *testing.T) {
	s := DefaultSchedule()

	// 100 shares at 1800.00
	b := s.Calculate(models.SideBuy, 180000)

	if !almostEqual(b.Commission, 45) {
		t.Errorf("commission = %v, want 45", b.Commission)
	}
	if !almostEqual(b.TransferFee, 3.6) {
		t.Errorf("transfer fee = %v, want 3.6", b.TransferFee)
	}
	if b.StampDuty != 0 {
		t.Errorf("stamp duty = %v, want 0 on buy", b.StampDuty)
	}
	if !almostEqual(b.Total(), 48.6) {
		t.Errorf("total = %v, want 48.6", b.Total())
	}
}

func TestCalculateSellFees(t *testing.T) {
	s := DefaultSchedule()

	// 50 shares at 1900.00
	b := s.Calculate(models.SideSell, 95000)

	if !almostEqual(b.Commission, 23.75) {
		t.Errorf("commission = %v, want 23.75", b.Commission)
	}
	if !almostEqual(b.TransferFee, 1.9) {
		t.Errorf("transfer fee = %v, want 1.9", b.TransferFee)
	}
	if !almostEqual(b.StampDuty, 95) {
		t.Errorf("stamp duty = %v, want 95", b.StampDuty)
	}
	if !almostEqual(b.Total(), 120.65) {
		t.Errorf("total = %v, want 120.65", b.Total())
	}
}

func TestMinimumCommissionFloor(t *testing.T) {
	s := DefaultSchedule()

	// Small trade: 0.00025 * 1000 = 0.25, floored to 5.
	b := s.Calculate(models.SideBuy, 1000)
	if !almostEqual(b.Commission, 5) {
		t.Errorf("commission = %v, want minimum 5", b.Commission)
	}

	// At exactly the break-even value (20000) commission equals the floor.
	b = s.Calculate(models.SideBuy, 20000)
	if !almostEqual(b.Commission, 5) {
		t.Errorf("commission = %v, want 5 at break-even", b.Commission)
	}

	// Above break-even the proportional rate applies.
	b = s.Calculate(models.SideBuy, 40000)
	if !almostEqual(b.Commission, 10) {
		t.Errorf("commission = %v, want 10", b.Commission)
	}
}

func TestCustomSchedule(t *testing.T) {
	s := Schedule{
		CommissionRate:  0.001,
		MinCommission:   1,
		TransferFeeRate: 0,
		StampDutyRate:   0.002,
	}

	b := s.Calculate(models.SideSell, 10000)
	if !almostEqual(b.Commission, 10) {
		t.Errorf("commission = %v, want 10", b.Commission)
	}
	if b.TransferFee != 0 {
		t.Errorf("transfer fee = %v, want 0", b.TransferFee)
	}
	if !almostEqual(b.StampDuty, 20) {
		t.Errorf("stamp duty = %v, want 20", b.StampDuty)
	}
}
