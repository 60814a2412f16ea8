package display

import (
	"strings"
	"testing"
	"time"

	"paperdesk/internal/models"
)

func TestFormatCNY(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "¥0.00"},
		{999.5, "¥999.50"},
		{1234.56, "¥1,234.56"},
		{1234567.891, "¥1,234,567.89"},
		{-98765.4, "-¥98,765.40"},
	}
	for _, tc := range cases {
		if got := FormatCNY(tc.amount); got != tc.want {
			t.Errorf("FormatCNY(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatCompactCNY(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{999, "¥999.00"},
		{25000, "¥2.50万"},
		{999951.40, "¥100.00万"},
		{150000000, "¥1.50亿"},
		{-230000000, "-¥2.30亿"},
		{-25000, "-¥2.50万"},
	}
	for _, tc := range cases {
		if got := FormatCompactCNY(tc.amount); got != tc.want {
			t.Errorf("FormatCompactCNY(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.0523); got != "+5.23%" {
		t.Errorf("FormatPercent(0.0523) = %q, want +5.23%%", got)
	}
	if got := FormatPercent(-0.106); got != "-10.60%" {
		t.Errorf("FormatPercent(-0.106) = %q, want -10.60%%", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("FormatPercent(0) = %q, want 0.00%%", got)
	}
}

func TestFormatPnL(t *testing.T) {
	if got := FormatPnL(1500); got != "+¥1,500.00" {
		t.Errorf("FormatPnL(1500) = %q", got)
	}
	if got := FormatPnL(-1500); got != "-¥1,500.00" {
		t.Errorf("FormatPnL(-1500) = %q", got)
	}
}

func TestRenderDashboard(t *testing.T) {
	snap := models.Snapshot{
		Cash:           819951.40,
		TotalAsset:     999951.40,
		InitialCapital: 1000000,
		PnL:            -48.60,
		PnLRatio:       -0.0000486,
		Currency:       "CNY",
		Positions: map[string]models.Position{
			"600519": {Symbol: "600519", Quantity: 100, AverageCost: 1800.486, LastPrice: 1800},
		},
		History: []models.Trade{
			{ID: "t1", Timestamp: time.Date(2030, 1, 2, 10, 30, 0, 0, time.UTC), Symbol: "600519", Side: models.SideBuy, Price: 1800, Quantity: 100, Fee: 48.6},
		},
	}

	out := RenderDashboard(snap, 10)

	for _, want := range []string{"600519", "¥819,951.40", "CNY", "1800.486", "BUY"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPositionsEmpty(t *testing.T) {
	out := RenderPositions(nil)
	if !strings.Contains(out, "No open positions") {
		t.Errorf("empty render = %q", out)
	}
}

func TestRenderTradesLimit(t *testing.T) {
	history := []models.Trade{
		{Symbol: "a", Timestamp: time.Now()},
		{Symbol: "b", Timestamp: time.Now()},
		{Symbol: "c", Timestamp: time.Now()},
	}

	out := RenderTrades(history, 2)
	if strings.Count(out, "\n") != 3 {
		t.Errorf("want header plus 2 rows:\n%s", out)
	}
	if strings.Contains(out, "c ") {
		t.Errorf("limit not applied:\n%s", out)
	}
}
