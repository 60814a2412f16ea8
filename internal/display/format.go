// Package display formats ledger snapshots for human consumption. It is
// purely presentational and never mutates the ledger it reads.
package display

import (
	"fmt"
	"strings"
)

// Scale thresholds for Chinese number units.
const (
	wan = 1e4 // 万
	yi  = 1e8 // 亿
)

// FormatCNY formats an amount with the yuan sign and comma grouping.
func FormatCNY(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")

	result := "¥" + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatCompactCNY formats an amount scaled to 万 or 亿 for dashboard
// magnitudes, falling back to plain yuan below ten thousand.
func FormatCompactCNY(amount float64) string {
	negative := amount < 0
	abs := amount
	if negative {
		abs = -abs
	}

	var result string
	switch {
	case abs >= yi:
		result = fmt.Sprintf("¥%.2f亿", abs/yi)
	case abs >= wan:
		result = fmt.Sprintf("¥%.2f万", abs/wan)
	default:
		return FormatCNY(amount)
	}

	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts comma separators into an integer string.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats a ratio as a signed percentage.
func FormatPercent(ratio float64) string {
	sign := ""
	if ratio > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, ratio*100)
}

// FormatPnL formats a profit figure with an explicit sign.
func FormatPnL(pnl float64) string {
	formatted := FormatCNY(pnl)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}
