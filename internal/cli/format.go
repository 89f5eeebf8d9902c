// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a whole-euro amount with thousands separators.
// e.g., 1234567 -> "€1,234,567"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	return "€" + FormatNumber(int64(math.Round(v)))
}

// FormatMoneyCents formats an amount to the cent, for payments where the
// decimals matter. e.g., 790.254 -> "€790.25"
func FormatMoneyCents(v float64) string {
	if v < 0 {
		return "-" + FormatMoneyCents(-v)
	}
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("€%s.%02d", FormatNumber(cents/100), cents%100)
}

// FormatMoneyCompact abbreviates large amounts for chart axes and cards.
// e.g., 1234567 -> "€1.2M", 45600 -> "€46K"
func FormatMoneyCompact(v float64) string {
	if v < 0 {
		return "-" + FormatMoneyCompact(-v)
	}
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("€%.1fM", v/1_000_000)
	case v >= 10_000:
		return fmt.Sprintf("€%.0fK", v/1_000)
	case v >= 1_000:
		return fmt.Sprintf("€%.1fK", v/1_000)
	default:
		return fmt.Sprintf("€%.0f", v)
	}
}

// FormatRate formats an annual percentage rate. e.g., 2.5 -> "2.50%"
func FormatRate(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatPercent formats a percentage value with one decimal. Takes percent
// units, not a 0-1 fraction. e.g., 66.666 -> "66.7%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatYears formats a possibly fractional term in years.
// e.g., 30 -> "30y", 22.5 -> "22.5y"
func FormatYears(years float64) string {
	if years == math.Trunc(years) {
		return fmt.Sprintf("%.0fy", years)
	}
	return fmt.Sprintf("%.1fy", years)
}
