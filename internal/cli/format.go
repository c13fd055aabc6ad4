// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/mstephjuan/expense-tracker/internal/money"
)

// FormatMoney renders an amount with the configured currency symbol,
// e.g. 1234 -> "$12.34". Negative amounts keep the sign in front.
func FormatMoney(symbol string, a money.Amount) string {
	if a < 0 {
		return "-" + FormatMoney(symbol, -a)
	}
	return symbol + a.String()
}

// FormatOverage renders a signed overage: positive means over budget and is
// prefixed with "+".
func FormatOverage(symbol string, a money.Amount) string {
	if a > 0 {
		return "+" + FormatMoney(symbol, a)
	}
	return FormatMoney(symbol, a)
}

// FormatMonth returns the English month name, e.g. 8 -> "August".
func FormatMonth(m time.Month) string {
	return m.String()
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
