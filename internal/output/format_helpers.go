package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatYen formats a decimal as whole yen with thousands separators.
// Display is where amounts get floored; internal values keep full precision.
func FormatYen(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	whole := amount.Abs().Floor().StringFixed(0)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("¥")

	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
		if len(whole) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(whole); i += 3 {
		b.WriteString(whole[i : i+3])
		if i+3 < len(whole) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatPercent formats a fractional rate (0.1021) as a percentage string.
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
