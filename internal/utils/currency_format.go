package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with exactly the given number of decimal places,
// rounding half away from zero and padding with zeros.
// Example: 125 with precision 2 returns "125.00"
// Example: 73.666 with precision 2 returns "73.67"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
