package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of fractional digits kept for money amounts.
const MoneyPrecision = 2

// RoundMoney rounds an amount to cents, half away from zero.
// Example: 10.005 returns 10.01, -10.005 returns -10.01
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// FormatMoney formats an amount with exactly two fractional digits.
// Example: 100 returns "100.00", 1754.9865 returns "1754.99"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}
