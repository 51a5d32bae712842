package output

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatPennies formats a penny amount as dollars, e.g. "$1,234.56".
func FormatPennies(pennies int64) string {
	return FormatCurrency(decimal.NewFromInt(pennies).Div(decimal.NewFromInt(100)))
}

// FormatCurrency formats a dollar amount with a thousands separator.
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var grouped string
	for len(intPart) > 3 {
		grouped = "," + intPart[len(intPart)-3:] + grouped
		intPart = intPart[:len(intPart)-3]
	}
	grouped = intPart + grouped

	if negative {
		return fmt.Sprintf("-$%s%s", grouped, fracPart)
	}
	return fmt.Sprintf("$%s%s", grouped, fracPart)
}
