package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered amount and rejects anything that is
// not a strictly positive number. "0.01" passes, "0", "-5" and "abc" do not.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount must be a number")
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than zero")
	}
	return d, nil
}

// FormatAmount renders a decimal without trailing zeros (500.00 -> "500").
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
