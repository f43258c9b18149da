package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(constants.AmountPlaces)
}

// ParseAmount parses inputs such as "150", "150.5" or "150.50".
// More than two fractional digits is rejected rather than rounded.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", input)
	}

	if !amount.Equal(amount.Truncate(constants.AmountPlaces)) {
		return decimal.Zero, fmt.Errorf("invalid amount: %s (at most %d decimal places)", input, constants.AmountPlaces)
	}

	return amount, nil
}
