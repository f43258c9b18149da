package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/utils"
)

// ValidateAmountInput is a prompt validator for strictly positive amounts.
func ValidateAmountInput(input string) error {
	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateInitialBalanceInput accepts zero or a positive amount; empty input means zero.
func ValidateInitialBalanceInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}
