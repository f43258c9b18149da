package validation

import (
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
)

// ValidateCardNumber checks that card is exactly 16 ASCII digits.
func ValidateCardNumber(card string) error {
	if !isDigits(card, constants.CardNumberLen) {
		return ledger.ErrInvalidCardFormat
	}
	return nil
}

// ValidatePIN checks that pin is exactly 4 ASCII digits.
func ValidatePIN(pin string) error {
	if !isDigits(pin, constants.PINLen) {
		return ledger.ErrInvalidPinFormat
	}
	return nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
