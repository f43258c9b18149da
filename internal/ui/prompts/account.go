package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
)

// PromptOwnerName prompts for the account owner's name
func PromptOwnerName() (string, error) {
	return PromptInput("Owner name:", "", nil)
}

// PromptInitialBalance prompts for initial balance with validation
func PromptInitialBalance() (string, error) {
	return PromptInput("Initial deposit (press Enter for 0):", "0", validation.ValidateInitialBalanceInput)
}

// PromptCardAccount lets the operator pick an account that has no card yet.
func PromptCardAccount(accounts []model.AccountSummary) (string, error) {
	var options []huh.Option[string]
	for _, acc := range accounts {
		if acc.HasCard {
			continue
		}
		label := fmt.Sprintf("%s  %s  (%s)", acc.ID, acc.OwnerName, utils.FormatAmount(acc.Balance))
		options = append(options, huh.NewOption(label, acc.ID))
	}

	if len(options) == 0 {
		return "", fmt.Errorf("every account already has a card")
	}

	var selected string
	err := huh.NewSelect[string]().
		Title("Account:").
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return selected, nil
}

// PromptCardNumber prompts for a 16-digit card number
func PromptCardNumber(message string) (string, error) {
	return PromptInput(message, "", validation.ValidateCardNumber)
}
