package views

import (
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderWelcome(owner string) {
	pterm.Success.Printf("Welcome, %s!\n", owner)
}

func RenderBalance(balance decimal.Decimal) {
	pterm.Info.Printf("Balance: %s\n", utils.FormatAmount(balance))
}

// RenderMovement reports a completed deposit or withdrawal.
func RenderMovement(verb string, amount, balance decimal.Decimal) {
	pterm.Success.Printf("%s %s. New balance: %s\n", verb, utils.FormatAmount(amount), utils.FormatAmount(balance))
}
