package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// sessionRunner drives the interactive menus until the user exits.
type sessionRunner struct {
	app *app.App
}

func (r *sessionRunner) Run() error {
	ui.PrintL1Title("Teller")

	for {
		choice, err := prompts.PromptMenu("Main menu", constants.MenuStaffLogin, constants.MenuCustomerLogin, constants.MenuExit)
		if err != nil {
			if errhandler.IsInterrupt(err) {
				return r.exit()
			}
			return err
		}

		switch choice {
		case constants.MenuStaffLogin:
			r.staff()
		case constants.MenuCustomerLogin:
			r.customer()
		case constants.MenuExit:
			return r.exit()
		}
	}
}

func (r *sessionRunner) exit() error {
	if err := r.app.Service.Exit(); err != nil {
		return err
	}
	pterm.Info.Println("Goodbye.")
	return nil
}

// report prints err unless it is a cancelled prompt, which just returns to the menu.
func report(err error) {
	if err == nil {
		return
	}
	if errhandler.IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return
	}
	errhandler.Report(err)
}

func (r *sessionRunner) staff() {
	secret, err := prompts.PromptSecret("Staff password:")
	if err != nil {
		report(err)
		return
	}
	if err := r.app.Service.StaffLogin(secret); err != nil {
		report(err)
		return
	}

	ui.PrintL2Title("Staff menu")
	for {
		choice, err := prompts.PromptMenu("Staff menu",
			constants.MenuCreateAccount,
			constants.MenuRegisterCard,
			constants.MenuListAccounts,
			constants.MenuBack,
		)
		if err != nil {
			report(err)
			choice = constants.MenuBack
		}

		switch choice {
		case constants.MenuCreateAccount:
			report(r.createAccount())
		case constants.MenuRegisterCard:
			report(r.registerCard())
		case constants.MenuListAccounts:
			report(r.listAccounts())
		case constants.MenuBack:
			if err := r.app.Service.Back(); err != nil {
				report(err)
			}
			return
		}
	}
}

func (r *sessionRunner) createAccount() error {
	owner, err := prompts.PromptOwnerName()
	if err != nil {
		return err
	}

	rawBalance, err := prompts.PromptInitialBalance()
	if err != nil {
		return err
	}
	balance, err := utils.ParseAmount(rawBalance)
	if err != nil {
		return err
	}

	if err := views.RenderAccountSummary(owner, balance); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Create this account?", true)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Warning.Println("Account creation cancelled.")
		return nil
	}

	id, err := r.app.Service.CreateAccount(owner, balance)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(id, owner)
}

func (r *sessionRunner) registerCard() error {
	accounts, err := r.app.Service.ListAccounts()
	if err != nil {
		return err
	}

	id, err := prompts.PromptCardAccount(accounts)
	if err != nil {
		return err
	}

	card, err := prompts.PromptCardNumber("Card number (16 digits):")
	if err != nil {
		return err
	}

	pin, err := prompts.PromptPIN("PIN (4 digits):")
	if err != nil {
		return err
	}

	if err := r.app.Service.RegisterCard(id, card, pin); err != nil {
		return err
	}

	views.RenderCardSuccess(id, card)
	return nil
}

func (r *sessionRunner) listAccounts() error {
	accounts, err := r.app.Service.ListAccounts()
	if err != nil {
		return err
	}

	return views.NewAccountListView().Render(accounts)
}

func (r *sessionRunner) customer() {
	card, err := prompts.PromptCardNumber("Card number:")
	if err != nil {
		report(err)
		return
	}

	pin, err := prompts.PromptPIN("PIN:")
	if err != nil {
		report(err)
		return
	}

	acc, err := r.app.Service.CustomerLogin(card, pin)
	if err != nil {
		report(err)
		return
	}
	views.RenderWelcome(acc.OwnerName)

	for {
		choice, err := prompts.PromptMenu("Customer menu",
			constants.MenuCheckBalance,
			constants.MenuDeposit,
			constants.MenuWithdraw,
			constants.MenuLogout,
		)
		if err != nil {
			report(err)
			choice = constants.MenuLogout
		}

		switch choice {
		case constants.MenuCheckBalance:
			balance, err := r.app.Service.CheckBalance()
			if err != nil {
				report(err)
				continue
			}
			views.RenderBalance(balance)
		case constants.MenuDeposit:
			report(r.movement("Deposited", "Deposit amount:", r.app.Service.Deposit))
		case constants.MenuWithdraw:
			report(r.movement("Withdrew", "Withdrawal amount:", r.app.Service.Withdraw))
		case constants.MenuLogout:
			if err := r.app.Service.Logout(); err != nil {
				report(err)
			}
			pterm.Info.Println("Logged out.")
			return
		}
	}
}

func (r *sessionRunner) movement(verb, message string, apply func(amount decimal.Decimal) (decimal.Decimal, error)) error {
	raw, err := prompts.PromptAmount(message, "Up to 2 decimal places", validation.ValidateAmountInput)
	if err != nil {
		return err
	}

	amount, err := utils.ParseAmount(raw)
	if err != nil {
		return err
	}

	balance, err := apply(amount)
	if err != nil {
		return err
	}

	views.RenderMovement(verb, amount, balance)
	return nil
}
