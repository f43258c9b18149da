package customer

import (
	"errors"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type customerRunner struct {
	app  *app.App
	card string
	pin  string
}

func NewCustomerCmd(a *app.App) *cobra.Command {
	r := &customerRunner{app: a}

	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "Card holder commands: balance, deposit and withdraw.",
		Long: `Card holder commands: balance, deposit and withdraw.

Every subcommand logs in with the card number and PIN first. Missing values
are asked for interactively.`,
	}

	customerCmd.PersistentFlags().StringVar(&r.card, "card", "", "16-digit card number")
	customerCmd.PersistentFlags().StringVar(&r.pin, "pin", "", "4-digit PIN")

	customerCmd.AddCommand(&cobra.Command{
		Use:   "balance",
		Short: "Show the balance of the card's account.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withCard(func() error {
				balance, err := a.Service.CheckBalance()
				if err != nil {
					return err
				}
				views.RenderBalance(balance)
				return nil
			})
		},
	})

	customerCmd.AddCommand(&cobra.Command{
		Use:     "deposit <amount>",
		Short:   "Deposit money into the card's account.",
		Example: "teller customer deposit 50.25 --card 1234567812345678",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.movement(args[0], "Deposited", a.Service.Deposit)
		},
	})

	customerCmd.AddCommand(&cobra.Command{
		Use:     "withdraw <amount>",
		Short:   "Withdraw money from the card's account.",
		Example: "teller customer withdraw 20 --card 1234567812345678",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.movement(args[0], "Withdrew", a.Service.Withdraw)
		},
	})

	return customerCmd
}

// withCard logs in with the card and PIN, runs fn and logs out again.
func (r *customerRunner) withCard(fn func() error) (err error) {
	card := r.card
	if card == "" {
		card, err = prompts.PromptCardNumber("Card number:")
		if err != nil {
			return err
		}
	}

	pin := r.pin
	if pin == "" {
		pin, err = prompts.PromptPIN("PIN:")
		if err != nil {
			return err
		}
	}

	acc, err := r.app.Service.CustomerLogin(card, pin)
	if err != nil {
		return err
	}
	views.RenderWelcome(acc.OwnerName)

	defer func() {
		err = errors.Join(err, r.app.Service.Logout())
	}()

	return fn()
}

func (r *customerRunner) movement(rawAmount, verb string, apply func(decimal.Decimal) (decimal.Decimal, error)) error {
	amount, err := utils.ParseAmount(rawAmount)
	if err != nil {
		return err
	}

	return r.withCard(func() error {
		balance, err := apply(amount)
		if err != nil {
			return err
		}
		views.RenderMovement(verb, amount, balance)
		return nil
	})
}
