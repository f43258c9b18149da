package account

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type registerRunner struct {
	app  *app.App
	card string
	pin  string
}

func NewRegisterCardCmd(a *app.App) *cobra.Command {
	r := &registerRunner{app: a}

	cmd := &cobra.Command{
		Use:   "register-card [account-id]",
		Short: "Bind a card number and PIN to an account.",
		Long: `Bind a 16-digit card number and a 4-digit PIN to an account that has no card yet.
Without an account ID you pick one from the accounts that have no card.

Example: teller account register-card ACC1 --card 1234567812345678`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return asStaff(cmd, a, func() error {
				return r.run(args)
			})
		},
	}

	cmd.Flags().StringVar(&r.card, "card", "", "16-digit card number")
	cmd.Flags().StringVar(&r.pin, "pin", "", "4-digit PIN (prompted when omitted)")

	return cmd
}

func (r *registerRunner) run(args []string) error {
	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		accounts, err := r.app.Service.ListAccounts()
		if err != nil {
			return err
		}
		id, err = prompts.PromptCardAccount(accounts)
		if err != nil {
			return err
		}
	}

	card := r.card
	if card == "" {
		var err error
		card, err = prompts.PromptCardNumber("Card number (16 digits):")
		if err != nil {
			return err
		}
	}

	pin := r.pin
	if pin == "" {
		var err error
		pin, err = prompts.PromptPIN("PIN (4 digits):")
		if err != nil {
			return err
		}
	}

	if err := r.app.Service.RegisterCard(id, card, pin); err != nil {
		return err
	}

	views.RenderCardSuccess(id, card)
	return nil
}
