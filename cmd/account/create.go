package account

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createRunner struct {
	app     *app.App
	owner   string
	balance string
	yes     bool
}

func NewCreateCmd(a *app.App) *cobra.Command {
	r := &createRunner{app: a}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account without a card.",
		Long: `Create a new account for a customer. The account gets the next free ID
(ACC1, ACC2, ...) and starts without a card.

Example: teller account create --owner "Ada Lovelace" --balance 250.00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return asStaff(cmd, a, func() error {
				if cmd.Flags().Changed("owner") {
					return r.flagsMode()
				}
				return r.interactiveMode()
			})
		},
	}

	cmd.Flags().StringVarP(&r.owner, "owner", "o", "", "Account owner name")
	cmd.Flags().StringVarP(&r.balance, "balance", "b", "0", "Initial balance")
	cmd.Flags().BoolVarP(&r.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *createRunner) flagsMode() error {
	balance, err := utils.ParseAmount(r.balance)
	if err != nil {
		return err
	}

	return r.create(r.owner, balance, r.yes)
}

func (r *createRunner) interactiveMode() error {
	owner, err := prompts.PromptOwnerName()
	if err != nil {
		return err
	}

	raw, err := prompts.PromptInitialBalance()
	if err != nil {
		return err
	}
	balance, err := utils.ParseAmount(raw)
	if err != nil {
		return err
	}

	return r.create(owner, balance, r.yes)
}

func (r *createRunner) create(owner string, balance decimal.Decimal, skipConfirm bool) error {
	if !skipConfirm {
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
	}

	id, err := r.app.Service.CreateAccount(owner, balance)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(id, owner)
}
