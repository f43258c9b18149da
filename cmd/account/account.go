package account

import (
	"errors"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Staff commands: create accounts, register cards and list accounts.",
		Long: `Staff commands: create accounts, register cards and list accounts.

Every subcommand logs in with the staff password first. Pass it with --secret,
otherwise you will be asked for it.`,
	}

	accountCmd.PersistentFlags().StringP("secret", "s", "", "Staff password")

	accountCmd.AddCommand(NewCreateCmd(a))
	accountCmd.AddCommand(NewListCmd(a))
	accountCmd.AddCommand(NewRegisterCardCmd(a))

	return accountCmd
}

// asStaff logs in as staff, runs fn and leaves the staff session again.
func asStaff(cmd *cobra.Command, a *app.App, fn func() error) (err error) {
	secret, _ := cmd.Flags().GetString("secret")
	if secret == "" {
		secret, err = prompts.PromptSecret("Staff password:")
		if err != nil {
			return err
		}
	}

	if err := a.Service.StaffLogin(secret); err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, a.Service.Back())
	}()

	return fn()
}
