package account

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account with its balance and card.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return asStaff(cmd, a, func() error {
				accounts, err := a.Service.ListAccounts()
				if err != nil {
					return err
				}
				return views.NewAccountListView().Render(accounts)
			})
		},
	}
}
