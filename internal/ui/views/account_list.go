package views

import (
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.AccountSummary) error {
	headers := []string{"ID", "Owner", "Balance", "Card"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		card := pterm.Gray("(no card)")
		if acc.HasCard {
			card = pterm.Green(acc.MaskedCard)
		}

		balance := utils.FormatAmount(acc.Balance)
		if acc.Balance.IsZero() {
			balance = pterm.Gray(balance)
		}

		tableData = append(tableData, []string{acc.ID, acc.OwnerName, balance, card})
	}

	pterm.DefaultSection.Printf("Account List")
	if len(accounts) > 0 {
		if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(tableData).Render(); err != nil {
			return err
		}
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
