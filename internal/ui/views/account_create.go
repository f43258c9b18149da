package views

import (
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderAccountSummary(owner string, balance decimal.Decimal) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Owner"), owner},
		{pterm.Blue("Initial Balance"), utils.FormatAmount(balance)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(id, owner string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), id},
		{pterm.Blue("Owner"), owner},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Created account ID: %s\n", id)

	return nil
}

func RenderCardSuccess(accountID, card string) {
	pterm.Success.Printf("Card %s registered to account %s\n", model.MaskCard(card), accountID)
}
