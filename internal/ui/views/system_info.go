package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath     string
	StoreDriver    string
	StorePath      string
	StoreExists    bool
	AccountCount   int
	StaffLoginOpen bool
	AppDataDir     string
}

func RenderSystemInfo(data SystemInfoItem) error {
	storeStatus := pterm.Green("Found")
	if !data.StoreExists {
		storeStatus = pterm.Yellow("Not Found (Created empty)")
	}

	staff := pterm.Green("Enabled")
	if !data.StaffLoginOpen {
		staff = pterm.Red("Disabled (no operator secret)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Driver", data.StoreDriver},
		{"Store Path", data.StorePath},
		{"Store Status", storeStatus},
		{"Accounts", fmt.Sprintf("%d", data.AccountCount)},
		{"Staff Login", staff},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
