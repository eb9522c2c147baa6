package views

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath   string
	StoreDriver  string
	UIMode       string
	LogLevel     string
	AccountCount int
}

func RenderSystemInfo(out io.Writer, data SystemInfoItem) error {
	configPath := data.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	tableData := pterm.TableData{
		{"Configuration File", configPath},
		{"Store Driver", data.StoreDriver},
		{"UI Mode", data.UIMode},
		{"Log Level", data.LogLevel},
		{"Seeded Accounts", fmt.Sprintf("%d", data.AccountCount)},
	}

	table, err := pterm.DefaultTable.WithData(tableData).Srender()
	if err != nil {
		return err
	}
	pterm.Fprintln(out, table)
	return nil
}
