package views

import (
	"fmt"
	"io"

	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/utils"
	"github.com/pterm/pterm"
)

type HistoryView struct {
	out io.Writer
}

func NewHistoryView(out io.Writer) *HistoryView {
	return &HistoryView{out: out}
}

// Render prints entries oldest first as a table. Debits are red, credits green.
func (v *HistoryView) Render(title string, entries []model.Transaction) error {
	pterm.Fprintln(v.out, pterm.DefaultSection.Sprint(title))

	if len(entries) == 0 {
		pterm.Fprintln(v.out, pterm.Warning.Sprint("No transactions found"))
		return nil
	}

	tableData := pterm.TableData{
		{"#", "Time", "Type", "Amount", "Counterparty"},
	}

	for i, tx := range entries {
		amount := utils.FormatAmount(tx.Amount())
		if tx.Amount().IsNegative() || tx.Kind() == model.KindWithdraw {
			amount = pterm.Red(amount)
		} else {
			amount = pterm.Green(amount)
		}

		counterparty := "-"
		if tx.Kind() == model.KindTransfer {
			counterparty = fmt.Sprintf("%d", tx.CounterpartyID())
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			tx.Time().Format("2006-01-02 15:04:05"),
			tx.Label(),
			amount,
			counterparty,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	pterm.Fprintln(v.out, table)
	pterm.Fprintln(v.out, pterm.Info.Sprintf("Total: %d transactions", len(entries)))
	return nil
}
