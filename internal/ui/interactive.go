package ui

import (
	"io"

	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/ui/prompts"
	"github.com/hance08/atm/internal/ui/views"
	"github.com/hance08/atm/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// Interactive renders the session with huh forms and pterm printers. Input
// comes from the controlling terminal.
type Interactive struct {
	out     io.Writer
	history *views.HistoryView
}

func NewInteractive(out io.Writer) *Interactive {
	return &Interactive{
		out:     out,
		history: views.NewHistoryView(out),
	}
}

func (t *Interactive) ReadInt(prompt string) (int64, error) {
	raw, err := prompts.PromptAccountID(prompt)
	if err != nil {
		return 0, err
	}
	return utils.ParseInt(raw)
}

func (t *Interactive) ReadSecret(prompt string) (int64, error) {
	raw, err := prompts.PromptPIN(prompt)
	if err != nil {
		return 0, err
	}
	return utils.ParseInt(raw)
}

func (t *Interactive) ReadAmount(prompt string) (decimal.Decimal, error) {
	raw, err := prompts.PromptAmount(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(raw)
}

func (t *Interactive) Choose(title string, options []string, _ string) (int64, error) {
	return prompts.PromptMenu(title, options)
}

func (t *Interactive) Confirm(message string) (bool, error) {
	return confirm(message)
}

func (t *Interactive) Message(text string) {
	pterm.Fprintln(t.out, pterm.Info.Sprint(text))
}

func (t *Interactive) Success(text string) {
	pterm.Fprintln(t.out, pterm.Success.Sprint(text))
}

func (t *Interactive) Failure(text string) {
	pterm.Fprintln(t.out, pterm.Error.Sprint(text))
}

func (t *Interactive) History(title string, entries []model.Transaction) {
	if err := t.history.Render(title, entries); err != nil {
		t.Failure(err.Error())
	}
}

func (t *Interactive) Break() {
	printSeparator(t.out)
}
