package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// Console speaks the plain text protocol: prompts without a trailing newline,
// one message per line and whitespace separated input tokens. Output carries
// no styling so it can be compared byte for byte.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{in: scanner, out: out}
}

// next prints the prompt and returns the next token, or io.EOF.
func (c *Console) next(prompt string) (string, error) {
	pterm.Fprint(c.out, prompt)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		pterm.Fprintln(c.out)
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *Console) ReadInt(prompt string) (int64, error) {
	token, err := c.next(prompt)
	if err != nil {
		return 0, err
	}
	return utils.ParseInt(token)
}

// ReadSecret is ReadInt; a byte stream has no echo to suppress.
func (c *Console) ReadSecret(prompt string) (int64, error) {
	return c.ReadInt(prompt)
}

func (c *Console) ReadAmount(prompt string) (decimal.Decimal, error) {
	token, err := c.next(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(token)
}

func (c *Console) Choose(title string, options []string, prompt string) (int64, error) {
	pterm.Fprintln(c.out, title)
	for i, option := range options {
		pterm.Fprintln(c.out, fmt.Sprintf("%d. %s", i+1, option))
	}
	return c.ReadInt(prompt)
}

// Confirm always accepts. The plain protocol has no confirmation step.
func (c *Console) Confirm(string) (bool, error) {
	return true, nil
}

func (c *Console) Message(text string) { pterm.Fprintln(c.out, text) }
func (c *Console) Success(text string) { pterm.Fprintln(c.out, text) }
func (c *Console) Failure(text string) { pterm.Fprintln(c.out, text) }

func (c *Console) History(title string, entries []model.Transaction) {
	pterm.Fprintln(c.out, title)
	for _, tx := range entries {
		pterm.Fprintln(c.out, fmt.Sprintf("%s - %s", tx.Label(), utils.FormatAmount(tx.Amount())))
	}
}

func (c *Console) Break() { pterm.Fprintln(c.out) }
