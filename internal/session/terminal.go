package session

import (
	"github.com/hance08/atm/internal/model"
	"github.com/shopspring/decimal"
)

// Terminal is the input/output surface a Session drives.
//
// Read methods return io.EOF when input is exhausted and an error wrapping
// utils.ErrMalformedNumber when the token is not a number. Any other error
// (for example a cancelled prompt) ends the session and is returned by Run.
type Terminal interface {
	ReadInt(prompt string) (int64, error)
	ReadSecret(prompt string) (int64, error)
	ReadAmount(prompt string) (decimal.Decimal, error)
	// Choose shows a numbered menu and returns the chosen number. The number
	// is not range checked.
	Choose(title string, options []string, prompt string) (int64, error)
	Confirm(message string) (bool, error)

	Message(text string)
	Success(text string)
	Failure(text string)
	History(title string, entries []model.Transaction)
	// Break separates one menu round from the next.
	Break()
}
