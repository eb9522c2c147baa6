package errhandler

import (
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError reports a session error. It returns true when the error was a
// cancellation, which is a clean exit.
func HandleError(w io.Writer, err error) bool {
	if IsCancelled(err) {
		pterm.Fprintln(w, pterm.Warning.Sprint("Operation Cancelled"))
		return true
	}

	pterm.Fprintln(w, pterm.Error.Sprint(err))
	return false
}
