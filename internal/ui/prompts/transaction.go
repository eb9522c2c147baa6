package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/atm/internal/validation"
)

// PromptAmount prompts for a withdraw, deposit or transfer amount. Only the
// number format is checked here.
func PromptAmount(message string) (string, error) {
	var amount string

	err := huh.NewInput().
		Title(trimPrompt(message)).
		Description("Amounts must be greater than zero").
		Value(&amount).
		Validate(validation.ValidateAmount).
		Run()

	return amount, err
}
