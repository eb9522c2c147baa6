package prompts

import (
	"strings"

	"github.com/hance08/atm/internal/validation"
)

// PromptAccountID prompts for an account number, either the user's own at
// login or a transfer recipient.
func PromptAccountID(message string) (string, error) {
	return PromptInput(trimPrompt(message), validation.ValidateAccountID)
}

// PromptPIN prompts for the PIN without echoing it
func PromptPIN(message string) (string, error) {
	return PromptSecret(trimPrompt(message), validation.ValidatePIN)
}

// trimPrompt drops the trailing ": " of protocol prompts, huh draws its own title.
func trimPrompt(message string) string {
	return strings.TrimRight(message, ": ")
}
