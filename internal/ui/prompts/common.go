package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a generic text input with optional validator
func PromptInput(message string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(inputVal), err
}

// PromptSecret is PromptInput with the typed characters masked.
func PromptSecret(message string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		EchoMode(huh.EchoModePassword).
		Value(&inputVal)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(inputVal), err
}

// PromptMenu shows a numbered selection and returns the 1-based choice.
func PromptMenu(title string, options []string) (int64, error) {
	opts := make([]huh.Option[int64], 0, len(options))
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, int64(i+1)))
	}

	var selected int64 = 1

	err := huh.NewSelect[int64]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
