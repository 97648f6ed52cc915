package ui

import (
	"github.com/charmbracelet/huh"
)

// PromptYesNo asks a yes/no question and returns true if the user confirms.
// Any input error (EOF, closed stdin) counts as a refusal.
func PromptYesNo(prompt string, defaultYes bool) bool {
	confirm := defaultYes
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()
	if err != nil {
		return false
	}
	return confirm
}
