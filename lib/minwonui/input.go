// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"github.com/charmbracelet/lipgloss"
)

// InputModel is a single-line text input rendered in the chrome line
// where the tab bar normally sits. The console uses it for the
// structured search query and for the date range.
type InputModel struct {
	// Prompt is the label shown before the input (e.g. "search: ").
	Prompt string

	// Input is the current text.
	Input string

	// Active is true while the input has keyboard focus.
	Active bool
}

// HandleRune appends a typed character.
func (input *InputModel) HandleRune(character rune) {
	input.Input += string(character)
}

// HandleBackspace removes the last character. Returns true if the
// text changed.
func (input *InputModel) HandleBackspace() bool {
	if len(input.Input) == 0 {
		return false
	}
	runes := []rune(input.Input)
	input.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the text and deactivates the input.
func (input *InputModel) Clear() {
	input.Input = ""
	input.Active = false
}

// View renders the input bar. When active, shows the prompt and text
// with a cursor. When inactive, returns empty string (hidden).
func (input *InputModel) View(theme Theme, width int) string {
	if !input.Active {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Width(width)
	cursor := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render("▎")

	return style.Render(" " + input.Prompt + input.Input + cursor)
}
