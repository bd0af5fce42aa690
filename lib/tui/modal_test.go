// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func typeText(modal *TextModal, text string) {
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			modal.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
		}
		modal.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	// Drop the trailing newline the loop adds.
	modal.Update(tea.KeyMsg{Type: tea.KeyBackspace})
}

func TestTextModalValueRoundTrip(t *testing.T) {
	modal := NewTextModal("Reply", DefaultTheme)
	typeText(&modal, "first line\nsecond line")
	if got := modal.Value(); got != "first line\nsecond line" {
		t.Errorf("Value() = %q", got)
	}
}

func TestTextModalEditing(t *testing.T) {
	modal := NewTextModal("Reply", DefaultTheme)
	typeText(&modal, "ab\ncd")

	// Backspace at the start of a line joins it with the previous one.
	modal.Update(tea.KeyMsg{Type: tea.KeyHome})
	modal.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := modal.Value(); got != "abcd" {
		t.Fatalf("after join: %q, want \"abcd\"", got)
	}

	// Cursor sits between "ab" and "cd"; insert in the middle.
	modal.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := modal.Value(); got != "abXcd" {
		t.Errorf("after insert: %q, want \"abXcd\"", got)
	}

	// Delete removes the rune under the cursor.
	modal.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := modal.Value(); got != "abXd" {
		t.Errorf("after delete: %q, want \"abXd\"", got)
	}
}

func TestTextModalVerticalMovementClampsColumn(t *testing.T) {
	modal := NewTextModal("Reply", DefaultTheme)
	typeText(&modal, "long first line\nhi")

	// Cursor is at the end of "hi". Up lands within the first line at
	// the same column; End then Down must clamp to the short line's
	// end rather than running past it.
	modal.Update(tea.KeyMsg{Type: tea.KeyUp})
	modal.Update(tea.KeyMsg{Type: tea.KeyEnd})
	modal.Update(tea.KeyMsg{Type: tea.KeyDown})
	modal.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	if got := modal.Value(); got != "long first line\nhi!" {
		t.Errorf("Value() = %q", got)
	}
}

func TestTextModalRenderShowsTitleAndCount(t *testing.T) {
	modal := NewTextModal("Reply to complaint 105", DefaultTheme)
	typeText(&modal, "ack")

	lines, anchorX, anchorY := modal.Render(120, 40)
	if len(lines) == 0 {
		t.Fatal("no overlay lines")
	}
	if anchorX < 0 || anchorY < 0 {
		t.Errorf("anchor = (%d, %d), want non-negative", anchorX, anchorY)
	}

	plain := ansi.Strip(strings.Join(lines, "\n"))
	if !strings.Contains(plain, "Reply to complaint 105") {
		t.Error("title missing from overlay")
	}
	if !strings.Contains(plain, "3 chars") {
		t.Error("character count missing from footer")
	}
}
