// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TextModal is a centered overlay for composing a short free-text
// reply. The buffer is a flat rune slice with a single cursor index;
// line structure exists only at render time, derived from the newlines
// in the buffer. That keeps every edit operation a plain slice splice.
type TextModal struct {
	// Title is shown in the modal header (e.g., "Reply to complaint
	// 105").
	Title string

	text   []rune
	cursor int
	theme  Theme
}

// NewTextModal creates an empty, focused composer with the given
// title.
func NewTextModal(title string, theme Theme) TextModal {
	return TextModal{Title: title, theme: theme}
}

// Value returns the buffer contents.
func (modal TextModal) Value() string {
	return string(modal.text)
}

// lineStart returns the index of the first rune of the line containing
// position.
func (modal TextModal) lineStart(position int) int {
	for position > 0 && modal.text[position-1] != '\n' {
		position--
	}
	return position
}

// lineEnd returns the index just past the last rune of the line
// containing position (the index of its newline, or len(text)).
func (modal TextModal) lineEnd(position int) int {
	for position < len(modal.text) && modal.text[position] != '\n' {
		position++
	}
	return position
}

// Update processes one key message against the buffer.
func (modal *TextModal) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		modal.insert(message.Runes)

	case tea.KeyEnter:
		modal.insert([]rune{'\n'})

	case tea.KeyBackspace:
		if modal.cursor > 0 {
			modal.text = append(modal.text[:modal.cursor-1], modal.text[modal.cursor:]...)
			modal.cursor--
		}

	case tea.KeyDelete:
		if modal.cursor < len(modal.text) {
			modal.text = append(modal.text[:modal.cursor], modal.text[modal.cursor+1:]...)
		}

	case tea.KeyLeft:
		if modal.cursor > 0 {
			modal.cursor--
		}

	case tea.KeyRight:
		if modal.cursor < len(modal.text) {
			modal.cursor++
		}

	case tea.KeyUp:
		start := modal.lineStart(modal.cursor)
		if start == 0 {
			return
		}
		column := modal.cursor - start
		previousStart := modal.lineStart(start - 1)
		modal.cursor = min(previousStart+column, start-1)

	case tea.KeyDown:
		end := modal.lineEnd(modal.cursor)
		if end == len(modal.text) {
			return
		}
		column := modal.cursor - modal.lineStart(modal.cursor)
		nextStart := end + 1
		modal.cursor = min(nextStart+column, modal.lineEnd(nextStart))

	case tea.KeyHome, tea.KeyCtrlA:
		modal.cursor = modal.lineStart(modal.cursor)

	case tea.KeyEnd, tea.KeyCtrlE:
		modal.cursor = modal.lineEnd(modal.cursor)
	}
}

// insert splices runes into the buffer at the cursor.
func (modal *TextModal) insert(runes []rune) {
	if len(runes) == 0 {
		return
	}
	text := make([]rune, 0, len(modal.text)+len(runes))
	text = append(text, modal.text[:modal.cursor]...)
	text = append(text, runes...)
	text = append(text, modal.text[modal.cursor:]...)
	modal.text = text
	modal.cursor += len(runes)
}

// The composer is a fixed-height band rather than a full-screen
// editor: replies are a few sentences, not documents. Chrome is 2
// columns border + 2 padding horizontally, 2 lines border + title +
// footer vertically.
const (
	composerBodyHeight  = 6
	composerChromeWidth = 4
	composerMinWidth    = 40
	composerMargin      = 6
)

// Render produces the overlay lines and the top-left anchor where they
// should be spliced onto the screen.
func (modal TextModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := screenWidth - composerMargin*2 - composerChromeWidth
	if innerWidth < composerMinWidth {
		innerWidth = min(composerMinWidth, screenWidth-composerChromeWidth)
	}
	if innerWidth < 1 {
		innerWidth = 1
	}

	background := lipgloss.NewStyle().Background(modal.theme.TooltipBackground)
	pad := func(rendered string) string {
		if gap := innerWidth - ansi.StringWidth(rendered); gap > 0 {
			rendered += background.Render(strings.Repeat(" ", gap))
		}
		return rendered
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.TooltipBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.TooltipBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.NormalText).
		Background(modal.theme.TooltipBackground)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	// Derive lines from the buffer, tracking which line holds the
	// cursor and at which column.
	lines := strings.Split(string(modal.text), "\n")
	cursorLine := strings.Count(string(modal.text[:modal.cursor]), "\n")
	cursorColumn := modal.cursor - modal.lineStart(modal.cursor)

	// Keep the cursor line in the visible band.
	firstVisible := 0
	if cursorLine >= composerBodyHeight {
		firstVisible = cursorLine - composerBodyHeight + 1
	}

	body := make([]string, 0, composerBodyHeight)
	for offset := 0; offset < composerBodyHeight; offset++ {
		index := firstVisible + offset
		if index >= len(lines) {
			body = append(body, pad(""))
			continue
		}
		line := []rune(lines[index])
		if index != cursorLine {
			body = append(body, pad(textStyle.Render(string(line))))
			continue
		}
		if cursorColumn >= len(line) {
			body = append(body, pad(textStyle.Render(string(line))+cursorStyle.Render(" ")))
			continue
		}
		body = append(body, pad(textStyle.Render(string(line[:cursorColumn]))+
			cursorStyle.Render(string(line[cursorColumn:cursorColumn+1]))+
			textStyle.Render(string(line[cursorColumn+1:]))))
	}

	footer := fmt.Sprintf("Ctrl+D submit  Esc cancel  %d chars", len(modal.text))

	content := []string{pad(titleStyle.Render(modal.Title))}
	content = append(content, body...)
	content = append(content, pad(footerStyle.Render(footer)))

	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.TooltipBackground).
		Render(strings.Join(content, "\n"))

	result := strings.Split(framed, "\n")
	anchorX := (screenWidth - ansi.StringWidth(result[0])) / 2
	anchorY := (screenHeight - len(result)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return result, anchorX, anchorY
}
