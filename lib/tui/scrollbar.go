// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Scrollbar glyphs. The thumb is heavier than the track so the two
// read apart even on low-contrast palettes.
const (
	scrollbarThumbGlyph = "┃"
	scrollbarTrackGlyph = "│"
)

// RenderScrollbar produces the one-column scrollbar beside the detail
// pane. The thumb marks which slice of the content is on screen;
// when everything fits, the thumb fills the column so the pane edge
// stays visually stable. A focused pane gets an accent-colored thumb.
func RenderScrollbar(theme Theme, height, totalLines, visibleLines, scrollOffset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.StatusProcessing
	}
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)

	thumb := thumbStyle.Render(scrollbarThumbGlyph)
	track := trackStyle.Render(scrollbarTrackGlyph)

	if totalLines <= visibleLines || totalLines <= 0 {
		full := make([]string, height)
		for row := range full {
			full[row] = thumb
		}
		return strings.Join(full, "\n")
	}

	// Thumb length is proportional to the visible fraction, never
	// shorter than one row.
	thumbRows := height * visibleLines / totalLines
	if thumbRows < 1 {
		thumbRows = 1
	}

	// Thumb start is proportional to the scroll position within the
	// scrollable range, clamped so it never runs past the column.
	thumbStart := 0
	if hidden := totalLines - visibleLines; hidden > 0 {
		thumbStart = scrollOffset * (height - thumbRows) / hidden
	}
	if thumbStart+thumbRows > height {
		thumbStart = height - thumbRows
	}

	column := make([]string, height)
	for row := range column {
		if row >= thumbStart && row < thumbStart+thumbRows {
			column[row] = thumb
		} else {
			column[row] = track
		}
	}
	return strings.Join(column, "\n")
}
