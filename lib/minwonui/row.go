// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// Placeholder strings for records with missing display fields. The
// service occasionally delivers anonymous or truncated submissions;
// rows never render empty cells.
const (
	placeholderAuthor = "no name"
	placeholderTitle  = "no title"

	// maskedField replaces personally identifying fields of a
	// flagged complaint until the operator acknowledges the warning.
	maskedField = "███"
)

// WarningGlyph returns the row marker for a record's abuse flags:
// both flags, devil only, spam only, or none. Every record maps to
// exactly one of the four.
func WarningGlyph(record complaint.Record) string {
	devil := record.IsDevilComplaint.Bool()
	spam := record.IsSpamComplaint.Bool()
	switch {
	case devil && spam:
		return "💀🚫"
	case devil:
		return "💀"
	case spam:
		return "🚫"
	default:
		return ""
	}
}

// RowView is the display form of one complaint row. Pure data: the
// renderer decides colors and layout, Present decides content.
type RowView struct {
	ID            string
	Author        string
	Title         string
	Date          string
	Status        complaint.Status
	StatusLabel   string
	CategoryLabel string

	// DeptLabel is two-valued in style: the department name when
	// assigned, the dimmed unassigned sentinel otherwise.
	DeptLabel    string
	DeptAssigned bool

	Warning       string
	HasAttachment bool
	Masked        bool
}

// Present converts a record to its display form. The revealed flag
// reports whether the operator has acknowledged this record's abuse
// warning; until then, personally identifying fields of a flagged
// complaint are masked everywhere, including the list row.
//
// Present is pure: same record and flag, same RowView.
func Present(record complaint.Record, revealed bool) RowView {
	author := record.Author
	if strings.TrimSpace(author) == "" {
		author = placeholderAuthor
	}
	title := record.Title
	if strings.TrimSpace(title) == "" {
		title = placeholderTitle
	}

	masked := record.IsDevilComplaint.Bool() && !revealed
	if masked {
		author = maskedField
	}

	deptLabel := record.Dept
	deptAssigned := deptLabel != "" && deptLabel != complaint.DeptUnassigned
	if !deptAssigned {
		deptLabel = complaint.DeptUnassigned
	}

	return RowView{
		ID:            record.ID,
		Author:        author,
		Title:         title,
		Date:          record.Date,
		Status:        record.Status,
		StatusLabel:   record.Status.Label(),
		CategoryLabel: complaint.CategoryLabel(record.Category),
		DeptLabel:     deptLabel,
		DeptAssigned:  deptAssigned,
		Warning:       WarningGlyph(record),
		HasAttachment: record.HasAttachment(),
		Masked:        masked,
	}
}

// Column widths for the list table. The title column fills remaining
// space; all others are fixed.
const (
	columnWidthID     = 6  // complaint number (e.g. "107  ")
	columnWidthAuthor = 10 // citizen name, truncated
	columnWidthDate   = 11 // "2025-07-14 "
	columnWidthStatus = 12 // status label
	columnWidthDept   = 14 // assigned department

	// maxLeftWidth is the worst-case width of the left portion
	// before the title: warning glyph slot (4) + ID column.
	maxLeftWidth = 4 + columnWidthID
)

// ListRenderer handles the table-style rendering of complaint rows
// within a given width.
type ListRenderer struct {
	theme Theme
	width int
}

// NewListRenderer creates a ListRenderer for the given width.
func NewListRenderer(theme Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

// RenderRow renders a single complaint row. The selected flag
// controls highlight styling. matchPositions contains rune indices in
// the title that matched the current quick filter query; when
// non-nil, those characters get the search highlight background.
//
// Row layout: warning + ID + author + title [📎] + date + status +
// dept. The dept column is dropped first when the pane is narrow.
//
//	💀 107   ███        Road noise at night…      2025-07-14  processing   environment
//	   106   이영희     Broken streetlight 📎     2025-07-13  new          unassigned
func (renderer ListRenderer) RenderRow(row RowView, selected bool, matchPositions []int) string {
	fixed := maxLeftWidth + columnWidthAuthor + columnWidthDate + columnWidthStatus + 3
	showDept := renderer.width-fixed-columnWidthDept-1 >= 20
	titleWidth := renderer.width - fixed
	if showDept {
		titleWidth -= columnWidthDept + 1
	}
	if titleWidth < 10 {
		titleWidth = 10
	}

	title := row.Title
	if row.HasAttachment {
		title += " 📎"
	}
	if ansi.StringWidth(title) > titleWidth {
		title = ansi.Truncate(title, titleWidth-1, "…")
	}

	warning := row.Warning
	warningPad := 4 - ansi.StringWidth(warning)
	if warningPad > 0 {
		warning += strings.Repeat(" ", warningPad)
	}

	id := padColumn(row.ID, columnWidthID)
	author := padColumn(row.Author, columnWidthAuthor)
	date := padColumn(row.Date, columnWidthDate)

	titlePadded := title + strings.Repeat(" ", max(0, titleWidth-ansi.StringWidth(title)))

	status := row.StatusLabel
	dept := ""
	if showDept {
		// Status needs padding only when another column follows it.
		status = padColumn(status, columnWidthStatus)
		dept = padColumn(row.DeptLabel, columnWidthDept)
	}

	if selected {
		selectedStyle := lipgloss.NewStyle().
			Background(renderer.theme.SelectedBackground).
			Foreground(renderer.theme.SelectedForeground)
		line := warning + id + author + titlePadded + " " + date + " " + status
		if showDept {
			line += dept
		}
		return selectedStyle.Width(renderer.width).MaxWidth(renderer.width).Render(line)
	}

	warningStyle := lipgloss.NewStyle().Foreground(renderer.theme.WarningForeground)
	idStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	textStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	dateStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	statusStyle := lipgloss.NewStyle().Foreground(renderer.theme.StatusColor(row.Status))

	authorStyle := textStyle
	if row.Masked {
		authorStyle = lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	}

	renderedTitle := textStyle.Render(titlePadded)
	if len(matchPositions) > 0 {
		highlightStyle := textStyle.Background(renderer.theme.SearchHighlightBackground)
		renderedTitle = highlightTitle(titlePadded, matchPositions, textStyle, highlightStyle)
	}

	line := warningStyle.Render(warning) +
		idStyle.Render(id) +
		authorStyle.Render(author) +
		renderedTitle + " " +
		dateStyle.Render(date) + " " +
		statusStyle.Render(status)
	if showDept {
		deptStyle := textStyle
		if !row.DeptAssigned {
			deptStyle = dateStyle
		}
		line += deptStyle.Render(dept)
	}
	return line
}

// highlightTitle rebuilds the title with the matched rune positions
// rendered in the highlight style. Positions index into the title's
// runes, not bytes.
func highlightTitle(title string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	var builder strings.Builder
	for index, character := range []rune(title) {
		if positionSet[index] {
			builder.WriteString(highlightStyle.Render(string(character)))
		} else {
			builder.WriteString(baseStyle.Render(string(character)))
		}
	}
	return builder.String()
}

// padColumn truncates or pads text to an exact display width plus a
// trailing space.
func padColumn(text string, width int) string {
	if ansi.StringWidth(text) > width {
		text = ansi.Truncate(text, width-1, "…")
	}
	return text + strings.Repeat(" ", max(0, width-ansi.StringWidth(text))) + " "
}
