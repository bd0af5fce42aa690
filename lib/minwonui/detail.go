// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jiminbae/minwon-console/lib/complaint"
	"github.com/jiminbae/minwon-console/lib/tui"
)

// DetailPane is the right pane showing the selected complaint in
// full: citizen info, content, classifier annotations, attachment.
// Content is pre-rendered into lines on SetRecord and scrolled with
// an offset; the pane itself holds no complaint state beyond the
// rendered lines.
type DetailPane struct {
	theme  Theme
	width  int
	height int

	recordID     string
	lines        []string
	scrollOffset int
}

// NewDetailPane creates an empty detail pane.
func NewDetailPane(theme Theme) DetailPane {
	return DetailPane{theme: theme}
}

// SetSize updates the pane dimensions. Callers re-render via
// SetRecord after a resize; the pane keeps the old lines until then.
func (pane *DetailPane) SetSize(width, height int) {
	pane.width = width
	pane.height = height
	if pane.scrollOffset > pane.maxScroll() {
		pane.scrollOffset = pane.maxScroll()
	}
}

// Clear empties the pane (no selection).
func (pane *DetailPane) Clear() {
	pane.recordID = ""
	pane.lines = nil
	pane.scrollOffset = 0
}

// RecordID returns the ID of the currently rendered complaint, or
// empty when the pane is cleared.
func (pane *DetailPane) RecordID() string {
	return pane.recordID
}

// SetRecord renders a complaint into the pane. The revealed flag
// controls whether a flagged complaint's identifying fields and
// content are shown or masked. Scroll position resets when the
// selection changes and is kept when re-rendering the same record
// (e.g., after an edit commits or a reveal).
func (pane *DetailPane) SetRecord(record complaint.Record, revealed bool) {
	sameRecord := pane.recordID == record.ID
	pane.recordID = record.ID
	pane.lines = pane.renderLines(record, revealed)
	if !sameRecord {
		pane.scrollOffset = 0
	} else if pane.scrollOffset > pane.maxScroll() {
		pane.scrollOffset = pane.maxScroll()
	}
}

// contentWidth is the usable text width inside the pane, leaving one
// column for the scrollbar and one for padding.
func (pane *DetailPane) contentWidth() int {
	width := pane.width - 2
	if width < 10 {
		width = 10
	}
	return width
}

func (pane *DetailPane) maxScroll() int {
	maxOffset := len(pane.lines) - pane.height
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// ScrollUp moves the viewport up by count lines.
func (pane *DetailPane) ScrollUp(count int) {
	pane.scrollOffset -= count
	if pane.scrollOffset < 0 {
		pane.scrollOffset = 0
	}
}

// ScrollDown moves the viewport down by count lines.
func (pane *DetailPane) ScrollDown(count int) {
	pane.scrollOffset += count
	if pane.scrollOffset > pane.maxScroll() {
		pane.scrollOffset = pane.maxScroll()
	}
}

// ScrollTop jumps to the beginning.
func (pane *DetailPane) ScrollTop() {
	pane.scrollOffset = 0
}

// ScrollBottom jumps to the end.
func (pane *DetailPane) ScrollBottom() {
	pane.scrollOffset = pane.maxScroll()
}

// View renders the visible window of the pane with a scrollbar.
func (pane *DetailPane) View(focused bool) string {
	if pane.height <= 0 {
		return ""
	}

	if len(pane.lines) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(pane.theme.FaintText).
			Width(pane.width).
			Height(pane.height)
		return emptyStyle.Render(" Select a complaint to view details.")
	}

	visible := make([]string, 0, pane.height)
	for index := pane.scrollOffset; index < pane.scrollOffset+pane.height && index < len(pane.lines); index++ {
		visible = append(visible, pane.lines[index])
	}
	for len(visible) < pane.height {
		visible = append(visible, "")
	}

	contentStyle := lipgloss.NewStyle().
		Width(pane.contentWidth() + 1).
		MaxWidth(pane.contentWidth() + 1).
		Height(pane.height)

	scrollbar := tui.RenderScrollbar(
		pane.theme, pane.height,
		len(pane.lines), pane.height, pane.scrollOffset,
		focused,
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		contentStyle.Render(strings.Join(visible, "\n")),
		scrollbar,
	)
}

// renderLines produces the full detail content as wrapped lines.
func (pane *DetailPane) renderLines(record complaint.Record, revealed bool) []string {
	width := pane.contentWidth()
	row := Present(record, revealed)
	masked := row.Masked

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(pane.theme.HeaderForeground)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(pane.theme.FaintText)
	textStyle := lipgloss.NewStyle().Foreground(pane.theme.NormalText)
	faintStyle := lipgloss.NewStyle().Foreground(pane.theme.FaintText)
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(pane.theme.StatusColor(record.Status))
	warningStyle := lipgloss.NewStyle().Bold(true).Foreground(pane.theme.WarningForeground)

	var lines []string
	addWrapped := func(text string, style lipgloss.Style) {
		for _, line := range strings.Split(ansi.Wrap(text, width, ""), "\n") {
			lines = append(lines, style.Render(line))
		}
	}

	// Header: complaint number, title, warning banner.
	lines = append(lines, faintStyle.Render("Complaint "+record.ID))
	addWrapped(row.Title, headerStyle)
	if warning := WarningGlyph(record); warning != "" {
		banner := warning + " flagged by the classifier"
		if masked {
			banner += " — press v to reveal"
		}
		lines = append(lines, warningStyle.Render(banner))
	}
	lines = append(lines, "")

	// Meta line: status, category, department, date.
	dept := record.Dept
	if dept == "" || dept == complaint.DeptUnassigned {
		dept = "unassigned"
	}
	lines = append(lines,
		statusStyle.Render(row.StatusLabel)+
			faintStyle.Render("  "+row.CategoryLabel+"  "+dept+"  "+record.Date))
	lines = append(lines, "")

	// Citizen section.
	lines = append(lines, sectionStyle.Render("Citizen"))
	phone := record.Phone
	if masked {
		phone = maskedField
	} else if strings.TrimSpace(phone) == "" {
		phone = "—"
	}
	lines = append(lines, textStyle.Render("  "+row.Author+"  "+phone))
	lines = append(lines, "")

	// Content, blurred while masked.
	lines = append(lines, sectionStyle.Render("Content"))
	content := record.Content
	if masked {
		content = blurText(content)
	}
	if strings.TrimSpace(content) == "" {
		lines = append(lines, faintStyle.Render("  (empty)"))
	} else {
		addWrapped(content, textStyle)
	}
	lines = append(lines, "")

	// Attachment. While masked, nothing derived from the attachment
	// reference may appear: a data URI carries the content itself.
	if record.HasAttachment() {
		lines = append(lines, sectionStyle.Render("Attachment"))
		if masked {
			lines = append(lines, faintStyle.Render("  📎 "+maskedField))
		} else {
			lines = append(lines, textStyle.Render("  📎 "+AttachmentFilename(record.Attachment)))
		}
		lines = append(lines, "")
	}

	// Classifier annotations. Only sections with data are shown.
	annotations := pane.renderAnnotations(record, width, textStyle, faintStyle)
	if len(annotations) > 0 {
		lines = append(lines, sectionStyle.Render("Analysis"))
		lines = append(lines, annotations...)
	}

	return lines
}

// renderAnnotations renders the classifier's enrichment fields.
func (pane *DetailPane) renderAnnotations(record complaint.Record, width int, textStyle, faintStyle lipgloss.Style) []string {
	var lines []string

	if strings.TrimSpace(record.AISummary) != "" {
		for _, line := range strings.Split(ansi.Wrap(record.AISummary, width-2, ""), "\n") {
			lines = append(lines, textStyle.Render("  "+line))
		}
	}
	if record.Emotion != "" {
		emotion := "  emotion: " + record.Emotion
		if record.EmotionReason != "" {
			emotion += " (" + record.EmotionReason + ")"
		}
		lines = append(lines, faintStyle.Render(ansi.Truncate(emotion, width, "…")))
	}
	if len(record.Keywords) > 0 {
		lines = append(lines, faintStyle.Render("  keywords: "+strings.Join(record.Keywords, ", ")))
	}
	if record.RecommendedDept != "" {
		lines = append(lines, faintStyle.Render("  suggested dept: "+record.RecommendedDept))
	}
	if len(record.RelatedComplaintIDs) > 0 {
		lines = append(lines, faintStyle.Render("  related: "+strings.Join(record.RelatedComplaintIDs, ", ")))
	}
	if record.PrevMinwonNo > 0 {
		lines = append(lines, faintStyle.Render(fmt.Sprintf("  prior complaints from this citizen: %d", record.PrevMinwonNo)))
	}

	return lines
}

// AttachmentFilename derives a display filename from an attachment
// reference. A data URI gets a synthetic name from its mime type
// ("data:image/png;base64,..." becomes "image.png"); a URL or path
// yields its final segment with any query string stripped. The
// payload of a data URI never leaks into the result.
func AttachmentFilename(attachment string) string {
	trimmed := strings.TrimSpace(attachment)

	if mime, ok := strings.CutPrefix(trimmed, "data:"); ok {
		if index := strings.IndexAny(mime, ";,"); index >= 0 {
			mime = mime[:index]
		}
		if kind, subtype, found := strings.Cut(mime, "/"); found && kind != "" && subtype != "" {
			return kind + "." + subtype
		}
		return "attachment"
	}

	if index := strings.LastIndex(trimmed, "/"); index >= 0 {
		trimmed = trimmed[index+1:]
	}
	if index := strings.Index(trimmed, "?"); index >= 0 {
		trimmed = trimmed[:index]
	}
	if trimmed == "" {
		return "attachment"
	}
	return trimmed
}

// blurText replaces every non-space character with a block so the
// shape of the text survives but nothing is readable. Mirrors the
// blur treatment for flagged complaints awaiting acknowledgement.
func blurText(text string) string {
	var builder strings.Builder
	for _, character := range text {
		switch {
		case character == '\n':
			builder.WriteRune('\n')
		case character == ' ' || character == '\t':
			builder.WriteRune(' ')
		default:
			builder.WriteRune('▒')
		}
	}
	return builder.String()
}
