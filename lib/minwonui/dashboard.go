// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jiminbae/minwon-console/lib/complaint"
	"github.com/jiminbae/minwon-console/lib/complaintstore"
)

// dashboardCardStatuses are the statuses with a dashboard card, in
// display order. Rejected complaints are tallied by the store but
// deliberately excluded here: the cards answer "what needs work",
// and rejected complaints need none.
var dashboardCardStatuses = []complaint.Status{
	complaint.StatusNew,
	complaint.StatusProcessing,
	complaint.StatusAnswered,
	complaint.StatusAwaitingReply,
}

// renderDashboard renders the dashboard tab: one stat card per
// workable status, then a table of the most recent arrivals. The
// revealed map carries the operator's per-session acknowledgements so
// flagged rows stay masked here too.
func renderDashboard(theme Theme, width, height int, stats complaintstore.Stats, recent []complaint.Record, revealed map[string]bool) string {
	var sections []string

	sections = append(sections, renderStatCards(theme, width, stats))
	sections = append(sections, "")

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground)
	sections = append(sections, headerStyle.Render(" Recent complaints"))

	renderer := NewListRenderer(theme, width)
	for _, record := range recent {
		row := Present(record, revealed[record.ID])
		sections = append(sections, renderer.RenderRow(row, false, nil))
	}
	if len(recent) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
		sections = append(sections, emptyStyle.Render(" No complaints loaded."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(content)
}

// renderStatCards renders the per-status count cards side by side.
func renderStatCards(theme Theme, width int, stats complaintstore.Stats) string {
	cardWidth := width/len(dashboardCardStatuses) - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	var cards []string
	for _, status := range dashboardCardStatuses {
		count := stats.ByStatus[status]

		countStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.StatusColor(status))
		labelStyle := lipgloss.NewStyle().
			Foreground(theme.FaintText)

		body := countStyle.Render(fmt.Sprintf("%d", count)) + "\n" +
			labelStyle.Render(status.Label())

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Width(cardWidth).
			Align(lipgloss.Center).
			Render(body)
		cards = append(cards, card)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
