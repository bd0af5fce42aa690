// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jiminbae/minwon-console/lib/paginate"
)

// renderStrip renders the pagination strip below the list:
// window-jump arrows, page-step arrows, and the numbered buttons of
// the current window with the active page highlighted.
//
//	« ‹ 11 [12] 13 14 15 16 17 18 19 20 › »
func renderStrip(theme Theme, entries []paginate.Entry, width int) string {
	if len(entries) == 0 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
	pageStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	arrowStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	var parts []string
	for _, entry := range entries {
		switch entry.Kind {
		case paginate.KindPreviousWindow:
			parts = append(parts, arrowStyle.Render("«"))
		case paginate.KindPreviousPage:
			parts = append(parts, arrowStyle.Render("‹"))
		case paginate.KindNextPage:
			parts = append(parts, arrowStyle.Render("›"))
		case paginate.KindNextWindow:
			parts = append(parts, arrowStyle.Render("»"))
		case paginate.KindPage:
			label := fmt.Sprintf("%d", entry.Target)
			if entry.Active {
				parts = append(parts, activeStyle.Render(" "+label+" "))
			} else {
				parts = append(parts, pageStyle.Render(label))
			}
		}
	}

	strip := " " + strings.Join(parts, " ")
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(strip)
}
