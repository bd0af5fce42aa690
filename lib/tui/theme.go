// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// Theme defines the color palette and visual properties for the
// console's terminal UI. All colors use lipgloss ANSI 256-color codes
// for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the semantic status colors that recur across the dashboard
// cards, the list rows, and the detail pane.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Complaint status colors.
	StatusNew           lipgloss.Color
	StatusProcessing    lipgloss.Color
	StatusAnswered      lipgloss.Color
	StatusAwaitingReply lipgloss.Color
	StatusRejected      lipgloss.Color

	// Warning accents: rows and detail headers for complaints the
	// classifier flagged as abusive or spam.
	WarningForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Animation accents: background tint for recently-changed rows.
	// HotAccentPut is used for rows whose edit just committed;
	// HotAccentRemove for rows that left the current projection.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Quick-filter match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Overlays: dropdowns and modals.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// StatusColor returns the color for a complaint status. Unknown
// values return FaintText.
func (theme Theme) StatusColor(status complaint.Status) lipgloss.Color {
	switch status {
	case complaint.StatusNew:
		return theme.StatusNew
	case complaint.StatusProcessing:
		return theme.StatusProcessing
	case complaint.StatusAnswered:
		return theme.StatusAnswered
	case complaint.StatusAwaitingReply:
		return theme.StatusAwaitingReply
	case complaint.StatusRejected:
		return theme.StatusRejected
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusNew:           lipgloss.Color("114"), // green
	StatusProcessing:    lipgloss.Color("220"), // yellow/amber
	StatusAnswered:      lipgloss.Color("75"),  // blue
	StatusAwaitingReply: lipgloss.Color("141"), // light purple
	StatusRejected:      lipgloss.Color("245"), // gray

	WarningForeground: lipgloss.Color("196"), // bright red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	HotAccentPut:    lipgloss.Color("58"), // dark amber background tint
	HotAccentRemove: lipgloss.Color("52"), // dark red background tint

	SearchHighlightBackground: lipgloss.Color("58"), // dark amber (matches HotAccentPut)

	TooltipForeground: lipgloss.Color("252"), // same as NormalText
	TooltipBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
