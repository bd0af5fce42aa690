// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the complaint console TUI.
type KeyMap struct {
	// Navigation (context-sensitive: list movement or detail
	// scrolling depending on current focus).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Pagination.
	PreviousPage   key.Binding
	NextPage       key.Binding
	PreviousWindow key.Binding
	NextWindow     key.Binding

	// Focus switching between the list and the detail pane.
	FocusToggle key.Binding

	// Tab switching.
	TabDashboard  key.Binding
	TabComplaints key.Binding

	// Filters.
	QuickFilter    key.Binding // Fuzzy filter over the current projection.
	SearchFilter   key.Binding // Structured search: author substring / ID prefix.
	StatusFilter   key.Binding // Status dropdown.
	CategoryFilter key.Binding // Category dropdown.
	DateFilter     key.Binding // Date range input.
	ClearFilters   key.Binding

	// Actions.
	Edit   key.Binding // Start the status/department edit flow.
	Reveal key.Binding // Acknowledge and reveal a flagged complaint.
	Reload key.Binding // Re-fetch the collection from the source.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "scroll down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	PreviousPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	PreviousWindow: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev pages"),
	),
	NextWindow: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next pages"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	TabDashboard: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "dashboard"),
	),
	TabComplaints: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "complaints"),
	),
	QuickFilter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "quick filter"),
	),
	SearchFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "search"),
	),
	StatusFilter: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status"),
	),
	CategoryFilter: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "category"),
	),
	DateFilter: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dates"),
	),
	ClearFilters: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear filters"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "reveal"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
