// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import "github.com/jiminbae/minwon-console/lib/tui"

// Theme re-exports the shared TUI theme type so callers of this
// package don't need to import both.
type Theme = tui.Theme

// DefaultTheme re-exports the shared default color scheme.
var DefaultTheme = tui.DefaultTheme

// Shared overlay components used by the model.
type (
	DropdownOption  = tui.DropdownOption
	DropdownOverlay = tui.DropdownOverlay
	TextModal       = tui.TextModal
	HeatTracker     = tui.HeatTracker
)

var (
	NewTextModal   = tui.NewTextModal
	NewHeatTracker = tui.NewHeatTracker
)
