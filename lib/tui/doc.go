// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the complaint console. Built on bubbletea (Elm architecture), these
// components handle common patterns like dropdown overlays, text
// editing modals, change animation, scrollbars, and ANSI-aware text
// manipulation.
//
// The console's domain views (dashboard, complaint list, detail pane)
// import this package for consistent look and behavior: same theme,
// same keyboard conventions, same overlay mechanics. The views own
// their data sources, layout, and domain-specific rendering.
package tui
