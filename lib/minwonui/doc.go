// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package minwonui implements the terminal user interface for browsing
// and working citizen complaints. Built on bubbletea (Elm
// architecture), it provides a dashboard tab with aggregate counts and
// a complaints tab with a paginated list, structured filters, and a
// detail pane, connected to the complaint service via the [Source]
// interface.
//
// Generic UI components (theme, overlays, dropdowns, modals,
// scrollbars) live in [tui]. Complaint-specific logic (data sources,
// key bindings, row presentation, the edit flow) stays in this
// package.
//
// The Source abstraction decouples the TUI from the data backend:
// [FileSource] loads a JSON snapshot from disk for read-only browsing,
// while the HTTP client talks to the live complaint service. When the
// source also implements [Committer], the edit flow (status dropdown,
// department dropdown, optional reply) is enabled; file-backed
// sources stay read-only and the edit controls are hidden.
//
// Data flow:
//
//	[complaint service / JSON file]
//	        | (Source interface)
//	    [Store] -- arrival-order collection, single writer
//	        |
//	    [Model] <- bubbletea event loop
//	        |  filters -> projection -> page -> rows
//	  [terminal output]
//
// All state mutation happens on the bubbletea update loop. Remote
// calls run as commands on background goroutines and report back via
// messages, so the store needs no locking.
package minwonui
