// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the model for display in
// the status bar.
type logRecordMsg struct {
	// Summary is the one-line rendering of the record.
	Summary string

	// Level styles the notice (info vs warn vs error).
	Level slog.Level
}

// logRecordFadeMsg clears the log notice from the status bar and
// restores the help text.
type logRecordFadeMsg struct{}

// logRecordFadeDelay is how long a log record stays in the status
// bar.
const logRecordFadeDelay = 5 * time.Second

// TUILogHandler routes slog records into the running bubbletea
// program, where they surface in the status bar instead of being
// written to stderr (which would corrupt the alt-screen display).
//
// The program is attached after construction with [SetProgram]; the
// pointer is atomic and shared by every handler derived through
// WithAttrs/WithGroup, so one SetProgram call covers the whole
// handler tree. Records that arrive before the program is attached
// are dropped.
type TUILogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewTUILogHandler creates a handler for records at or above level.
func NewTUILogHandler(level slog.Level) *TUILogHandler {
	return &TUILogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram attaches the running program. Safe from any goroutine;
// applies to every handler derived from this one.
func (handler *TUILogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled implements slog.Handler.
func (handler *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle renders the record as "message (key=value, ...)" and sends
// it into the program. Attribute keys carry their group prefixes, so
// a handler derived via WithGroup("fetch") reports "fetch.elapsed".
func (handler *TUILogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	prefix := ""
	if len(handler.groups) > 0 {
		prefix = strings.Join(handler.groups, ".") + "."
	}

	var summary strings.Builder
	summary.WriteString(record.Message)

	wrote := 0
	writeAttr := func(attr slog.Attr) {
		if wrote == 0 {
			summary.WriteString(" (")
		} else {
			summary.WriteString(", ")
		}
		summary.WriteString(prefix)
		summary.WriteString(attr.Key)
		summary.WriteString("=")
		summary.WriteString(attr.Value.String())
		wrote++
	}
	for _, attr := range handler.attrs {
		writeAttr(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(attr)
		return true
	})
	if wrote > 0 {
		summary.WriteString(")")
	}

	program.Send(logRecordMsg{
		Summary: summary.String(),
		Level:   record.Level,
	})
	return nil
}

// WithAttrs implements slog.Handler. The derived handler shares the
// program pointer.
func (handler *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := *handler
	derived.attrs = append(slices.Clone(handler.attrs), attrs...)
	return &derived
}

// WithGroup implements slog.Handler. The derived handler shares the
// program pointer.
func (handler *TUILogHandler) WithGroup(name string) slog.Handler {
	derived := *handler
	derived.groups = append(slices.Clone(handler.groups), name)
	return &derived
}
