// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// editStage tracks progress through the edit flow: the operator picks
// a status, then a department, then optionally types a reply.
type editStage int

const (
	editStageStatus editStage = iota
	editStageDept
	editStageReply
)

// editState is the in-flight edit. It accumulates the operator's
// choices; nothing touches the store until the service confirms the
// commit.
type editState struct {
	recordID string
	stage    editStage
	status   complaint.Status
	dept     string
}

// ValidateEdit enforces the routing rule for complaint edits: once a
// complaint moves past new (and isn't rejected), it must be assigned
// to a department. New and rejected complaints may stay unassigned.
func ValidateEdit(status complaint.Status, dept string) error {
	if status == complaint.StatusNew || status == complaint.StatusRejected {
		return nil
	}
	if dept == "" || dept == complaint.DeptUnassigned {
		return fmt.Errorf("status %q requires an assigned department", status)
	}
	return nil
}

// commitResultMsg reports the outcome of an asynchronous commit. On
// success the model applies the edit to the store and refreshes; on
// failure the store is untouched and the error reaches the status
// bar.
type commitResultMsg struct {
	recordID string
	status   complaint.Status
	dept     string
	err      error
}

// commitEditCmd sends the edit to the service on a background
// goroutine. The timeout bounds the request independently of the
// program's lifetime.
func commitEditCmd(committer Committer, timeout time.Duration, recordID string, status complaint.Status, dept, reply string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := committer.CommitEdit(ctx, recordID, status, dept, reply)
		return commitResultMsg{
			recordID: recordID,
			status:   status,
			dept:     dept,
			err:      err,
		}
	}
}

// recordsLoadedMsg delivers a fetched collection (initial load or
// reload). On error the existing store contents remain displayed.
type recordsLoadedMsg struct {
	records []complaint.Record
	err     error
}

// fetchRecordsCmd fetches the full collection on a background
// goroutine.
func fetchRecordsCmd(source Source, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		records, err := source.FetchAll(ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

// statusDropdownOptions are the selectable statuses for the edit
// flow, in workflow order.
func statusDropdownOptions() []DropdownOption {
	options := make([]DropdownOption, 0, len(complaint.Statuses))
	for _, status := range complaint.Statuses {
		options = append(options, DropdownOption{
			Label: status.Label(),
			Value: string(status),
		})
	}
	return options
}

// deptDropdownOptions are the selectable departments, with the
// unassigned sentinel first.
func deptDropdownOptions() []DropdownOption {
	options := []DropdownOption{{Label: "unassigned", Value: complaint.DeptUnassigned}}
	for _, dept := range complaint.Departments {
		options = append(options, DropdownOption{Label: dept, Value: dept})
	}
	return options
}
