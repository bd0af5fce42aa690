// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package complaint

import "strings"

// Status is the lifecycle state of a complaint. The recognized values
// are the five constants below; anything else renders without special
// styling rather than failing.
//
// Lifecycle: new → processing → answered, with new → rejected as the
// alternate terminal transition. awaiting-reply is reachable from
// processing and returns to processing or proceeds to answered. The
// console treats all transitions as requests — the remote service is
// the authority on legality. The one rule enforced client-side is that
// any status other than new or rejected requires an assigned
// department (see the console's commit validation).
type Status string

const (
	// StatusNew is the initial status of every submitted complaint.
	StatusNew Status = "new"
	// StatusProcessing means a department is working the complaint.
	StatusProcessing Status = "processing"
	// StatusAnswered is the normal terminal status.
	StatusAnswered Status = "answered"
	// StatusAwaitingReply means the department is waiting on the
	// applicant for more information.
	StatusAwaitingReply Status = "awaiting-reply"
	// StatusRejected is the alternate terminal status for complaints
	// refused at intake. Rejected is a status, not a deletion: the
	// record stays in the collection.
	StatusRejected Status = "rejected"
)

// Statuses lists every recognized status in lifecycle order. Used by
// the status filter and the edit dropdown.
var Statuses = []Status{
	StatusNew,
	StatusProcessing,
	StatusAnswered,
	StatusAwaitingReply,
	StatusRejected,
}

// Known reports whether the status is one of the recognized values.
func (status Status) Known() bool {
	switch status {
	case StatusNew, StatusProcessing, StatusAnswered, StatusAwaitingReply, StatusRejected:
		return true
	}
	return false
}

// Label returns the display text for a status. Unrecognized statuses
// display as their raw value so nothing ever renders blank.
func (status Status) Label() string {
	switch status {
	case StatusNew:
		return "New"
	case StatusProcessing:
		return "Processing"
	case StatusAnswered:
		return "Answered"
	case StatusAwaitingReply:
		return "Awaiting reply"
	case StatusRejected:
		return "Rejected"
	}
	return string(status)
}

// DeptUnassigned is the sentinel department value meaning no
// department has been assigned yet.
const DeptUnassigned = "unassigned"

// Departments lists the assignable departments, in the order the
// assignment dropdown presents them. DeptUnassigned is not in this
// list; the dropdown adds it as the first entry.
var Departments = []string{
	"transportation",
	"environment",
	"welfare",
	"safety",
	"urban-planning",
	"culture-tourism",
}

// Categories lists the known category keys in display order.
var Categories = []string{
	"policy_suggestion",
	"inconvenience",
	"corruption",
	"data_request",
	"other",
}

// categoryLabels maps category keys to their display labels. The
// icons keep the categories recognizable at a glance in narrow table
// columns.
var categoryLabels = map[string]string{
	"policy_suggestion": "Policy suggestion 💡",
	"inconvenience":     "Inconvenience ⚠️",
	"corruption":        "Corruption / public interest 🚨",
	"data_request":      "Data request 📄",
	"other":             "Other inquiry ❓",
	"":                  "Uncategorized",
}

// CategoryLabel returns the display label for a category key. Unmapped
// keys fall back to the raw key, never to an empty string.
func CategoryLabel(key string) string {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return key
}

// Record is one citizen complaint with its intake metadata and
// AI-derived annotations.
type Record struct {
	// ID is the stable identifier, the join key for updates.
	ID string `json:"id"`

	Author  string `json:"author"`
	Phone   string `json:"phone"`
	Title   string `json:"title"`
	Content string `json:"content"`

	// Category is a key from the fixed category vocabulary; empty
	// string means uncategorized.
	Category string `json:"category"`

	// Date is the submission date as an ISO calendar date string.
	// Range filtering compares these lexicographically, which is
	// valid because ISO dates sort in chronological order.
	Date string `json:"date"`

	Status Status `json:"status"`

	// Dept is the assigned department, or DeptUnassigned.
	Dept string `json:"dept"`

	// Attachment is a URI or data URI, empty when absent. The remote
	// layer has been observed serializing "no attachment" as the
	// literal text "null"; HasAttachment treats that as absent.
	Attachment string `json:"attachment"`

	// AI annotations, produced by the intake analysis pipeline.
	RecommendedDept     string       `json:"recommended_dept"`
	Emotion             string       `json:"emotion"`
	EmotionReason       string       `json:"emotion_reason"`
	Keywords            LooseStrings `json:"keywords"`
	AISummary           string       `json:"ai_summary"`
	RelatedComplaintIDs LooseStrings `json:"related_complaint_ids"`

	// PrevMinwonNo counts prior submissions by the same applicant.
	PrevMinwonNo int `json:"prev_minwon_no"`

	// IsDevilComplaint flags abusive complaints. The console must not
	// reveal the author, phone, content, or attachment of a flagged
	// record on any surface until the operator acknowledges a warning
	// for that record in the current session.
	IsDevilComplaint Flag `json:"is_devil_complaint"`

	// IsSpamComplaint flags automated or duplicate spam.
	IsSpamComplaint Flag `json:"is_spam_complaint"`

	IsHidden Flag `json:"is_hidden"`
}

// HasAttachment reports whether the record carries a real attachment:
// present, non-empty, and not the "null" serialization artifact.
func (record Record) HasAttachment() bool {
	trimmed := strings.TrimSpace(record.Attachment)
	return trimmed != "" && trimmed != "null"
}
