// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"strings"
	"testing"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

func TestWarningGlyphCoversEveryFlagCombination(t *testing.T) {
	tests := []struct {
		name  string
		devil bool
		spam  bool
		want  string
	}{
		{"neither", false, false, ""},
		{"devil only", true, false, "💀"},
		{"spam only", false, true, "🚫"},
		{"both", true, true, "💀🚫"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			record := complaint.Record{
				IsDevilComplaint: complaint.Flag(test.devil),
				IsSpamComplaint:  complaint.Flag(test.spam),
			}
			if got := WarningGlyph(record); got != test.want {
				t.Errorf("WarningGlyph(devil=%v, spam=%v) = %q, want %q",
					test.devil, test.spam, got, test.want)
			}
		})
	}
}

func TestPresentMasksFlaggedAuthorUntilRevealed(t *testing.T) {
	record := complaint.Record{
		ID:               "204",
		Author:           "김철수",
		Title:            "소음 민원",
		IsDevilComplaint: true,
	}

	hidden := Present(record, false)
	if hidden.Author != maskedField {
		t.Errorf("masked author = %q, want %q", hidden.Author, maskedField)
	}
	if !hidden.Masked {
		t.Error("expected Masked to be true before reveal")
	}
	if hidden.Title != "소음 민원" {
		t.Errorf("title should stay visible on flagged rows, got %q", hidden.Title)
	}

	revealed := Present(record, true)
	if revealed.Author != "김철수" {
		t.Errorf("revealed author = %q, want original name", revealed.Author)
	}
	if revealed.Masked {
		t.Error("expected Masked to be false after reveal")
	}
}

func TestPresentSpamOnlyIsNotMasked(t *testing.T) {
	record := complaint.Record{
		ID:              "205",
		Author:          "홍길동",
		IsSpamComplaint: true,
	}
	row := Present(record, false)
	if row.Masked {
		t.Error("spam-only records should not be masked")
	}
	if row.Author != "홍길동" {
		t.Errorf("author = %q, want original name", row.Author)
	}
	if row.Warning != "🚫" {
		t.Errorf("warning = %q, want spam glyph", row.Warning)
	}
}

func TestPresentSubstitutesPlaceholders(t *testing.T) {
	row := Present(complaint.Record{ID: "301", Author: "  ", Title: ""}, false)
	if row.Author != placeholderAuthor {
		t.Errorf("author = %q, want %q", row.Author, placeholderAuthor)
	}
	if row.Title != placeholderTitle {
		t.Errorf("title = %q, want %q", row.Title, placeholderTitle)
	}
}

func TestPresentDeptBadgeIsTwoValued(t *testing.T) {
	assigned := Present(complaint.Record{ID: "1", Dept: "environment"}, false)
	if !assigned.DeptAssigned || assigned.DeptLabel != "environment" {
		t.Errorf("assigned dept = %q (assigned=%v), want environment/true",
			assigned.DeptLabel, assigned.DeptAssigned)
	}

	for _, dept := range []string{"", complaint.DeptUnassigned} {
		row := Present(complaint.Record{ID: "2", Dept: dept}, false)
		if row.DeptAssigned {
			t.Errorf("dept %q should present as unassigned", dept)
		}
		if row.DeptLabel != complaint.DeptUnassigned {
			t.Errorf("dept %q label = %q, want the unassigned sentinel", dept, row.DeptLabel)
		}
	}
}

func TestPresentIsPure(t *testing.T) {
	record := complaint.Record{
		ID:               "401",
		Author:           "박영희",
		Title:            "가로등 고장",
		Date:             "2025-07-01",
		Status:           complaint.StatusProcessing,
		Attachment:       "https://example.com/files/photo.jpg",
		IsDevilComplaint: true,
	}
	first := Present(record, false)
	second := Present(record, false)
	if first != second {
		t.Errorf("Present is not deterministic: %+v vs %+v", first, second)
	}
	if record.Author != "박영희" {
		t.Error("Present mutated its input record")
	}
}

func TestPresentAttachmentNullSentinel(t *testing.T) {
	withFile := Present(complaint.Record{ID: "1", Attachment: "a.pdf"}, false)
	if !withFile.HasAttachment {
		t.Error("expected HasAttachment for real attachment")
	}
	nullSentinel := Present(complaint.Record{ID: "2", Attachment: "null"}, false)
	if nullSentinel.HasAttachment {
		t.Error(`the literal "null" attachment should read as absent`)
	}
	empty := Present(complaint.Record{ID: "3"}, false)
	if empty.HasAttachment {
		t.Error("expected no attachment for empty field")
	}
}

func TestAttachmentFilename(t *testing.T) {
	tests := []struct {
		attachment string
		want       string
	}{
		{"https://example.com/files/photo.jpg", "photo.jpg"},
		{"photo.jpg", "photo.jpg"},
		{"https://example.com/files/", "attachment"},
		{"https://example.com/files/photo.jpg?token=abc123", "photo.jpg"},
		{"data:image/png;base64,AAAA/BBBB?x=1", "image.png"},
		{"data:application/pdf;base64,JVBERi0x", "application.pdf"},
		{"data:;base64,AAAA", "attachment"},
	}
	for _, test := range tests {
		if got := AttachmentFilename(test.attachment); got != test.want {
			t.Errorf("AttachmentFilename(%q) = %q, want %q", test.attachment, got, test.want)
		}
	}
}

func TestBlurTextPreservesShape(t *testing.T) {
	blurred := blurText("abc def\nghi")
	if !strings.Contains(blurred, "\n") {
		t.Error("blur should preserve line breaks")
	}
	if !strings.Contains(blurred, " ") {
		t.Error("blur should preserve spaces")
	}
	if strings.ContainsAny(blurred, "abcdefghi") {
		t.Errorf("blur leaked original text: %q", blurred)
	}
}
