// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"strings"
	"testing"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

func flaggedRecordWithAttachment() complaint.Record {
	return complaint.Record{
		ID:               "601",
		Author:           "김분노",
		Phone:            "010-1234-5678",
		Title:            "악성 민원",
		Content:          "욕설이 포함된 내용",
		Attachment:       "data:image/png;base64,AAAA/SECRETPAYLOADTAIL",
		Status:           complaint.StatusNew,
		IsDevilComplaint: true,
	}
}

func TestDetailPaneMasksAttachmentUntilRevealed(t *testing.T) {
	pane := NewDetailPane(DefaultTheme)
	pane.SetSize(80, 30)

	pane.SetRecord(flaggedRecordWithAttachment(), false)
	masked := strings.Join(pane.lines, "\n")
	if strings.Contains(masked, "SECRETPAYLOADTAIL") {
		t.Error("masked detail leaked data-URI attachment payload")
	}
	if strings.Contains(masked, "image.png") {
		t.Error("masked detail leaked the derived attachment filename")
	}
	if !strings.Contains(masked, maskedField) {
		t.Error("masked detail should show the mask placeholder")
	}

	pane.SetRecord(flaggedRecordWithAttachment(), true)
	revealed := strings.Join(pane.lines, "\n")
	if !strings.Contains(revealed, "image.png") {
		t.Error("revealed detail should show the derived attachment filename")
	}
	if strings.Contains(revealed, "SECRETPAYLOADTAIL") {
		t.Error("the data-URI payload should never render, revealed or not")
	}
}

func TestDetailPaneMasksCitizenFields(t *testing.T) {
	pane := NewDetailPane(DefaultTheme)
	pane.SetSize(80, 30)

	pane.SetRecord(flaggedRecordWithAttachment(), false)
	view := strings.Join(pane.lines, "\n")
	for _, leaked := range []string{"김분노", "010-1234-5678", "욕설"} {
		if strings.Contains(view, leaked) {
			t.Errorf("masked detail leaked %q", leaked)
		}
	}
}
