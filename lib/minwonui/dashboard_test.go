// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"strings"
	"testing"

	"github.com/jiminbae/minwon-console/lib/complaint"
	"github.com/jiminbae/minwon-console/lib/complaintstore"
)

func TestDashboardCardsExcludeRejected(t *testing.T) {
	for _, status := range dashboardCardStatuses {
		if status == complaint.StatusRejected {
			t.Fatal("rejected complaints must not get a dashboard card")
		}
	}
	want := []complaint.Status{
		complaint.StatusNew,
		complaint.StatusProcessing,
		complaint.StatusAnswered,
		complaint.StatusAwaitingReply,
	}
	if len(dashboardCardStatuses) != len(want) {
		t.Fatalf("got %d cards, want %d", len(dashboardCardStatuses), len(want))
	}
	for index, status := range want {
		if dashboardCardStatuses[index] != status {
			t.Errorf("card %d = %s, want %s", index, dashboardCardStatuses[index], status)
		}
	}
}

func TestDashboardMasksFlaggedRecentRows(t *testing.T) {
	store := complaintstore.NewStore()
	store.Load([]complaint.Record{
		{ID: "501", Author: "김분노", Title: "민원", Status: complaint.StatusNew,
			IsDevilComplaint: true},
	})

	view := renderDashboard(DefaultTheme, 120, 30, store.Stats(),
		store.Recent(7), map[string]bool{})
	if strings.Contains(view, "김분노") {
		t.Error("dashboard leaked a masked author")
	}
	if !strings.Contains(view, maskedField) {
		t.Error("dashboard should show the mask for a flagged record")
	}

	revealed := renderDashboard(DefaultTheme, 120, 30, store.Stats(),
		store.Recent(7), map[string]bool{"501": true})
	if !strings.Contains(revealed, "김분노") {
		t.Error("acknowledged record should show its author on the dashboard")
	}
}
