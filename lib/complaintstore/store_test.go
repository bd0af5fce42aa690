// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package complaintstore

import (
	"reflect"
	"testing"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

func testRecords() []complaint.Record {
	return []complaint.Record{
		{ID: "107", Author: "Park Jiyeon", Date: "2026-03-05", Status: complaint.StatusNew, Dept: complaint.DeptUnassigned, Category: "inconvenience"},
		{ID: "106", Author: "Lee Minho", Date: "2026-03-04", Status: complaint.StatusProcessing, Dept: "environment", Category: "policy_suggestion"},
		{ID: "105", Author: "Kim Sora", Date: "2026-03-02", Status: complaint.StatusAnswered, Dept: "welfare", Category: "other"},
		{ID: "104", Author: "Lee Hana", Date: "2026-02-27", Status: complaint.StatusAwaitingReply, Dept: "environment", Category: "inconvenience"},
		{ID: "103", Author: "Choi Wonsik", Date: "2026-02-20", Status: complaint.StatusRejected, Dept: complaint.DeptUnassigned, Category: ""},
	}
}

func TestLoadReplacesCollection(t *testing.T) {
	store := NewStore()
	store.Load(testRecords())
	if store.Len() != 5 {
		t.Fatalf("expected 5 records, got %d", store.Len())
	}

	store.Load(testRecords()[:2])
	if store.Len() != 2 {
		t.Errorf("reload should replace, not append; got %d records", store.Len())
	}
}

func TestAllPreservesArrivalOrder(t *testing.T) {
	store := NewStore()
	store.Load(testRecords())

	ids := make([]string, 0, store.Len())
	for _, record := range store.All() {
		ids = append(ids, record.ID)
	}
	want := []string{"107", "106", "105", "104", "103"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order changed: got %v, want %v", ids, want)
	}
}

func TestApplyEditMutatesOnlyTarget(t *testing.T) {
	store := NewStore()
	store.Load(testRecords())

	store.ApplyEdit("107", complaint.StatusProcessing, "safety")

	edited, ok := store.Get("107")
	if !ok {
		t.Fatal("record 107 missing")
	}
	if edited.Status != complaint.StatusProcessing || edited.Dept != "safety" {
		t.Errorf("edit not applied: status=%s dept=%s", edited.Status, edited.Dept)
	}
	if edited.Author != "Park Jiyeon" || edited.Date != "2026-03-05" {
		t.Error("edit touched fields other than status and dept")
	}

	untouched, _ := store.Get("106")
	if untouched.Status != complaint.StatusProcessing || untouched.Dept != "environment" {
		t.Error("edit leaked into another record")
	}
}

func TestApplyEditUnknownIDIsNoOp(t *testing.T) {
	store := NewStore()
	store.Load(testRecords())
	before := slicesCopy(store.All())

	store.ApplyEdit("999", complaint.StatusAnswered, "environment")

	if !reflect.DeepEqual(before, store.All()) {
		t.Error("unknown-id edit must leave the store byte-for-byte identical")
	}
}

func TestStatsTally(t *testing.T) {
	store := NewStore()
	store.Load(testRecords())

	stats := store.Stats()
	if stats.Total != 5 {
		t.Errorf("total: got %d", stats.Total)
	}
	expected := map[complaint.Status]int{
		complaint.StatusNew:           1,
		complaint.StatusProcessing:    1,
		complaint.StatusAnswered:      1,
		complaint.StatusAwaitingReply: 1,
		complaint.StatusRejected:      1,
	}
	for status, count := range expected {
		if stats.ByStatus[status] != count {
			t.Errorf("status %s: got %d, want %d", status, stats.ByStatus[status], count)
		}
	}
}

func TestStatsEmptyStatuses(t *testing.T) {
	store := NewStore()
	store.Load([]complaint.Record{
		{ID: "1", Status: complaint.StatusNew},
		{ID: "2", Status: complaint.StatusNew},
	})

	stats := store.Stats()
	if stats.ByStatus[complaint.StatusNew] != 2 {
		t.Errorf("new: got %d", stats.ByStatus[complaint.StatusNew])
	}
	if stats.ByStatus[complaint.StatusAnswered] != 0 {
		t.Error("absent status should tally zero")
	}
}

func TestRecentClampsToLength(t *testing.T) {
	store := NewStore()
	store.Load(testRecords())

	recent := store.Recent(7)
	if len(recent) != 5 {
		t.Errorf("recent should clamp to store length, got %d", len(recent))
	}
	if recent[0].ID != "107" {
		t.Errorf("recent should be an arrival-order prefix, got first=%s", recent[0].ID)
	}

	recent = store.Recent(2)
	if len(recent) != 2 || recent[1].ID != "106" {
		t.Errorf("unexpected recent slice: %v", recent)
	}
}

func slicesCopy(records []complaint.Record) []complaint.Record {
	result := make([]complaint.Record, len(records))
	copy(result, records)
	return result
}
