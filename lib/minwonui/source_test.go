// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourceReadsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complaints.json")
	snapshot := `[
		{"id": "101", "author": "김철수", "title": "소음 민원",
		 "status": "new", "dept": "unassigned",
		 "is_devil_complaint": 1,
		 "keywords": "[\"소음\", \"야간\"]"},
		{"id": "102", "author": "이영희", "title": "도로 보수 요청",
		 "status": "processing", "dept": "도로과",
		 "is_devil_complaint": false}
	]`
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	source := NewFileSource(path)
	records, err := source.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "101" || records[1].ID != "102" {
		t.Errorf("order = %s, %s; want file order", records[0].ID, records[1].ID)
	}
	if !records[0].IsDevilComplaint.Bool() {
		t.Error("numeric 1 should decode as a set flag")
	}
	if len(records[0].Keywords) != 2 || records[0].Keywords[0] != "소음" {
		t.Errorf("keywords = %v, want the double-encoded array decoded", records[0].Keywords)
	}
	if records[1].IsDevilComplaint.Bool() {
		t.Error("false should decode as an unset flag")
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := source.FetchAll(context.Background()); err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}
}

func TestFileSourceMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	source := NewFileSource(path)
	if _, err := source.FetchAll(context.Background()); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestFileSourceIsReadOnly(t *testing.T) {
	var source Source = NewFileSource("snapshot.json")
	if _, ok := source.(Committer); ok {
		t.Fatal("FileSource must not offer the edit flow")
	}
}
