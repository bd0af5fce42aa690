// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

func TestComplaintsParsesCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/complaints" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"complaint_id": "107", "name": "김철수", "title": "가로등 고장", "status": "new", "is_devil_complaint": 1},
			{"complaint_id": "106", "name": "이영희", "title": "소음 민원", "status": "processing", "keywords": "[\"소음\", \"야간\"]"}
		]`))
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	records, err := client.Complaints(context.Background())
	if err != nil {
		t.Fatalf("Complaints: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "107" {
		t.Errorf("expected service order preserved, first ID %q", records[0].ID)
	}
	if !records[0].IsDevilComplaint.Bool() {
		t.Error("numeric truthy flag should decode as true")
	}
	if len(records[1].Keywords) != 2 || records[1].Keywords[0] != "소음" {
		t.Errorf("double-encoded keywords not normalized: %v", records[1].Keywords)
	}
}

func TestUpdateComplaintSendsPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if contentType := r.Header.Get("Content-Type"); contentType != "application/json" {
			t.Errorf("expected JSON content type, got %q", contentType)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	err = client.CommitEdit(context.Background(), "105", complaint.StatusProcessing, "environment", "확인 중입니다")
	if err != nil {
		t.Fatalf("CommitEdit: %v", err)
	}
	if gotPath != "/complaints/105" {
		t.Errorf("expected path /complaints/105, got %q", gotPath)
	}
	want := map[string]string{"status": "processing", "dept": "environment", "reply": "확인 중입니다"}
	for key, value := range want {
		if gotBody[key] != value {
			t.Errorf("payload %s = %q, want %q", key, gotBody[key], value)
		}
	}
}

func TestNonSuccessStatusBecomesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "complaint not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	err = client.UpdateComplaint(context.Background(), "999", UpdateRequest{Status: complaint.StatusAnswered, Dept: "welfare"})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	var serviceError *ServiceError
	if !errors.As(err, &serviceError) {
		t.Fatalf("expected *ServiceError, got %T: %v", err, err)
	}
	if serviceError.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", serviceError.StatusCode)
	}
	if !strings.Contains(serviceError.Error(), "404") {
		t.Errorf("error text should mention the status: %s", serviceError.Error())
	}
}

func TestComplaintsTransportFailure(t *testing.T) {
	client, err := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Complaints(context.Background()); err == nil {
		t.Fatal("expected transport error against a closed port")
	}
}

func TestUploadAttachment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uploads" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "photo.jpg" {
			t.Errorf("filename = %q, want photo.jpg", header.Filename)
		}
		w.Write([]byte(`{"url": "/uploads/photo.jpg"}`))
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	reference, err := client.UploadAttachment(context.Background(), "photo.jpg", strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatalf("UploadAttachment: %v", err)
	}
	if reference != "/uploads/photo.jpg" {
		t.Errorf("reference = %q", reference)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Fatal("expected error for empty BaseURL")
	}
}
