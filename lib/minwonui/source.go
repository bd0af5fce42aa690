// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// Source abstracts complaint data access for the TUI. Implementations
// range from a JSON file on disk ([FileSource]) to the HTTP client for
// the live complaint service. The TUI code is identical regardless of
// backend: every refresh replaces the store's collection wholesale.
type Source interface {
	// FetchAll returns the full complaint collection in the
	// service's ordering (newest first).
	FetchAll(ctx context.Context) ([]complaint.Record, error)
}

// Committer is an optional interface that Source implementations can
// provide to support complaint edits. The TUI checks for this via
// type assertion on the source; when present, the interactive edit
// flow (status dropdown, department dropdown, optional reply) is
// enabled. When absent (e.g., file-backed FileSource), the edit
// controls are hidden.
//
// The HTTP client implements this interface; FileSource does not.
type Committer interface {
	// CommitEdit sends a status/department update for one complaint
	// to the service, with an optional operator reply. The local
	// store is only updated after the call succeeds.
	CommitEdit(ctx context.Context, id string, status complaint.Status, dept, reply string) error
}

// FileSource loads complaints from a JSON array on disk. Used for
// offline inspection of exported snapshots. It does not implement
// [Committer], so the edit flow stays hidden.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path. The file is
// read on every FetchAll call, so an updated snapshot can be picked
// up with the reload key.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchAll reads and decodes the snapshot file. Decoding is tolerant
// of the service's loose wire encodings (numeric booleans,
// double-encoded arrays) because exported snapshots carry them
// verbatim.
func (source *FileSource) FetchAll(_ context.Context) ([]complaint.Record, error) {
	data, err := os.ReadFile(source.path)
	if err != nil {
		return nil, fmt.Errorf("complaint snapshot: %w", err)
	}
	var records []complaint.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("complaint snapshot %s: %v", source.path, err)
	}
	return records, nil
}
