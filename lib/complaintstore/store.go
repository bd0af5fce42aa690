// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package complaintstore

import (
	"slices"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// Store holds the full unfiltered complaint collection in arrival
// order. All access goes through Load, ApplyEdit, All, Get, and Stats;
// nothing else depends on the internal representation.
type Store struct {
	records []complaint.Record
}

// NewStore creates an empty store. Call Load with the fetched
// collection before first use.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the entire collection with the given records,
// preserving their order. Load is idempotent and safe to re-run at any
// time; a full reload is the recovery path after any suspected
// divergence from the remote store.
func (store *Store) Load(records []complaint.Record) {
	store.records = slices.Clone(records)
}

// All returns the live collection in arrival order. Callers treat the
// result as read-only; mutation goes through ApplyEdit.
func (store *Store) All() []complaint.Record {
	return store.records
}

// Len returns the number of records in the store.
func (store *Store) Len() int {
	return len(store.records)
}

// Get returns the record with the given ID.
func (store *Store) Get(id string) (complaint.Record, bool) {
	for _, record := range store.records {
		if record.ID == id {
			return record, true
		}
	}
	return complaint.Record{}, false
}

// ApplyEdit updates the status and department of the record with the
// matching ID, in place. An unknown ID is a silent no-op, not an
// error: the store may briefly lag the remote truth, and the next
// reload reconciles it. Only status and dept change through this path.
func (store *Store) ApplyEdit(id string, status complaint.Status, dept string) {
	for index := range store.records {
		if store.records[index].ID == id {
			store.records[index].Status = status
			store.records[index].Dept = dept
			return
		}
	}
}

// Stats is a per-status tally over the full collection.
type Stats struct {
	ByStatus map[complaint.Status]int
	Total    int
}

// Stats tallies the collection by status. The dashboard displays the
// four working statuses from this tally; rejected is counted here but
// intentionally excluded from the dashboard cards (a dedicated
// rejected display may come later).
func (store *Store) Stats() Stats {
	stats := Stats{
		ByStatus: make(map[complaint.Status]int),
		Total:    len(store.records),
	}
	for _, record := range store.records {
		stats.ByStatus[record.Status]++
	}
	return stats
}

// Recent returns the most recent count records by arrival order (the
// remote service returns newest first, so this is a prefix). Used for
// the dashboard's recent-complaints table.
func (store *Store) Recent(count int) []complaint.Record {
	if count > len(store.records) {
		count = len(store.records)
	}
	return store.records[:count]
}
