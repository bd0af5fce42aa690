// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package complaintstore

import (
	"strings"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// FilterSet is a conjunction of independently optional predicates over
// complaint records. A zero-value field means that predicate is unset
// and vacuously true; the zero FilterSet matches everything.
type FilterSet struct {
	// Search matches free text, case-insensitively: a substring of
	// the author name, or a prefix of the record ID.
	Search string

	// Status matches the record status exactly.
	Status complaint.Status

	// Category matches the record's category key exactly.
	Category string

	// DateFrom and DateTo bound the submission date inclusively, as
	// ISO date strings compared lexicographically.
	DateFrom string
	DateTo   string
}

// IsZero reports whether no predicate is set.
func (filters FilterSet) IsZero() bool {
	return filters == FilterSet{}
}

// Matches reports whether a single record satisfies every set
// predicate.
func (filters FilterSet) Matches(record complaint.Record) bool {
	if filters.Search != "" {
		query := strings.ToLower(filters.Search)
		authorMatch := strings.Contains(strings.ToLower(record.Author), query)
		idMatch := strings.HasPrefix(strings.ToLower(record.ID), query)
		if !authorMatch && !idMatch {
			return false
		}
	}

	if filters.Status != "" && record.Status != filters.Status {
		return false
	}

	if filters.Category != "" && record.Category != filters.Category {
		return false
	}

	if filters.DateFrom != "" && record.Date < filters.DateFrom {
		return false
	}
	if filters.DateTo != "" && record.Date > filters.DateTo {
		return false
	}

	return true
}

// Apply returns the subset of records matching every set predicate,
// preserving the input's relative order. The filter never re-sorts:
// the projection's ordering is the store's ordering.
func (filters FilterSet) Apply(records []complaint.Record) []complaint.Record {
	if filters.IsZero() {
		return records
	}

	var result []complaint.Record
	for _, record := range records {
		if filters.Matches(record) {
			result = append(result, record)
		}
	}
	return result
}
