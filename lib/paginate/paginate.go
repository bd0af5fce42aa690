// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package paginate slices projections into fixed-size pages and
// computes the windowed page-number strip for navigation controls.
//
// The strip groups pages into consecutive windows of GroupSize and
// shows the window containing the current page, flanked by previous/
// next page entries and previous/next window jumps. The windowing
// arithmetic is the one genuinely fiddly algorithm in the console;
// it is reproduced exactly and covered by tests.
package paginate

// DefaultGroupSize is the number of page links per strip window.
const DefaultGroupSize = 10

// Page returns the pageNumber-th fixed-size slice of items (pages are
// 1-based), clipped to the input's bounds. An out-of-range page yields
// an empty slice rather than an error, so callers that forget to
// clamp still render an empty page.
func Page[T any](items []T, pageSize, pageNumber int) []T {
	if pageSize <= 0 || pageNumber <= 0 {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the number of pages needed for totalItems at the
// given page size: ceil(totalItems/pageSize).
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Clamp bounds a page number to [1, totalPages]. A collection with no
// pages clamps to 1 so an empty projection still has a current page.
func Clamp(pageNumber, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if pageNumber < 1 {
		return 1
	}
	if pageNumber > totalPages {
		return totalPages
	}
	return pageNumber
}

// EntryKind distinguishes the strip's navigation entries.
type EntryKind int

const (
	// KindPage is a direct page-number link.
	KindPage EntryKind = iota
	// KindPreviousPage targets the page before the current one.
	KindPreviousPage
	// KindNextPage targets the page after the current one.
	KindNextPage
	// KindPreviousWindow jumps to the last page before the visible
	// window.
	KindPreviousWindow
	// KindNextWindow jumps to the first page after the visible window.
	KindNextWindow
)

// Entry is one element of the navigation strip. Target is the page a
// selection of this entry should move to; Active marks the entry for
// the current page.
type Entry struct {
	Kind   EntryKind
	Target int
	Active bool
}

// Strip computes the ordered navigation entries for the given
// pagination state. Pages are grouped into consecutive windows of
// groupSize; the visible window is the one containing currentPage.
// In order: a previous-window jump (only when the window's first page
// is past page 1, targeting the page just before the window), a
// previous-page entry (only when currentPage > 1), one entry per page
// in the window clamped to the last page, a next-page entry (only when
// currentPage < totalPages), and a next-window jump (only when pages
// exist past the clamped window, targeting the page just after it).
// A single page (or none) needs no navigation: the strip is empty.
func Strip(totalItems, pageSize, currentPage, groupSize int) []Entry {
	totalPages := TotalPages(totalItems, pageSize)
	if totalPages <= 1 {
		return nil
	}
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}

	currentGroup := (currentPage + groupSize - 1) / groupSize
	windowEnd := currentGroup * groupSize
	windowStart := windowEnd - groupSize + 1
	if windowEnd > totalPages {
		windowEnd = totalPages
	}

	var entries []Entry

	if windowStart > 1 {
		entries = append(entries, Entry{Kind: KindPreviousWindow, Target: windowStart - 1})
	}
	if currentPage > 1 {
		entries = append(entries, Entry{Kind: KindPreviousPage, Target: currentPage - 1})
	}

	for page := windowStart; page <= windowEnd; page++ {
		entries = append(entries, Entry{
			Kind:   KindPage,
			Target: page,
			Active: page == currentPage,
		})
	}

	if currentPage < totalPages {
		entries = append(entries, Entry{Kind: KindNextPage, Target: currentPage + 1})
	}
	if windowEnd < totalPages {
		entries = append(entries, Entry{Kind: KindNextWindow, Target: windowEnd + 1})
	}

	return entries
}
