// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package minwonui

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// FuzzyResult is the outcome of matching a pattern against one text:
// the fzf score (0 means no match) and the rune positions that
// matched, for highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// fuzzyMatch runs fzf's FuzzyMatchV2 against a single text. Both
// sides are lowercased so matching is case-insensitive regardless of
// the pattern's case. The slab parameter lets hot loops reuse fzf's
// scratch allocation; pass nil for one-off calls.
func fuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for index, character := range pattern {
		lowered[index] = toLowerRune(character)
	}

	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
		// fzf reports positions in reverse order.
		sort.Ints(matched.Positions)
	}
	return matched
}

func toLowerRune(character rune) rune {
	if character >= 'A' && character <= 'Z' {
		return character + ('a' - 'A')
	}
	return character
}

// QuickFilterModel is the fzf-style quick filter over the current
// projection. It composes after the structured filters: the filter
// set chooses the base projection, and the quick filter narrows it
// client-side, re-ordered by match score.
type QuickFilterModel struct {
	// Input is the current query text.
	Input string

	// Active is true when the quick filter has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// QuickFilterEntry pairs a record with its match score and the
// matched rune positions in the title, for highlighting.
type QuickFilterEntry struct {
	Record         complaint.Record
	Score          int
	TitlePositions []int
}

// Apply runs the fuzzy query against every record, matching the ID,
// author, title, and content fields. Results are sorted by descending
// score (stable, so equal scores keep projection order). An empty
// query returns all records in projection order with zero scores.
func (filter *QuickFilterModel) Apply(records []complaint.Record) []QuickFilterEntry {
	entries := make([]QuickFilterEntry, 0, len(records))
	if filter.Input == "" {
		for _, record := range records {
			entries = append(entries, QuickFilterEntry{Record: record})
		}
		return entries
	}

	pattern := []rune(filter.Input)
	slab := util.MakeSlab(100*1024, 2048)

	for _, record := range records {
		best := FuzzyResult{}
		var titlePositions []int

		if result := fuzzyMatch(record.Title, pattern, slab); result.Score > best.Score {
			best = result
			titlePositions = result.Positions
		}
		if result := fuzzyMatch(record.ID, pattern, slab); result.Score > best.Score {
			best = result
		}
		if result := fuzzyMatch(record.Author, pattern, slab); result.Score > best.Score {
			best = result
		}
		if result := fuzzyMatch(record.Content, pattern, slab); result.Score > best.Score {
			best = result
		}

		if best.Score > 0 {
			entries = append(entries, QuickFilterEntry{
				Record:         record,
				Score:          best.Score,
				TitlePositions: titlePositions,
			})
		}
	}

	sort.SliceStable(entries, func(left, right int) bool {
		return entries[left].Score > entries[right].Score
	})
	return entries
}

// HandleRune processes a character typed while the quick filter is
// active.
func (filter *QuickFilterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the query.
func (filter *QuickFilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and deactivates the filter.
func (filter *QuickFilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}
