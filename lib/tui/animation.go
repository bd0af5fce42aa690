// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a row glows after its edit commits.
const HeatDecayDuration = 5 * time.Second

// HeatTickInterval is the re-render interval while any rows glow.
const HeatTickInterval = 100 * time.Millisecond

// HeatTracker drives the post-commit glow: each confirmed edit
// ignites its row, and the glow fades linearly over
// [HeatDecayDuration]. The tracker is read on every render tick, so
// lookups are by row ID.
//
// Not safe for concurrent use; the update loop is the only caller.
type HeatTracker struct {
	ignitions map[string]time.Time
}

// NewHeatTracker creates an empty tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{ignitions: make(map[string]time.Time)}
}

// Ignite marks a row as just changed. Re-igniting a glowing row
// restarts its fade.
func (tracker *HeatTracker) Ignite(rowID string, now time.Time) {
	tracker.ignitions[rowID] = now
}

// Heat returns the row's glow intensity: 1.0 at ignition, fading to
// 0.0 over [HeatDecayDuration]. Cold rows report 0.0 and are pruned.
func (tracker *HeatTracker) Heat(rowID string, now time.Time) float64 {
	ignited, ok := tracker.ignitions[rowID]
	if !ok {
		return 0
	}
	elapsed := now.Sub(ignited)
	if elapsed >= HeatDecayDuration {
		delete(tracker.ignitions, rowID)
		return 0
	}
	return 1 - float64(elapsed)/float64(HeatDecayDuration)
}

// HasHot reports whether any row still glows, pruning cold entries
// as a side effect. The model stops the animation timer when this
// returns false.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	for rowID, ignited := range tracker.ignitions {
		if now.Sub(ignited) >= HeatDecayDuration {
			delete(tracker.ignitions, rowID)
			continue
		}
		return true
	}
	return false
}
