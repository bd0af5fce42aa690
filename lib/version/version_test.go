// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	restore := func(release, commit, date string) {
		Release, Commit, BuildDate = release, commit, date
	}
	defer restore(Release, Commit, BuildDate)

	tests := []struct {
		name    string
		release string
		commit  string
		date    string
		want    string
	}{
		{"dev build", "dev", "", "", "dev"},
		{"commit only", "v0.3.0", "1a2b3c4", "", "v0.3.0 (1a2b3c4)"},
		{"full stamp", "v0.3.0", "1a2b3c4", "2026-08-31", "v0.3.0 (1a2b3c4, 2026-08-31)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			restore(test.release, test.commit, test.date)
			if got := Info(); got != test.want {
				t.Errorf("Info() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestRuntimeIncludesToolchainAndPlatform(t *testing.T) {
	got := Runtime()
	if !strings.HasPrefix(got, Info()) {
		t.Errorf("Runtime() = %q, want prefix %q", got, Info())
	}
	for _, want := range []string{runtime.Version(), runtime.GOOS + "/" + runtime.GOARCH} {
		if !strings.Contains(got, want) {
			t.Errorf("Runtime() = %q, missing %q", got, want)
		}
	}
}
