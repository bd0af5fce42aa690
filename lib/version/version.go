// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package version carries the console's build identity, stamped at
// build time:
//
//	go build -ldflags "\
//	  -X github.com/jiminbae/minwon-console/lib/version.Release=v0.3.0 \
//	  -X github.com/jiminbae/minwon-console/lib/version.Commit=$(git rev-parse --short HEAD)"
//
// An unstamped binary reports itself as a dev build.
package version

import (
	"fmt"
	"runtime"
)

// Stamped via -ldflags; defaults describe a local dev build.
var (
	// Release is the tagged release version.
	Release = "dev"

	// Commit is the short git SHA the binary was built from.
	Commit = ""

	// BuildDate is the UTC date of the build.
	BuildDate = ""
)

// Info renders the one-line form used by --version output, e.g.
// "v0.3.0 (1a2b3c4, 2026-08-31)".
func Info() string {
	detail := ""
	switch {
	case Commit != "" && BuildDate != "":
		detail = fmt.Sprintf(" (%s, %s)", Commit, BuildDate)
	case Commit != "":
		detail = fmt.Sprintf(" (%s)", Commit)
	}
	return Release + detail
}

// Runtime renders the multi-line form with toolchain and platform,
// for bug reports.
func Runtime() string {
	return fmt.Sprintf("%s\n  go: %s\n  platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
