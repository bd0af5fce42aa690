// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package complaint defines the citizen complaint record and its
// enumerated vocabularies: processing status, complaint category, and
// the department assignment sentinel.
//
// Records arrive from the remote complaint service as JSON. The wire
// layer is loosely typed — boolean flags may be encoded as booleans,
// 0/1 numbers, or "true"/"false" strings, and the AI annotation lists
// (keywords, related complaint IDs) are occasionally serialized in a
// shape that is not a string array. All of that tolerance lives here,
// at the decode boundary: [Flag] normalizes truthiness once, and
// [LooseStrings] absorbs malformed lists into an empty slice. The rest
// of the console operates on strictly typed fields and never re-derives
// truthiness ad hoc.
package complaint
