// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the complaint
// console.
//
// Configuration is loaded from a single file specified by either the
// MINWON_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. This ensures deterministic, auditable
// configuration with no hidden overrides.
//
// A missing config file is not an error for the console: all fields
// have working defaults ([Default]), and the command-line flags can
// override the server URL without a file at all.
//
// Key exports:
//
//   - [Config] -- Server, Console, and Log sections
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other console packages.
package config
