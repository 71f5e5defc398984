// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads and validates the framecut user configuration file.
//
// The file is an INI-style document of [section] headers and key = value (or
// key: value) lines, validated against a fixed schema of known sections and
// typed options. Loading runs two passes: a structural check of section and
// option names, then per-option type, range, and choice validation. Errors
// accumulate so a single load reports every problem at once.
//
// Values resolve through three tiers: an explicit per-call override, the
// loaded file, then the built-in schema default. The per-user file location
// follows os.UserConfigDir, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/framecut/framecut.cfg or
//     $HOME/.config/framecut/framecut.cfg
//   - Windows: %AppData%/framecut/framecut.cfg
//
// and can be overridden with the FRAMECUT_CFG_FILE environment variable.
package config
