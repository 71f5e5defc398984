// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for framecut. It wires flags,
// config-aware help text, and actions for subcommands. Flag usage strings
// embed the current config-file setting (or default) for each option so
// --help always reflects the loaded configuration.
package command
