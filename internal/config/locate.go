// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
)

// FileName is the name of the per-user configuration file.
const FileName = "framecut.cfg"

// EnvConfigFile overrides the per-user config file location when set.
const EnvConfigFile = "FRAMECUT_CFG_FILE"

// Locator reports where the per-user config file lives and whether it
// exists. It is injected into the Registry so tests can supply a fake
// location instead of touching the real user config directory.
type Locator func() (path string, ok bool)

// DefaultLocator checks the FRAMECUT_CFG_FILE environment variable first,
// then the OS-specific user configuration directory. A missing file is not
// an error; ok is simply false.
func DefaultLocator() (string, bool) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, true
		}
		return "", false
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	p := filepath.Join(dir, "framecut", FileName)
	if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
		return p, true
	}
	return "", false
}
