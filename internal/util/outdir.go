// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
)

// ResolveOutputDir resolves a configured output directory to an absolute
// path. An empty value means the current working directory. The directory
// must exist and actually be a directory.
func ResolveOutputDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}

	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	fi, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", os.ErrInvalid
	}

	return dir, nil
}
