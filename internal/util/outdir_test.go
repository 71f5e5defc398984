// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOutputDirEmpty(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveOutputDir("")
	require.NoError(t, err)
	assert.Equal(t, cwd, got)
}

func TestResolveOutputDirAbsolute(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveOutputDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestResolveOutputDirRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))
	t.Chdir(dir)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveOutputDir("out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "out"), got)
}

func TestResolveOutputDirMissing(t *testing.T) {
	_, err := ResolveOutputDir(filepath.Join(t.TempDir(), "no-such-dir"))
	assert.Error(t, err)
}

func TestResolveOutputDirNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := ResolveOutputDir(file)
	assert.ErrorIs(t, err, os.ErrInvalid)
}
