// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noUserConfig() (string, bool) {
	return "", false
}

func errorEntries(entries []LogEntry) []string {
	var errs []string
	for _, e := range entries {
		if e.Level == log.ErrorLevel {
			errs = append(errs, e.Message)
		}
	}
	return errs
}

func TestNewWithValidFile(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "valid.cfg"), noUserConfig)
	require.NoError(t, err)
	assert.True(t, reg.Initialized())

	assert.Equal(t, "detect-content", reg.Value("global", "default-detector", nil))
	assert.Equal(t, "2s", reg.Value("global", "min-scene-len", nil))
	assert.Equal(t, 32.5, reg.Value("detect-content", "threshold", nil))
	assert.Equal(t, true, reg.Value("detect-content", "luma-only", nil))
	assert.Equal(t, 5, reg.Value("detect-adaptive", "kernel-size", nil))
	assert.Equal(t,
		Components{DeltaHue: 1.0, DeltaSat: 0.5, DeltaLum: 1.0, DeltaEdges: 0.2},
		reg.Value("detect-content", "weights", nil))

	// Options the file never mentions resolve to schema defaults.
	assert.Equal(t, "info", reg.Value("global", "verbosity", nil))
	assert.Equal(t, 2, reg.Value("detect-adaptive", "frame-window", nil))
}

func TestNewWithoutUserFile(t *testing.T) {
	reg, err := New("", noUserConfig)
	require.NoError(t, err)
	assert.True(t, reg.Initialized())
	assert.Empty(t, reg.ConfigDict())

	entries := reg.ConsumeInitLog()
	require.Len(t, entries, 1)
	assert.Equal(t, log.DebugLevel, entries[0].Level)
	assert.Equal(t, "User config file not found.", entries[0].Message)
}

func TestNewMissingExplicitPath(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "no-such-file.cfg"), noUserConfig)
	require.Error(t, err)
	assert.False(t, reg.Initialized())

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Nil(t, loadErr.Cause)

	errs := errorEntries(reg.ConsumeInitLog())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "File not found: ")
}

func TestNewUnknownSection(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "bogus-section.cfg"), noUserConfig)
	require.Error(t, err)
	assert.False(t, reg.Initialized())

	errs := errorEntries(reg.ConsumeInitLog())
	require.Len(t, errs, 1)
	assert.Equal(t, "Unsupported config section: [bogus]", errs[0])
}

func TestNewStructuralErrorSkipsValues(t *testing.T) {
	// The file sets a valid verbosity, but an unknown option elsewhere makes
	// the whole file rejected; nothing from it may take effect.
	reg, err := New(filepath.Join("testdata", "unknown-option.cfg"), noUserConfig)
	require.Error(t, err)

	errs := errorEntries(reg.ConsumeInitLog())
	require.Len(t, errs, 1)
	assert.Equal(t, "Unsupported config option in [global]: not-an-option", errs[0])

	assert.Empty(t, reg.ConfigDict())
	assert.Equal(t, "info", reg.Value("global", "verbosity", nil))
}

func TestNewAccumulatesValueErrors(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "bad-values.cfg"), noUserConfig)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	errs := errorEntries(loadErr.Log)
	assert.Len(t, errs, 2)
	assert.Empty(t, reg.ConfigDict())
}

func TestNewMalformedFile(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "malformed.cfg"), noUserConfig)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.NotNil(t, loadErr.Cause)

	// The tokenizer failure is appended to the retained log so lenient
	// callers still see what went wrong.
	errs := errorEntries(reg.ConsumeInitLog())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Error: ")
}

func TestConsumeInitLogConsumes(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "valid.cfg"), noUserConfig)
	require.NoError(t, err)

	first := reg.ConsumeInitLog()
	assert.NotEmpty(t, first)
	assert.Nil(t, reg.ConsumeInitLog())
}

func TestIsDefault(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "valid.cfg"), noUserConfig)
	require.NoError(t, err)

	assert.False(t, reg.IsDefault("detect-content", "threshold"))
	assert.False(t, reg.IsDefault("global", "min-scene-len"))
	assert.True(t, reg.IsDefault("detect-content", "filter-mode"))
	assert.True(t, reg.IsDefault("global", "verbosity"))

	assert.Panics(t, func() { reg.IsDefault("global", "no-such-option") })
}

func TestValueOverridePrecedence(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "valid.cfg"), noUserConfig)
	require.NoError(t, err)

	// An override beats the file value and the default alike.
	assert.Equal(t, 99.0, reg.Value("detect-content", "threshold", 99.0))
	assert.Equal(t, "error", reg.Value("global", "verbosity", "error"))
}

func TestValueAlias(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "alias.cfg"), noUserConfig)
	require.NoError(t, err)

	// The file uses the legacy name; both names resolve to its value and
	// report non-default.
	assert.Equal(t, 20.0, reg.Value("detect-adaptive", "min-delta-hsv", nil))
	assert.Equal(t, 20.0, reg.Value("detect-adaptive", "min-content-val", nil))
	assert.False(t, reg.IsDefault("detect-adaptive", "min-delta-hsv"))
	assert.False(t, reg.IsDefault("detect-adaptive", "min-content-val"))
}

func TestHelpString(t *testing.T) {
	reg, err := New(filepath.Join("testdata", "valid.cfg"), noUserConfig)
	require.NoError(t, err)

	no := false

	tests := []struct {
		name        string
		section     string
		option      string
		showDefault *bool
		want        string
	}{
		{name: "set flag", section: "detect-content", option: "luma-only", want: " [setting: on]"},
		{name: "set value", section: "detect-content", option: "threshold", want: " [setting: 32.5]"},
		{name: "default value", section: "detect-hash", option: "size", want: " [default: 16]"},
		{name: "default string", section: "global", option: "verbosity", want: " [default: info]"},
		{name: "falsy flag hidden", section: "detect-adaptive", option: "luma-only", want: ""},
		{name: "truthy flag shown", section: "detect-threshold", option: "add-last-scene", want: " [default: true]"},
		{name: "suppressed default", section: "global", option: "verbosity", showDefault: &no, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.HelpString(tt.section, tt.option, tt.showDefault))
		})
	}
}
