// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name string
		raw  rawConfig
		want []string
	}{
		{
			name: "all known",
			raw: rawConfig{
				{name: "global", options: []rawOption{{name: "verbosity", value: "debug"}}},
			},
			want: nil,
		},
		{
			name: "unknown section swallows its options",
			raw: rawConfig{
				{name: "bogus", options: []rawOption{
					{name: "first", value: "1"},
					{name: "second", value: "2"},
				}},
			},
			want: []string{"Unsupported config section: [bogus]"},
		},
		{
			name: "unknown option in known section",
			raw: rawConfig{
				{name: "global", options: []rawOption{
					{name: "verbosity", value: "debug"},
					{name: "not-an-option", value: "1"},
				}},
			},
			want: []string{"Unsupported config option in [global]: not-an-option"},
		},
		{
			name: "multiple problems all reported",
			raw: rawConfig{
				{name: "bogus", options: []rawOption{{name: "x", value: "1"}}},
				{name: "detect-content", options: []rawOption{{name: "nope", value: "1"}}},
			},
			want: []string{
				"Unsupported config section: [bogus]",
				"Unsupported config option in [detect-content]: nope",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateStructure(tt.raw))
		})
	}
}

func TestParseValuesBoolLiterals(t *testing.T) {
	for _, raw := range []string{"1", "yes", "true", "on", "YES", "On"} {
		rc := rawConfig{{name: "backend-pyav", options: []rawOption{
			{name: "suppress-output", value: raw},
		}}}
		resolved, errs := parseValues(rc)
		require.Empty(t, errs, "input %q", raw)
		assert.Equal(t, true, resolved["backend-pyav"]["suppress-output"], "input %q", raw)
	}

	for _, raw := range []string{"0", "no", "false", "off"} {
		rc := rawConfig{{name: "backend-pyav", options: []rawOption{
			{name: "suppress-output", value: raw},
		}}}
		resolved, errs := parseValues(rc)
		require.Empty(t, errs, "input %q", raw)
		assert.Equal(t, false, resolved["backend-pyav"]["suppress-output"], "input %q", raw)
	}
}

func TestParseValuesBadBool(t *testing.T) {
	rc := rawConfig{{name: "backend-pyav", options: []rawOption{
		{name: "suppress-output", value: "maybe"},
	}}}
	resolved, errs := parseValues(rc)
	require.Len(t, errs, 1)
	assert.Equal(t,
		"Invalid [backend-pyav] value for suppress-output: maybe is not a valid yes/no value.",
		errs[0])
	_, ok := resolved["backend-pyav"]
	assert.False(t, ok, "failed option must not land in the resolved map")
}

func TestParseValuesBadInt(t *testing.T) {
	rc := rawConfig{{name: "detect-adaptive", options: []rawOption{
		{name: "frame-window", value: "12abc"},
	}}}
	_, errs := parseValues(rc)
	require.Len(t, errs, 1)
	assert.Equal(t,
		"Invalid [detect-adaptive] value for frame-window: 12abc is not a valid integer.",
		errs[0])
}

func TestParseValuesEnumNormalized(t *testing.T) {
	rc := rawConfig{{name: "detect-content", options: []rawOption{
		{name: "filter-mode", value: "MERGE"},
	}}}
	resolved, errs := parseValues(rc)
	require.Empty(t, errs)
	assert.Equal(t, "merge", resolved["detect-content"]["filter-mode"])

	rc = rawConfig{{name: "detect-content", options: []rawOption{
		{name: "filter-mode", value: "discard"},
	}}}
	_, errs = parseValues(rc)
	require.Len(t, errs, 1)
	assert.Equal(t,
		"Invalid [detect-content] value for filter-mode: discard. Must be one of: merge, suppress.",
		errs[0])
}

func TestParseValuesChoiceStringKeepsCase(t *testing.T) {
	// Choice matching is case-insensitive, but the stored value keeps the
	// spelling from the file.
	rc := rawConfig{{name: "global", options: []rawOption{
		{name: "verbosity", value: "Debug"},
	}}}
	resolved, errs := parseValues(rc)
	require.Empty(t, errs)
	assert.Equal(t, "Debug", resolved["global"]["verbosity"])

	rc = rawConfig{{name: "global", options: []rawOption{
		{name: "verbosity", value: "chatty"},
	}}}
	_, errs = parseValues(rc)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Invalid [global] value for verbosity: chatty. Must be one of: ")
}

func TestParseValuesAccumulatesErrors(t *testing.T) {
	rc := rawConfig{
		{name: "detect-content", options: []rawOption{
			{name: "threshold", value: "300.0"},
		}},
		{name: "backend-pyav", options: []rawOption{
			{name: "suppress-output", value: "maybe"},
		}},
	}
	resolved, errs := parseValues(rc)
	assert.Len(t, errs, 2)
	assert.Empty(t, resolved)
}

func TestParseValuesValidatedError(t *testing.T) {
	rc := rawConfig{{name: "detect-content", options: []rawOption{
		{name: "threshold", value: "300.0"},
	}}}
	_, errs := parseValues(rc)
	require.Len(t, errs, 1)
	assert.Equal(t,
		"Invalid [detect-content] value for threshold:\n  300.0\nValue must be between 0 and 255.",
		errs[0])
}

func TestParseValuesOnlyFilePresentOptions(t *testing.T) {
	rc := rawConfig{{name: "detect-content", options: []rawOption{
		{name: "luma-only", value: "yes"},
	}}}
	resolved, errs := parseValues(rc)
	require.Empty(t, errs)
	require.Len(t, resolved, 1)
	assert.Equal(t, map[string]any{"luma-only": true}, resolved["detect-content"])
}

func TestParseValuesFadeBiasIsIntegral(t *testing.T) {
	// fade-bias inherits the integer subtype from its default, so fractional
	// input is rejected even though it lies within the bounds.
	rc := rawConfig{{name: "detect-threshold", options: []rawOption{
		{name: "fade-bias", value: "0.5"},
	}}}
	_, errs := parseValues(rc)
	require.Len(t, errs, 1)
	assert.Equal(t,
		"Invalid [detect-threshold] value for fade-bias:\n  0.5\nValue must be between -100 and 100.",
		errs[0])

	rc = rawConfig{{name: "detect-threshold", options: []rawOption{
		{name: "fade-bias", value: "-25"},
	}}}
	resolved, errs := parseValues(rc)
	require.Empty(t, errs)
	assert.Equal(t, -25, resolved["detect-threshold"]["fade-bias"].(Range).Value())
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "a b c", collapse("a\nb\r\nc"))
	assert.Equal(t, "a  b", collapse("a\n\nb"), "one space per line break")
	assert.Equal(t, "plain", collapse("  plain  "))
}
