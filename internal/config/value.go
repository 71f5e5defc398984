// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/framecut/framecut/internal/timecode"
)

// Validated is a configuration value that enforces constraints beyond simple
// type coercion. Implementations are immutable once constructed.
//
// FromConfig parses untrusted text using the receiver's constraints (the
// receiver is always the schema default, so e.g. a Range carries its own
// min/max). It never passes a raw parse error through to the caller: any
// failure is reported as an *OptionParseError with a human-readable
// constraint description.
type Validated interface {
	// Value returns the validated payload in its natural type.
	Value() any
	// FromConfig validates raw text against the receiver's constraints.
	FromConfig(raw string) (Validated, error)
	// String renders the value for help text and config dumps.
	String() string
}

// Timecode holds a position expressed as a frame count ("100"), seconds
// ("100.0", "1.5s"), or HH:MM:SS[.fff]. The original representation is
// stored; construction only checks the syntax by building a position at a
// nominal frame rate.
type Timecode struct {
	raw string
}

// NewTimecode validates raw as a timecode and stores it verbatim.
func NewTimecode(raw string) (Timecode, error) {
	if _, err := timecode.Parse(raw, timecode.NominalRate); err != nil {
		return Timecode{}, err
	}
	return Timecode{raw: raw}, nil
}

func mustTimecode(raw string) Timecode {
	tc, err := NewTimecode(raw)
	if err != nil {
		panic(err)
	}
	return tc
}

// Value returns the original string representation.
func (t Timecode) Value() any {
	return t.raw
}

func (t Timecode) String() string {
	return t.raw
}

// FromConfig implements Validated.
func (t Timecode) FromConfig(raw string) (Validated, error) {
	v, err := NewTimecode(raw)
	if err != nil {
		return nil, &OptionParseError{
			Reason: "Timecodes must be in seconds (100.0), frames (100), or HH:MM:SS.",
		}
	}
	return v, nil
}

// Range is a numeric value constrained to an inclusive [min, max] interval.
// Whether values parse as integers or floats follows the subtype of the
// schema default.
type Range struct {
	val, min, max float64
	integral      bool
}

// NewIntRange returns an integer Range; val must lie within [min, max].
func NewIntRange(val, min, max int) (Range, error) {
	if val < min || val > max {
		return Range{}, fmt.Errorf("config: %d outside range [%d, %d]", val, min, max)
	}
	return Range{val: float64(val), min: float64(min), max: float64(max), integral: true}, nil
}

// NewFloatRange returns a floating-point Range; val must lie within [min, max].
func NewFloatRange(val, min, max float64) (Range, error) {
	if val < min || val > max {
		return Range{}, fmt.Errorf("config: %v outside range [%v, %v]", val, min, max)
	}
	return Range{val: val, min: min, max: max}, nil
}

func mustIntRange(val, min, max int) Range {
	r, err := NewIntRange(val, min, max)
	if err != nil {
		panic(err)
	}
	return r
}

func mustFloatRange(val, min, max float64) Range {
	r, err := NewFloatRange(val, min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Value returns an int for integer ranges, a float64 otherwise.
func (r Range) Value() any {
	if r.integral {
		return int(r.val)
	}
	return r.val
}

// Min returns the inclusive lower bound.
func (r Range) Min() any {
	if r.integral {
		return int(r.min)
	}
	return r.min
}

// Max returns the inclusive upper bound.
func (r Range) Max() any {
	if r.integral {
		return int(r.max)
	}
	return r.max
}

func (r Range) String() string {
	return r.formatNum(r.val)
}

func (r Range) formatNum(v float64) string {
	if r.integral {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FromConfig implements Validated. The receiver's bounds and subtype apply
// to the parsed value.
func (r Range) FromConfig(raw string) (Validated, error) {
	fail := &OptionParseError{
		Reason: fmt.Sprintf("Value must be between %s and %s.", r.formatNum(r.min), r.formatNum(r.max)),
	}
	s := strings.TrimSpace(raw)
	if r.integral {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fail
		}
		parsed, err := NewIntRange(v, int(r.min), int(r.max))
		if err != nil {
			return nil, fail
		}
		return parsed, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fail
	}
	parsed, err := NewFloatRange(v, r.min, r.max)
	if err != nil {
		return nil, fail
	}
	return parsed, nil
}

// Components holds the four weights applied to frame score components when
// detecting content changes.
type Components struct {
	DeltaHue   float64
	DeltaSat   float64
	DeltaLum   float64
	DeltaEdges float64
}

// DefaultComponents is the standard component weighting.
var DefaultComponents = Components{DeltaHue: 1.0, DeltaSat: 1.0, DeltaLum: 1.0, DeltaEdges: 0.0}

// scoreWeightsIgnoreChars are stripped before splitting a raw weights value.
const scoreWeightsIgnoreChars = ",/()"

// ScoreWeights is a validated 4-tuple of component weights.
type ScoreWeights struct {
	c Components
}

// NewScoreWeights parses raw as exactly four whitespace-separated numbers,
// after replacing any of ",/()" with spaces.
func NewScoreWeights(raw string) (ScoreWeights, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(scoreWeightsIgnoreChars, r) {
			return ' '
		}
		return r
	}, raw)
	fields := strings.Fields(cleaned)
	if len(fields) != 4 {
		return ScoreWeights{}, fmt.Errorf("config: score weights must be specified as four numbers, got %d", len(fields))
	}
	var nums [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ScoreWeights{}, fmt.Errorf("config: invalid score weight %q", f)
		}
		nums[i] = v
	}
	return ScoreWeights{c: Components{
		DeltaHue:   nums[0],
		DeltaSat:   nums[1],
		DeltaLum:   nums[2],
		DeltaEdges: nums[3],
	}}, nil
}

func newScoreWeights(c Components) ScoreWeights {
	return ScoreWeights{c: c}
}

// Value returns the Components tuple.
func (w ScoreWeights) Value() any {
	return w.c
}

func (w ScoreWeights) String() string {
	return fmt.Sprintf("%.3f, %.3f, %.3f, %.3f", w.c.DeltaHue, w.c.DeltaSat, w.c.DeltaLum, w.c.DeltaEdges)
}

// FromConfig implements Validated.
func (w ScoreWeights) FromConfig(raw string) (Validated, error) {
	v, err := NewScoreWeights(raw)
	if err != nil {
		return nil, &OptionParseError{
			Reason: "Score weights must be specified as four numbers in the form (H,S,L,E)," +
				" e.g. (0.9, 0.2, 2.0, 0.5). Commas/brackets/slashes are ignored.",
		}
	}
	return v, nil
}

// KernelSize is an odd positive integer, or -1 for automatic sizing. The
// auto sentinel means no explicit size was chosen.
type KernelSize struct {
	size int
	auto bool
}

// NewKernelSize validates v: -1 selects auto sizing; anything else must be
// odd and non-negative.
func NewKernelSize(v int) (KernelSize, error) {
	switch {
	case v == -1:
		return KernelSize{auto: true}, nil
	case v < 0:
		return KernelSize{}, fmt.Errorf("config: kernel size must not be negative, got %d", v)
	case v%2 == 0:
		return KernelSize{}, fmt.Errorf("config: kernel size must be odd, got %d", v)
	}
	return KernelSize{size: v}, nil
}

func mustKernelSize(v int) KernelSize {
	k, err := NewKernelSize(v)
	if err != nil {
		panic(err)
	}
	return k
}

// Value returns the size as an int, or nil for auto sizing.
func (k KernelSize) Value() any {
	if k.auto {
		return nil
	}
	return k.size
}

// Auto reports whether automatic sizing was selected.
func (k KernelSize) Auto() bool {
	return k.auto
}

func (k KernelSize) String() string {
	if k.auto {
		return "auto"
	}
	return strconv.Itoa(k.size)
}

// FromConfig implements Validated.
func (k KernelSize) FromConfig(raw string) (Validated, error) {
	fail := &OptionParseError{
		Reason: "Value must be an odd integer greater than 1, or set to -1 for auto kernel size.",
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fail
	}
	v, err := NewKernelSize(n)
	if err != nil {
		return nil, fail
	}
	return v, nil
}
