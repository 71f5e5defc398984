// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects how a Position is rendered in program output.
type Format int

const (
	// FormatFrames renders the exact frame number.
	FormatFrames Format = iota
	// FormatTimecode renders HH:MM:SS.fff.
	FormatTimecode
	// FormatSeconds renders SSS.sss.
	FormatSeconds
)

// ParseFormat resolves a format label (case-insensitive) to a Format.
func ParseFormat(label string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "frames":
		return FormatFrames, nil
	case "timecode":
		return FormatTimecode, nil
	case "seconds":
		return FormatSeconds, nil
	}
	return 0, fmt.Errorf("timecode: unknown format %q", label)
}

func (f Format) String() string {
	switch f {
	case FormatFrames:
		return "frames"
	case FormatTimecode:
		return "timecode"
	case FormatSeconds:
		return "seconds"
	}
	return "unknown"
}

// Render formats the position according to f.
func (f Format) Render(p Position) string {
	switch f {
	case FormatFrames:
		return strconv.Itoa(p.Frames())
	case FormatSeconds:
		return fmt.Sprintf("%.3f", p.Seconds())
	default:
		return p.Timecode()
	}
}
