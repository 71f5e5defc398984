// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NominalRate is a stand-in frame rate used when a timecode string only needs
// a syntax check and the real source rate is not yet known.
const NominalRate = 100.0

// minRate rejects degenerate frame rates that would make every position
// collapse onto frame zero.
const minRate = 1.0e-6

// Position is a frame-accurate point in a video, stored as a frame number at
// a fixed frame rate.
type Position struct {
	frame int
	rate  float64
}

// New returns a Position for the given frame number and frame rate.
func New(frame int, rate float64) (Position, error) {
	if frame < 0 {
		return Position{}, fmt.Errorf("timecode: frame number must be non-negative, got %d", frame)
	}
	if rate < minRate {
		return Position{}, fmt.Errorf("timecode: invalid frame rate %v", rate)
	}
	return Position{frame: frame, rate: rate}, nil
}

// FromSeconds returns the Position closest to the given number of seconds.
func FromSeconds(seconds, rate float64) (Position, error) {
	if seconds < 0 {
		return Position{}, fmt.Errorf("timecode: seconds must be non-negative, got %v", seconds)
	}
	if rate < minRate {
		return Position{}, fmt.Errorf("timecode: invalid frame rate %v", rate)
	}
	return Position{frame: int(math.Round(seconds * rate)), rate: rate}, nil
}

// Parse converts a timecode string into a Position at the given frame rate.
// Accepted forms:
//   - an exact frame number ("100")
//   - seconds, bare or with an "s" suffix ("100.0", "1.5s")
//   - HH:MM:SS or HH:MM:SS.fff
func Parse(raw string, rate float64) (Position, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Position{}, fmt.Errorf("timecode: empty value")
	}

	if strings.Contains(s, ":") {
		return parseClock(s, rate)
	}

	if n := strings.TrimSuffix(strings.TrimSuffix(s, "s"), "S"); n != s {
		seconds, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return Position{}, fmt.Errorf("timecode: invalid seconds value %q", raw)
		}
		return FromSeconds(seconds, rate)
	}

	// A string of digits is an exact frame number.
	if frame, err := strconv.Atoi(s); err == nil {
		return New(frame, rate)
	}

	// Anything else numeric is a quantity of seconds.
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Position{}, fmt.Errorf("timecode: unrecognized value %q", raw)
	}
	return FromSeconds(seconds, rate)
}

// parseClock parses the HH:MM:SS[.fff] form.
func parseClock(s string, rate float64) (Position, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Position{}, fmt.Errorf("timecode: expected HH:MM:SS[.fff], got %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return Position{}, fmt.Errorf("timecode: invalid hours in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes >= 60 {
		return Position{}, fmt.Errorf("timecode: invalid minutes in %q", s)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return Position{}, fmt.Errorf("timecode: invalid seconds in %q", s)
	}
	total := float64(hours)*3600 + float64(minutes)*60 + seconds
	return FromSeconds(total, rate)
}

// Frames returns the frame number of the position.
func (p Position) Frames() int {
	return p.frame
}

// Rate returns the frame rate the position was constructed at.
func (p Position) Rate() float64 {
	return p.rate
}

// Seconds returns the position in seconds.
func (p Position) Seconds() float64 {
	if p.rate < minRate {
		return 0
	}
	return float64(p.frame) / p.rate
}

// Timecode renders the position as HH:MM:SS.fff.
func (p Position) Timecode() string {
	total := p.Seconds()
	hours := int(total) / 3600
	minutes := (int(total) % 3600) / 60
	seconds := total - float64(hours*3600+minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, seconds)
}

func (p Position) String() string {
	return p.Timecode()
}
