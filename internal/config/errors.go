// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/apex/log"
)

// OptionParseError is returned by a Validated type when a raw config value
// fails its constraints. Reason is a complete, human-readable description of
// the constraint (e.g. "Value must be between 0 and 255.").
type OptionParseError struct {
	Reason string
}

func (e *OptionParseError) Error() string {
	return e.Reason
}

// LogEntry is one line of the registry initialization log.
type LogEntry struct {
	Level   log.Level
	Message string
}

// LoadError is returned when a config file fails to load or validate. Log
// holds every entry accumulated up to the failure; Cause is set for I/O and
// tokenizer failures.
type LoadError struct {
	Log   []LogEntry
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return "config load failed: " + e.Cause.Error()
	}
	var errs []string
	for _, entry := range e.Log {
		if entry.Level == log.ErrorLevel {
			errs = append(errs, entry.Message)
		}
	}
	if len(errs) > 0 {
		return "config load failed:\n" + strings.Join(errs, "\n")
	}
	return "config load failed"
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
