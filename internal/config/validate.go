// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// rawOption is one key/value pair as produced by the tokenizer, before any
// type coercion.
type rawOption struct {
	name  string
	value string
}

// rawSection is a tokenized config section with its options in file order.
type rawSection struct {
	name    string
	options []rawOption
}

// rawConfig is the tokenized form of a config file: sections in file order,
// each holding ordered (option, raw value) pairs.
type rawConfig []rawSection

// lookup returns the raw value of (section, option), if present.
func (rc rawConfig) lookup(section, option string) (string, bool) {
	for _, sec := range rc {
		if sec.name != section {
			continue
		}
		for _, opt := range sec.options {
			if opt.name == option {
				return opt.value, true
			}
		}
	}
	return "", false
}

// validateStructure checks every section and option name in the file against
// the schema. It always runs to completion so all structural problems are
// reported together. Options inside an unknown section are not flagged a
// second time.
func validateStructure(rc rawConfig) []string {
	var errors []string
	for _, sec := range rc {
		if !HasSection(sec.name) {
			errors = append(errors, fmt.Sprintf("Unsupported config section: [%s]", sec.name))
			continue
		}
		for _, opt := range sec.options {
			if _, ok := Lookup(sec.name, opt.name); !ok {
				errors = append(errors, fmt.Sprintf("Unsupported config option in [%s]: %s", sec.name, opt.name))
			}
		}
	}
	return errors
}

// parseValues coerces every file-present option to its schema type, walking
// the schema in sorted order. Errors accumulate; parsing never stops at the
// first failure. The returned map holds only options present in the file.
func parseValues(rc rawConfig) (map[string]map[string]any, []string) {
	resolved := make(map[string]map[string]any)
	var errors []string

	for _, section := range Sections() {
		for _, option := range OptionsOf(section) {
			raw, ok := rc.lookup(section, option)
			if !ok {
				continue
			}
			opt, _ := Lookup(section, option)

			value, errStr := parseOne(section, option, opt, raw)
			if errStr != "" {
				errors = append(errors, errStr)
				continue
			}
			if resolved[section] == nil {
				resolved[section] = make(map[string]any)
			}
			resolved[section][option] = value
		}
	}
	return resolved, errors
}

// parseOne coerces a single raw value. It returns either the typed value or
// a human-readable error string.
func parseOne(section, option string, opt Option, raw string) (any, string) {
	switch opt.Kind {
	case KindBool:
		v, err := parseBoolLiteral(raw)
		if err != nil {
			return nil, invalidValue(section, option, raw, opt.Kind)
		}
		return v, ""

	case KindInt:
		v, err := parseIntLiteral(raw)
		if err != nil {
			return nil, invalidValue(section, option, raw, opt.Kind)
		}
		return v, ""

	case KindFloat:
		v, err := parseFloatLiteral(raw)
		if err != nil {
			return nil, invalidValue(section, option, raw, opt.Kind)
		}
		return v, ""

	case KindEnum:
		label := strings.ToLower(collapse(raw))
		for _, choice := range opt.Choices {
			if label == choice {
				return choice, ""
			}
		}
		return nil, invalidChoice(section, option, raw, opt.Choices)

	case KindValidated:
		def := opt.Default.(Validated)
		v, err := def.FromConfig(raw)
		if err != nil {
			return nil, fmt.Sprintf("Invalid [%s] value for %s:\n  %s\n%s", section, option, raw, err.Error())
		}
		return v, ""

	default:
		value := collapse(raw)
		if len(opt.Choices) > 0 && !containsFold(opt.Choices, value) {
			return nil, invalidChoice(section, option, raw, opt.Choices)
		}
		return value, ""
	}
}

// invalidValue formats a coercion failure for the bool/int/float kinds.
func invalidValue(section, option, raw string, kind Kind) string {
	return fmt.Sprintf("Invalid [%s] value for %s: %s is not a valid %s.", section, option, raw, kind.Label())
}

// invalidChoice formats a failed choice-list or enum-label match.
func invalidChoice(section, option, raw string, choices []string) string {
	return fmt.Sprintf("Invalid [%s] value for %s: %s. Must be one of: %s.",
		section, option, raw, strings.Join(choices, ", "))
}

// collapse replaces each embedded line break with one space and strips
// leading/trailing whitespace. Consecutive breaks yield consecutive spaces.
func collapse(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// containsFold reports case-insensitive membership in lowercase choices.
func containsFold(choices []string, value string) bool {
	lower := strings.ToLower(value)
	for _, c := range choices {
		if lower == c {
			return true
		}
	}
	return false
}

// parseBoolLiteral reads the common yes/no spellings.
func parseBoolLiteral(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("config: not a yes/no value: %q", raw)
}

// parseIntLiteral reads a base-10 integer.
func parseIntLiteral(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("config: not an integer: %q", raw)
	}
	return v, nil
}

// parseFloatLiteral reads a numeric literal.
func parseFloatLiteral(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("config: not a number: %q", raw)
	}
	return v, nil
}
