// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"gopkg.in/ini.v1"
)

// Registry loads, validates, and stores the user configuration. After a
// successful load it is effectively read-only and safe for concurrent
// readers.
type Registry struct {
	resolved    map[string]map[string]any
	initLog     []LogEntry
	initialized bool
}

// New constructs a Registry and loads the config file at path. If path is
// empty, the locator is consulted for a per-user file; a nil locator means
// DefaultLocator. A missing per-user file is not an error.
//
// On load failure New returns a *LoadError carrying the accumulated init
// log, together with a still-usable registry: Initialized reports false, the
// resolved map is empty (all reads fall back to schema defaults), and the
// init log is retained for inspection. Callers choose strict startup by
// propagating the error, or lenient startup by ignoring it.
func New(path string, locator Locator) (*Registry, error) {
	r := &Registry{resolved: make(map[string]map[string]any)}
	if locator == nil {
		locator = DefaultLocator
	}
	if err := r.loadFromDisk(path, locator); err != nil {
		// No partial success: discard anything parsed before the failure.
		r.resolved = make(map[string]map[string]any)
		if le, ok := err.(*LoadError); ok && le.Cause != nil {
			r.log(log.ErrorLevel, "Error: "+strings.ReplaceAll(le.Cause.Error(), "\t", "  "))
		}
		return r, err
	}
	r.initialized = true
	return r, nil
}

// loadFromDisk resolves the file path, tokenizes the file, and runs the
// two-pass validation. Any error return is a *LoadError.
func (r *Registry) loadFromDisk(path string, locate Locator) error {
	if path != "" {
		r.log(log.InfoLevel, fmt.Sprintf("Loading config from file:\n  %s", path))
		if _, err := os.Stat(path); err != nil {
			r.log(log.ErrorLevel, "File not found: "+path)
			return r.failure(nil)
		}
	} else {
		p, ok := locate()
		if !ok {
			r.log(log.DebugLevel, "User config file not found.")
			return nil
		}
		path = p
		r.log(log.InfoLevel, fmt.Sprintf("Loading user config file:\n  %s", path))
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return r.failure(err)
	}
	raw, err := tokenize(contents)
	if err != nil {
		return r.failure(err)
	}

	// The file is lexically sound; check names first, then values. Value
	// parsing is skipped entirely when the structure is already wrong.
	errs := validateStructure(raw)
	var resolved map[string]map[string]any
	if len(errs) == 0 {
		resolved, errs = parseValues(raw)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			r.log(log.ErrorLevel, e)
		}
		return r.failure(nil)
	}
	r.resolved = resolved
	return nil
}

// failure snapshots the init log into a *LoadError.
func (r *Registry) failure(cause error) error {
	return &LoadError{Log: append([]LogEntry(nil), r.initLog...), Cause: cause}
}

func (r *Registry) log(level log.Level, msg string) {
	r.initLog = append(r.initLog, LogEntry{Level: level, Message: msg})
}

// tokenize hands the file contents to the INI tokenizer and converts the
// result into ordered (section, option, raw value) form.
func tokenize(contents []byte) (rawConfig, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		InsensitiveKeys:            true,
		KeyValueDelimiters:         "=:",
	}, contents)
	if err != nil {
		return nil, err
	}
	var rc rawConfig
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		raw := rawSection{name: sec.Name()}
		for _, key := range keys {
			raw.options = append(raw.options, rawOption{name: key.Name(), value: key.Value()})
		}
		rc = append(rc, raw)
	}
	return rc, nil
}

// Initialized reports whether the registry loaded without errors.
func (r *Registry) Initialized() bool {
	return r.initialized
}

// ConfigDict returns the resolved section -> option -> value map, holding
// only options explicitly present in the loaded file. Callers must not
// mutate it.
func (r *Registry) ConfigDict() map[string]map[string]any {
	return r.resolved
}

// ConsumeInitLog returns the initialization log and resets it; subsequent
// calls return nil until another load occurs.
func (r *Registry) ConsumeInitLog() []LogEntry {
	entries := r.initLog
	r.initLog = nil
	return entries
}

// mustOption asserts the (section, option) pair exists in the schema. An
// unknown pair is a programming error at the call site, not user input.
func mustOption(section, option string) Option {
	opt, ok := Lookup(section, option)
	if !ok {
		panic(fmt.Sprintf("config: unknown option [%s] %s", section, option))
	}
	return opt
}

// setting returns the file-set value of (section, option), if any.
func (r *Registry) setting(section, option string) (any, bool) {
	if opts, ok := r.resolved[section]; ok {
		if v, ok := opts[option]; ok {
			return v, true
		}
	}
	return nil, false
}

// IsDefault reports whether the loaded file left (section, option) unset.
// A value set under an aliased name counts as set for both names.
func (r *Registry) IsDefault(section, option string) bool {
	mustOption(section, option)
	if _, ok := r.setting(section, option); ok {
		return false
	}
	if counterpart, aliased := aliasFor(section, option); aliased {
		if _, ok := r.setting(counterpart.section, counterpart.option); ok {
			return false
		}
	}
	return true
}

// Value resolves (section, option) with precedence: override, then the
// loaded file (directly or through an alias), then the schema default.
// Validated values are returned unwrapped.
func (r *Registry) Value(section, option string, override any) any {
	opt := mustOption(section, option)
	if override != nil {
		return override
	}
	value, ok := r.setting(section, option)
	if !ok {
		if counterpart, aliased := aliasFor(section, option); aliased {
			if v, set := r.setting(counterpart.section, counterpart.option); set {
				value, ok = v, true
				log.Debugf("config: [%s] %s resolved through aliased option %s",
					section, option, counterpart.option)
			}
		}
	}
	if !ok {
		value = opt.Default
	}
	if v, isValidated := value.(Validated); isValidated {
		return v.Value()
	}
	return value
}

// HelpString renders the current setting of (section, option) for help
// text: " [setting: v]" when the file set it, otherwise " [default: v]".
// Booleans render as on/off when set. When showDefault is nil, defaults are
// shown except for boolean options whose default is false.
func (r *Registry) HelpString(section, option string, showDefault *bool) string {
	opt := mustOption(section, option)
	isFlag := opt.Kind == KindBool
	if v, ok := r.setting(section, option); ok {
		valueStr := formatValue(v)
		if isFlag {
			valueStr = "off"
			if v == true {
				valueStr = "on"
			}
		}
		return fmt.Sprintf(" [setting: %s]", valueStr)
	}
	if showDefault != nil && !*showDefault {
		return ""
	}
	if showDefault == nil && isFlag && opt.Default == false {
		return ""
	}
	return fmt.Sprintf(" [default: %s]", formatValue(opt.Default))
}

// formatValue renders a stored or default value for display.
func formatValue(v any) string {
	switch t := v.(type) {
	case Validated:
		return t.String()
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
