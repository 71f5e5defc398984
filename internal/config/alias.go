// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package config

// optionKey identifies a (section, option) pair.
type optionKey struct {
	section string
	option  string
}

// optionAliases maps legacy option names to their current equivalents. Both
// names remain valid schema entries; reads of either name fall back to a
// value the file set under the other, so a renamed option keeps working for
// old config files and old call sites alike.
var optionAliases = map[optionKey]optionKey{
	{"detect-adaptive", "min-delta-hsv"}: {"detect-adaptive", "min-content-val"},
}

// aliasFor returns the counterpart name of (section, option), if one
// exists, in either direction.
func aliasFor(section, option string) (optionKey, bool) {
	key := optionKey{section, option}
	if current, ok := optionAliases[key]; ok {
		return current, true
	}
	for legacy, current := range optionAliases {
		if current == key {
			return legacy, true
		}
	}
	return optionKey{}, false
}
