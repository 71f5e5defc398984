// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/framecut/framecut/internal/config"
	"github.com/framecut/framecut/internal/log"
	"github.com/framecut/framecut/internal/timecode"
	"github.com/framecut/framecut/internal/util"
)

// detectSections lists the detector commands exposed on the CLI, in the
// order they appear in --help.
var detectSections = []string{
	"detect-adaptive",
	"detect-content",
	"detect-hash",
	"detect-hist",
	"detect-threshold",
}

// detectUsage is the one-line help summary per detector command.
var detectUsage = map[string]string{
	"detect-adaptive":  "Find cuts using a rolling average of frame changes",
	"detect-content":   "Find fast cuts using weighted frame score changes",
	"detect-hash":      "Find fast cuts using perceptual hashing",
	"detect-hist":      "Find fast cuts using Y channel histogram differences",
	"detect-threshold": "Find fade in/out events using average frame intensity",
}

// optionUsage describes the options shared across detector sections. Options
// not listed fall back to a generic description.
var optionUsage = map[string]string{
	"add-last-scene":  "Always include the last scene even without a final fade out",
	"bins":            "Number of histogram bins",
	"fade-bias":       "Percent to bias scene cuts towards a fade",
	"filter-mode":     "How consecutive cuts within min-scene-len are handled",
	"frame-window":    "Size of the rolling average window, in frames",
	"kernel-size":     "Noise reduction kernel size (odd integer, or -1 for auto)",
	"lowpass":         "Hash lowpass filter amount",
	"luma-only":       "Only consider changes in brightness",
	"min-content-val": "Minimum threshold the frame score must exceed",
	"min-delta-hsv":   "Minimum threshold the frame score must exceed (legacy name)",
	"min-scene-len":   "Shortest allowed scene length (frames, seconds, or HH:MM:SS)",
	"size":            "Size of the square of low frequency data to include",
	"threshold":       "Score threshold to trigger a new scene",
	"weights":         "Component weights as four numbers, e.g. (1.0, 1.0, 1.0, 0.0)",
}

// detectCommandBuilder builds one detector subcommand. Every schema option
// of the detector's config section becomes a flag, and the flag help shows
// the current config-file setting or default.
func detectCommandBuilder(reg *config.Registry, section string) *cli.Command {
	var flags []cli.Flag
	for _, option := range config.OptionsOf(section) {
		flags = append(flags, optionFlag(reg, section, option))
	}
	return &cli.Command{
		Name:  section,
		Usage: detectUsage[section],
		Flags: flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			return printEffectiveSettings(reg, section, cmd)
		},
	}
}

// optionFlag maps a schema option onto a CLI flag of the matching type.
// Validated options (timecodes, ranges, weights, kernel sizes) take their
// raw string form; the registry's parsers own their validation.
func optionFlag(reg *config.Registry, section, option string) cli.Flag {
	opt, _ := config.Lookup(section, option)
	usage := optionUsage[option]
	if usage == "" {
		usage = "Set the " + option + " option"
	}
	usage += reg.HelpString(section, option, nil)

	switch opt.Kind {
	case config.KindBool:
		return &cli.BoolFlag{Name: option, Usage: usage, HideDefault: true}
	case config.KindInt:
		return &cli.IntFlag{Name: option, Usage: usage, HideDefault: true}
	case config.KindFloat:
		return &cli.FloatFlag{Name: option, Usage: usage, HideDefault: true}
	default:
		return &cli.StringFlag{Name: option, Usage: usage, HideDefault: true}
	}
}

// flagOverride returns the flag's value as a per-invocation override, or
// nil when the flag was not given.
func flagOverride(cmd *cli.Command, option string, kind config.Kind) any {
	if !cmd.IsSet(option) {
		return nil
	}
	switch kind {
	case config.KindBool:
		return cmd.Bool(option)
	case config.KindInt:
		return int(cmd.Int(option))
	case config.KindFloat:
		return cmd.Float(option)
	default:
		return cmd.String(option)
	}
}

// printEffectiveSettings resolves every option of the detector section
// through the override > file > default chain and prints the result. This
// is where a detection run would pick up its parameters.
func printEffectiveSettings(reg *config.Registry, section string, cmd *cli.Command) error {
	outDir, err := util.ResolveOutputDir(reg.Value("global", "output", nil).(string))
	if err != nil {
		log.Warnf("output directory not usable: %v", err)
	} else {
		log.Debugf("output directory: %s", outDir)
	}

	fmt.Printf("[%s]\n", section)
	for _, option := range config.OptionsOf(section) {
		opt, _ := config.Lookup(section, option)
		value := reg.Value(section, option, flagOverride(cmd, option, opt.Kind))
		fmt.Printf("  %s = %s\n", option, renderSetting(reg, option, value))
	}
	return nil
}

// renderSetting formats one resolved value for display. Timecodes honor the
// configured list-scenes cut-format.
func renderSetting(reg *config.Registry, option string, value any) string {
	switch v := value.(type) {
	case nil:
		return "auto"
	case config.Components:
		return fmt.Sprintf("%.3f, %.3f, %.3f, %.3f", v.DeltaHue, v.DeltaSat, v.DeltaLum, v.DeltaEdges)
	case string:
		if option == "min-scene-len" {
			if pos, err := timecode.Parse(v, timecode.NominalRate); err == nil {
				format, err := timecode.ParseFormat(reg.Value("list-scenes", "cut-format", nil).(string))
				if err == nil {
					return format.Render(pos)
				}
			}
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
