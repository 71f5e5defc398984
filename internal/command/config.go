// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/framecut/framecut/internal/config"
)

// configCommandBuilder builds the "config" subcommand, which dumps the
// effective configuration after override/file/default resolution.
func configCommandBuilder(reg *config.Registry) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show the effective configuration",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "only-set",
				Usage:       "Show only options set in the loaded config file",
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format (text or yaml)",
				Value: "text",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			effective := effectiveConfig(reg, cmd.Bool("only-set"))
			switch cmd.String("format") {
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				defer enc.Close()
				return enc.Encode(effective)
			case "text":
				printConfigText(reg, effective)
				return nil
			default:
				return fmt.Errorf("unknown format: %s", cmd.String("format"))
			}
		},
	}
}

// effectiveConfig resolves every schema option. With onlySet, options the
// loaded file left at their default are omitted.
func effectiveConfig(reg *config.Registry, onlySet bool) map[string]map[string]any {
	out := make(map[string]map[string]any)
	for _, section := range config.Sections() {
		for _, option := range config.OptionsOf(section) {
			if onlySet && reg.IsDefault(section, option) {
				continue
			}
			if out[section] == nil {
				out[section] = make(map[string]any)
			}
			out[section][option] = dumpValue(reg.Value(section, option, nil))
		}
	}
	return out
}

// dumpValue maps resolved values onto plain types for output.
func dumpValue(v any) any {
	switch t := v.(type) {
	case nil:
		return "auto"
	case config.Components:
		return fmt.Sprintf("%.3f, %.3f, %.3f, %.3f", t.DeltaHue, t.DeltaSat, t.DeltaLum, t.DeltaEdges)
	default:
		return t
	}
}

// printConfigText renders the effective config in the same [section]
// key = value form the config file uses.
func printConfigText(reg *config.Registry, effective map[string]map[string]any) {
	for _, section := range config.Sections() {
		options, ok := effective[section]
		if !ok {
			continue
		}
		fmt.Printf("[%s]\n", section)
		for _, option := range config.OptionsOf(section) {
			value, ok := options[option]
			if !ok {
				continue
			}
			marker := ""
			if !reg.IsDefault(section, option) {
				marker = "  # set by config file"
			}
			fmt.Printf("%s = %v%s\n", option, value, marker)
		}
		fmt.Println()
	}
}
