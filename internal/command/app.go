// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/framecut/framecut/internal/config"
	"github.com/framecut/framecut/internal/log"
)

// InitApp loads the config registry and builds the framecut CLI around it.
// The registry must exist before the command tree does, because flag help
// text embeds the loaded settings.
//
// A failed config load aborts startup unless --lenient was given, in which
// case the registry runs uninitialized and every option resolves to its
// schema default.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	reg, err := config.New(configPathFromArgs(args), nil)
	if err != nil {
		if !hasLenientFlag(args) {
			flushInitLog(reg)
			return nil, err
		}
		log.Warnf("config file had errors, continuing with default settings")
	}

	// The config file may raise or lower verbosity, unless the env var
	// already pinned it.
	if os.Getenv("FRAMECUT_LOG") == "" && reg.Initialized() {
		if v, ok := reg.Value("global", "verbosity", nil).(string); ok {
			log.SetVerbosity(v)
		}
	}
	flushInitLog(reg)

	app := &cli.Command{
		Name:  "framecut",
		Usage: "Video scene-cut detection",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load settings from the config file at PATH",
			},
			&cli.BoolFlag{
				Name:        "lenient",
				Usage:       "Run with default settings if the config file fails to load",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "framecut version info",
				HideDefault: true,
			},
		},
	}

	for _, section := range detectSections {
		app.Commands = append(app.Commands, detectCommandBuilder(reg, section))
	}
	app.Commands = append(app.Commands, configCommandBuilder(reg))

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// configPathFromArgs extracts the value of -c/--config before the CLI
// parses flags, since the registry has to exist first.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "-c" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-c="):
			return strings.TrimPrefix(a, "-c=")
		}
	}
	return ""
}

// hasLenientFlag reports whether --lenient appears in the raw args.
func hasLenientFlag(args []string) bool {
	for _, a := range args {
		if a == "--lenient" {
			return true
		}
	}
	return false
}

// flushInitLog replays the registry's consumable init log through the
// logger at the severity each entry was recorded with.
func flushInitLog(reg *config.Registry) {
	for _, entry := range reg.ConsumeInitLog() {
		log.Logf(entry.Level, "%s", entry.Message)
	}
}
