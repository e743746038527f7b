package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/lintreport"
	"github.com/farcloser/lintreport/internal/config"
	"github.com/farcloser/lintreport/internal/console"
	"github.com/farcloser/lintreport/internal/formatter"
	"github.com/farcloser/lintreport/internal/stream"
)

var errInvalidColor = errors.New("must be auto, always, or never")

// settings is the fully resolved configuration of a report run.
type settings struct {
	files     []string
	ignore    []string
	options   lintreport.Options
	notify    bool
	codec     stream.Codec
	remaining string
}

func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Configuration file (default: nearest " + config.FileName + ")",
		},

		// Run scope.
		&cli.StringSliceFlag{
			Name:    "files",
			Aliases: []string{"F"},
			Usage:   "Glob patterns of the linted files; their count marks the end of the run",
		},
		&cli.StringSliceFlag{
			Name:  "ignore",
			Usage: "Gitignore-style patterns excluded from --files",
		},
		&cli.StringSliceFlag{
			Name:    "plugins",
			Aliases: []string{"p"},
			Usage:   "Only report messages from these plugins",
		},

		// Outcome.
		&cli.BoolFlag{
			Name:  "clear-messages",
			Usage: "Drop reported messages from the units written to --remaining",
		},
		&cli.BoolFlag{
			Name:    "throw-error",
			Aliases: []string{"e"},
			Usage:   "Exit non-zero when the run found warnings or errors",
		},
		&cli.StringFlag{
			Name:  "failure-scope",
			Usage: "Messages deciding the failure: run (any unit), last-unit (unit completing the run)",
			Value: "run",
		},
		&cli.BoolFlag{
			Name:  "notify",
			Usage: "Send a desktop notification when the run fails",
		},

		// Rendering.
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, console, json, markdown",
			Value:   formatter.StyleText,
		},
		&cli.BoolFlag{
			Name:  "sort-by-position",
			Usage: "Sort messages by line and column",
			Value: true,
		},
		&cli.StringFlag{
			Name:  "positionless",
			Usage: "Placement of messages without a position: first, last, any",
			Value: string(formatter.PositionlessFirst),
		},
		&cli.BoolFlag{
			Name:  "no-icon",
			Usage: "Do not print severity icons",
		},
		&cli.BoolFlag{
			Name:  "no-plugin",
			Usage: "Do not print plugin names",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: "Colorize output: auto, always, never",
			Value: "auto",
		},

		// Streams.
		&cli.StringFlag{
			Name:    "input-format",
			Aliases: []string{"i"},
			Usage:   "Encoding of the unit streams: jsonl, msgpack",
			Value:   "jsonl",
		},
		&cli.StringFlag{
			Name:  "remaining",
			Usage: "Write every unit with its remaining messages as JSON Lines to this file",
		},
	}
}

// resolveSettings merges the configuration file with the command flags.
// Flags set on the command line win.
func resolveSettings(cmd *cli.Command, cfg *config.Config) (*settings, error) {
	codec, err := stream.ParseCodec(cmd.String("input-format"))
	if err != nil {
		return nil, fmt.Errorf("--input-format: %w", err)
	}

	set := &settings{
		files:     pickSlice(cmd, "files", cfg.Files),
		ignore:    pickSlice(cmd, "ignore", cfg.Ignore),
		notify:    pickBool(cmd, "notify", cfg.Notify),
		codec:     codec,
		remaining: cmd.String("remaining"),
	}

	scope, err := lintreport.ParseScope(pickString(cmd, "failure-scope", cfg.FailureScope))
	if err != nil {
		return nil, fmt.Errorf("--failure-scope: %w", err)
	}

	positionless, err := formatter.ParsePositionless(pickString(cmd, "positionless", cfg.Format.Positionless))
	if err != nil {
		return nil, fmt.Errorf("--positionless: %w", err)
	}

	color, err := resolveColor(cmd.String("color"))
	if err != nil {
		return nil, fmt.Errorf("--color: %w", err)
	}

	sortByPosition := pickBool(cmd, "sort-by-position", cfg.Format.SortByPosition)

	set.options = lintreport.Options{
		Plugins:       pickSlice(cmd, "plugins", cfg.Plugins),
		ClearMessages: pickBool(cmd, "clear-messages", cfg.ClearMessages),
		ThrowError:    pickBool(cmd, "throw-error", cfg.ThrowError),
		FailureScope:  scope,
		Format: lintreport.FormatOptions{
			SortByPosition: &sortByPosition,
			Positionless:   positionless,
			NoIcon:         pickBool(cmd, "no-icon", cfg.Format.NoIcon),
			NoPlugin:       pickBool(cmd, "no-plugin", cfg.Format.NoPlugin),
			Style:          pickString(cmd, "format", cfg.Format.Style),
			Color:          color,
		},
	}

	return set, nil
}

func resolveColor(mode string) (bool, error) {
	switch mode {
	case "auto", "":
		return console.ColorFor(os.Stdout), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, errInvalidColor
	}
}

func pickSlice(cmd *cli.Command, name string, fromFile []string) []string {
	if cmd.IsSet(name) || len(fromFile) == 0 {
		return cmd.StringSlice(name)
	}

	return fromFile
}

func pickString(cmd *cli.Command, name, fromFile string) string {
	if cmd.IsSet(name) || fromFile == "" {
		return cmd.String(name)
	}

	return fromFile
}

func pickBool(cmd *cli.Command, name string, fromFile *bool) bool {
	if cmd.IsSet(name) || fromFile == nil {
		return cmd.Bool(name)
	}

	return *fromFile
}
