package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/lintreport"
	"github.com/farcloser/lintreport/internal/stream"
	"github.com/farcloser/lintreport/internal/types"
)

var errDigestArgs = errors.New("expected exactly one argument: unit stream path or \"-\" for stdin")

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Produce a summary digest from a stream of lint results",
		ArgsUsage: "<units.jsonl | ->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "plugin",
				Usage: "Show every message produced by a specific plugin",
			},
			&cli.StringFlag{
				Name:    "input-format",
				Aliases: []string{"i"},
				Usage:   "Encoding of the unit stream: jsonl, msgpack",
				Value:   "jsonl",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errDigestArgs, cmd.NArg())
			}

			codec, err := stream.ParseCodec(cmd.String("input-format"))
			if err != nil {
				return fmt.Errorf("--input-format: %w", err)
			}

			return runDigest(os.Stdout, cmd.Args().First(), codec, cmd.String("plugin"))
		},
	}
}

func runDigest(out io.Writer, path string, codec stream.Codec, pluginFilter string) error {
	reader, err := stream.Open(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	var units []*types.Unit

	err = stream.Decode(reader, codec, func(unit *types.Unit) error {
		units = append(units, unit)

		return nil
	})
	if err != nil {
		return err
	}

	printDigest(out, computeDigest(units))

	if pluginFilter != "" {
		printPluginDetail(out, units, pluginFilter)
	}

	return nil
}

// pluginBreakdown tracks per-plugin message counts for the digest.
type pluginBreakdown struct {
	Plugin   string
	Total    int
	Warnings int
	Errors   int
	Other    int
}

// digest is the summary of a unit stream.
type digest struct {
	Units        int
	Clean        int
	Messages     int
	Warnings     int
	Errors       int
	Other        int
	Sources      int
	MeanPerSrc   float64
	StdDevPerSrc float64
	MaxPerSrc    float64
	Plugins      []*pluginBreakdown
}

func computeDigest(units []*types.Unit) digest {
	result := digest{Units: len(units)}
	plugins := map[string]*pluginBreakdown{}

	perSource := map[string]float64{}

	var sourceOrder []string

	for _, unit := range units {
		if len(unit.Messages) == 0 {
			result.Clean++

			continue
		}

		groups := lintreport.GroupBySource(unit.Messages, unit.SourceKey())
		for _, group := range groups {
			if _, ok := perSource[group.Source]; !ok {
				sourceOrder = append(sourceOrder, group.Source)
			}

			perSource[group.Source] += float64(len(group.Messages))
		}

		for _, message := range unit.Messages {
			result.Messages++

			breakdown, ok := plugins[message.Plugin]
			if !ok {
				breakdown = &pluginBreakdown{Plugin: message.Plugin}
				plugins[message.Plugin] = breakdown
			}

			breakdown.Total++

			switch message.Type {
			case types.TypeWarning:
				result.Warnings++
				breakdown.Warnings++
			case types.TypeError:
				result.Errors++
				breakdown.Errors++
			default:
				result.Other++
				breakdown.Other++
			}
		}
	}

	counts := make([]float64, 0, len(sourceOrder))
	for _, source := range sourceOrder {
		counts = append(counts, perSource[source])
	}

	result.Sources = len(counts)

	if len(counts) > 0 {
		result.MeanPerSrc, result.StdDevPerSrc = stat.MeanStdDev(counts, nil)
		result.MaxPerSrc = floats.Max(counts)
	}

	for _, breakdown := range plugins {
		result.Plugins = append(result.Plugins, breakdown)
	}

	slices.SortFunc(result.Plugins, func(a, b *pluginBreakdown) int {
		if a.Total != b.Total {
			return b.Total - a.Total
		}

		return strings.Compare(a.Plugin, b.Plugin)
	})

	return result
}

func printDigest(out io.Writer, result digest) {
	fmt.Fprintln(out, "=== lintreport digest ===")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Units:     %d\n", result.Units)
	fmt.Fprintf(out, "Clean:     %d\n", result.Clean)
	fmt.Fprintf(out, "Messages:  %d\n", result.Messages)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Messages By Type ---")
	fmt.Fprintf(out, "  Warnings:  %d\n", result.Warnings)
	fmt.Fprintf(out, "  Errors:    %d\n", result.Errors)
	fmt.Fprintf(out, "  Other:     %d\n", result.Other)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Messages Per Source ---")
	fmt.Fprintf(out, "  Sources:  %d\n", result.Sources)

	if result.Sources > 0 {
		fmt.Fprintf(out, "  mean: %.2f  stddev: %.2f  max: %.0f\n",
			result.MeanPerSrc, result.StdDevPerSrc, result.MaxPerSrc)
	}

	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Messages By Plugin ---")

	for _, bd := range result.Plugins {
		name := bd.Plugin
		if name == "" {
			name = "(none)"
		}

		fmt.Fprintf(out, "  %s\n", name)
		fmt.Fprintf(out, "    total: %d  warnings: %d  errors: %d  other: %d\n",
			bd.Total, bd.Warnings, bd.Errors, bd.Other)
	}
}

func printPluginDetail(out io.Writer, units []*types.Unit, plugin string) {
	fmt.Fprintln(out)

	var groups []types.Group

	for _, unit := range units {
		logged := lintreport.Filter(unit.Messages, []string{plugin})
		groups = append(groups, lintreport.GroupBySource(logged, unit.SourceKey())...)
	}

	if len(groups) == 0 {
		fmt.Fprintf(out, "No messages from %s\n", plugin)

		return
	}

	fmt.Fprintf(out, "=== %s: %d sources ===\n\n", plugin, len(groups))

	for _, group := range groups {
		source := group.Source
		if source == "" {
			source = "(unknown source)"
		}

		fmt.Fprintf(out, "  %s\n", source)

		for _, message := range group.Messages {
			fmt.Fprintf(out, "    [%s] %s\n", message.Type, message.Text)
		}

		fmt.Fprintln(out)
	}
}
