//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/farcloser/lintreport"
	"github.com/farcloser/lintreport/internal/config"
	"github.com/farcloser/lintreport/internal/console"
	"github.com/farcloser/lintreport/internal/expand"
	"github.com/farcloser/lintreport/internal/integration/notify"
	"github.com/farcloser/lintreport/internal/stream"
	"github.com/farcloser/lintreport/internal/types"
	"github.com/farcloser/lintreport/version"
)

var errNoInputs = errors.New("expected at least one argument: unit stream path or \"-\" for stdin")

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Group, render and count the messages of a stream of lint results",
		ArgsUsage: "<units.jsonl | -> [...]",
		Flags:     reportFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return errNoInputs
			}

			workDir, err := os.Getwd()
			if err != nil {
				return err
			}

			cfg, err := config.Discover(cmd.String("config"), workDir)
			if err != nil {
				return err
			}

			set, err := resolveSettings(cmd, cfg)
			if err != nil {
				return err
			}

			return runReport(ctx, set, cmd.Args().Slice())
		},
	}
}

func runReport(ctx context.Context, set *settings, inputs []string) error {
	// The expected count is known before the first unit is processed.
	run, err := lintreport.NewRun(ctx, expand.Files, set.files, set.ignore)
	if err != nil {
		return err
	}

	var sink lintreport.Sink = console.New(os.Stdout, set.options.Format.Color)
	if set.notify {
		sink = &notifySink{Sink: sink, ctx: ctx}
	}

	reporter, err := lintreport.New(set.options, sink)
	if err != nil {
		return err
	}

	units, err := readInputs(ctx, inputs, set.codec)
	if err != nil {
		return err
	}

	var encoder *stream.Encoder

	if set.remaining != "" {
		out, err := os.Create(set.remaining)
		if err != nil {
			return fmt.Errorf("creating %s: %w", set.remaining, err)
		}
		defer out.Close()

		encoder = stream.NewEncoder(out)
	}

	var failure error

	for _, unit := range units {
		outcome, err := reporter.Process(run, unit)
		if err != nil {
			if !errors.Is(err, lintreport.ErrRunFailed) {
				return err
			}

			failure = err
		}

		if encoder != nil {
			outcome.Apply(unit)

			if err := encoder.Encode(unit); err != nil {
				return fmt.Errorf("writing %s: %w", set.remaining, err)
			}
		}
	}

	if err := reporter.Finalize(run); err != nil {
		failure = err
	}

	slog.Debug("report done",
		"units", run.Invocations(),
		"reporting", run.Reporting(),
		"problems", run.Problems(),
	)

	return failure
}

// readInputs decodes every input concurrently and returns the units in input order.
func readInputs(ctx context.Context, inputs []string, codec stream.Codec) ([]*types.Unit, error) {
	perInput := make([][]*types.Unit, len(inputs))

	group, ctx := errgroup.WithContext(ctx)

	for idx, path := range inputs {
		group.Go(func() error {
			reader, err := stream.Open(path)
			if err != nil {
				return err
			}
			defer reader.Close()

			return stream.Decode(reader, codec, func(unit *types.Unit) error {
				if err := ctx.Err(); err != nil {
					return err
				}

				perInput[idx] = append(perInput[idx], unit)

				return nil
			})
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var units []*types.Unit
	for _, chunk := range perInput {
		units = append(units, chunk...)
	}

	return units, nil
}

// notifySink adds a desktop notification to the failure summary.
type notifySink struct {
	lintreport.Sink

	ctx context.Context //nolint:containedctx // scoped to one report command
}

func (s *notifySink) Failed(files int) {
	s.Sink.Failed(files)

	message := fmt.Sprintf("Warnings or errors were found in %d files", files)
	if err := notify.Send(s.ctx, version.Name(), message); err != nil {
		slog.Warn("desktop notification failed", "error", err)
	}
}
