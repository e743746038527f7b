package lintreport

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/farcloser/lintreport/internal/formatter"
)

/*
Usage:

run, err := lintreport.NewRun(ctx, expand.Files, []string{"styles/*.css"}, nil)
reporter, err := lintreport.New(lintreport.Options{ThrowError: true}, sink)

for _, unit := range units {
    outcome, err := reporter.Process(run, unit)
    if err != nil {
        // run failure: err wraps lintreport.ErrRunFailed
    }

    outcome.Apply(unit) // only changes unit with ClearMessages
}

// Runs without a known file count complete explicitly.
err = reporter.Finalize(run)
*/

// FormatOptions configures the default renderer. It is ignored when Options.Formatter is set.
type FormatOptions = formatter.Options

// Options configures a Reporter.
type Options struct {
	// Formatter renders one group (nil = default renderer configured by Format).
	Formatter Formatter
	// Format is forwarded to the default renderer.
	Format FormatOptions

	// Plugins restricts processing to messages from these plugins (empty = all).
	Plugins []string
	// ClearMessages makes Outcome.Remaining drop every processed message.
	ClearMessages bool
	// ThrowError makes a completed run with warnings or errors return a *RunFailure.
	ThrowError bool
	// FailureScope selects which messages decide the failure (zero value = ScopeRun).
	FailureScope Scope
}

// Reporter groups, renders and counts the messages of lint results.
type Reporter struct {
	opts   Options
	format Formatter
	sink   Sink
}

// New returns a Reporter writing to sink (nil = discard).
func New(opts Options, sink Sink) (*Reporter, error) {
	render := opts.Formatter
	if render == nil {
		def, err := formatter.New(opts.Format)
		if err != nil {
			return nil, err
		}

		render = def
	}

	if sink == nil {
		sink = discard{}
	}

	return &Reporter{opts: opts, format: render, sink: sink}, nil
}

// Outcome is what one Process call produced.
type Outcome struct {
	// Report is the concatenated formatter output (may be empty).
	Report string
	// Groups are the rendered groups, in render order.
	Groups []Group
	// Logged are the messages that passed the plugin filter.
	Logged []*Message
	// Remaining is the unit's message list once processed messages are cleared.
	// Without ClearMessages it holds the unit's messages unchanged.
	Remaining []*Message
	// Completed is set on the invocation that completed the run.
	Completed bool
}

// Apply replaces the unit's messages with Remaining.
func (o *Outcome) Apply(unit *Unit) {
	unit.Messages = o.Remaining
}

// Render calls the formatter once per group, in order, and concatenates the output.
func (r *Reporter) Render(groups []Group) string {
	var report strings.Builder

	for _, group := range groups {
		report.WriteString(r.format(group))
	}

	return report.String()
}

// Process handles the result of one lint invocation. unit is not modified.
//
// When this invocation completes the run, the pass or failure summary goes to the sink, and
// a failed run returns a *RunFailure alongside the outcome.
func (r *Reporter) Process(state *RunState, unit *Unit) (*Outcome, error) {
	logged := Filter(unit.Messages, r.opts.Plugins)
	groups := GroupBySource(logged, unit.SourceKey())
	report := r.Render(groups)

	remaining := unit.Messages
	if r.opts.ClearMessages {
		remaining = Difference(unit.Messages, logged)
	}

	problem := slices.ContainsFunc(logged, (*Message).IsProblem)

	if report != "" {
		r.sink.Report(report)
	}

	snap := state.record(report != "", problem)

	slog.Debug("lintreport.Process",
		"source", unit.SourceKey(),
		"logged", len(logged),
		"groups", len(groups),
		"invocations", snap.invocations,
		"expected", snap.expected,
	)

	outcome := &Outcome{
		Report:    report,
		Groups:    groups,
		Logged:    logged,
		Remaining: remaining,
		Completed: snap.complete,
	}

	if !snap.complete {
		return outcome, nil
	}

	return outcome, r.complete(snap)
}

// Finalize completes a run that Process did not complete, e.g. when the expected file count
// is unknown. It does nothing on a completed run.
func (r *Reporter) Finalize(state *RunState) error {
	snap, ok := state.finish()
	if !ok {
		return nil
	}

	if snap.expected != snap.invocations {
		slog.Warn("run finalized before the expected file count was reached",
			"expected", snap.expected, "processed", snap.invocations)
	}

	return r.complete(snap)
}

func (r *Reporter) complete(snap snapshot) error {
	if snap.reporting == 0 {
		r.sink.Passed(snap.expected)

		return nil
	}

	if !r.opts.ThrowError || !r.failing(snap) {
		return nil
	}

	r.sink.Alert()
	r.sink.Failed(snap.reporting)

	return &RunFailure{Files: snap.reporting}
}

func (r *Reporter) failing(snap snapshot) bool {
	if r.opts.FailureScope == ScopeLastUnit {
		return snap.lastProblem
	}

	return snap.problems > 0
}

type discard struct{}

func (discard) Report(string) {}
func (discard) Alert()        {}
func (discard) Failed(int)    {}
func (discard) Passed(int)    {}
