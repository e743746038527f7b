package lintreport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Resolver expands file patterns into the list of files a run is expected to cover.
// ignore holds gitignore-style patterns removed from the matches.
type Resolver func(ctx context.Context, patterns, ignore []string) ([]string, error)

// RunState holds the counters of one run. Create one per run and hand it to every
// Reporter.Process call of that run. It is safe for concurrent use.
type RunState struct {
	mu sync.Mutex

	invocations int
	reporting   int
	problems    int
	lastProblem bool
	expected    int // negative when unknown
	completed   bool
}

// NewRunState returns a run expecting the given number of units.
// A negative count means unknown: the run then only completes through Reporter.Finalize.
func NewRunState(expected int) *RunState {
	return &RunState{expected: max(expected, -1)}
}

// NewRun resolves the expected file count before any unit is processed.
// With no patterns the count is unknown.
func NewRun(ctx context.Context, resolve Resolver, patterns, ignore []string) (*RunState, error) {
	if len(patterns) == 0 || resolve == nil {
		return NewRunState(-1), nil
	}

	files, err := resolve(ctx, patterns, ignore)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	slog.Debug("lintreport.NewRun", "patterns", patterns, "files", len(files))

	return NewRunState(len(files)), nil
}

// Invocations returns how many units have been processed.
func (s *RunState) Invocations() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invocations
}

// Reporting returns how many units produced a non-empty report.
func (s *RunState) Reporting() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reporting
}

// Problems returns how many units had at least one warning or error among their
// filtered messages.
func (s *RunState) Problems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.problems
}

// Expected returns the expected unit count, and false when it is unknown.
func (s *RunState) Expected() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.expected, s.expected >= 0
}

// Completed reports whether the run completion logic already fired.
func (s *RunState) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.completed
}

// snapshot is the state observed by one invocation, taken under the lock.
type snapshot struct {
	invocations int
	reporting   int
	problems    int
	lastProblem bool
	expected    int
	complete    bool // this invocation completes the run
}

// record counts one invocation and decides whether it completes the run.
// Completion is claimed at most once.
func (s *RunState) record(reported, problem bool) snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invocations++
	s.lastProblem = problem

	if reported {
		s.reporting++
	}

	if problem {
		s.problems++
	}

	snap := s.snapshotLocked()

	if !s.completed && s.expected >= 0 && s.invocations == s.expected {
		s.completed = true
		snap.complete = true
	}

	return snap
}

// finish claims completion for an explicit finalize. ok is false when the run already
// completed.
func (s *RunState) finish() (snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return snapshot{}, false
	}

	s.completed = true

	snap := s.snapshotLocked()
	snap.complete = true

	if snap.expected < 0 {
		snap.expected = s.invocations
	}

	return snap, true
}

func (s *RunState) snapshotLocked() snapshot {
	return snapshot{
		invocations: s.invocations,
		reporting:   s.reporting,
		problems:    s.problems,
		lastProblem: s.lastProblem,
		expected:    s.expected,
	}
}
