package lintreport

import (
	"fmt"

	"github.com/farcloser/lintreport/internal/types"
)

// Message types with a meaning for the run outcome.
const (
	TypeWarning = types.TypeWarning
	TypeError   = types.TypeError
)

type (
	// Message is a single diagnostic produced by a lint plugin.
	Message = types.Message
	// Unit is the result of linting one file or in-memory source.
	Unit = types.Unit
	// Root is the root node of a unit.
	Root = types.Root
	// Node is the syntax node a message points at.
	Node = types.Node
	// Source is a source-location reference.
	Source = types.Source
	// Input identifies a file or in-memory source.
	Input = types.Input
	// Position is a 1-based line and column.
	Position = types.Position
	// Group holds the messages sharing one source key.
	Group = types.Group
)

// Formatter renders one group of messages. It may return the empty string.
type Formatter func(group Group) string

// Sink receives everything a run writes out.
type Sink interface {
	// Report writes the report of one unit.
	Report(report string)
	// Alert signals a failed run (terminal bell).
	Alert()
	// Failed writes the failure summary line.
	Failed(files int)
	// Passed writes the pass summary line.
	Passed(files int)
}

// Scope selects which messages decide a run failure.
type Scope int

const (
	// ScopeRun fails the run when any unit of the run logged a warning or an error.
	ScopeRun Scope = iota
	// ScopeLastUnit only looks at the messages of the unit that completed the run.
	ScopeLastUnit
)

func (s Scope) String() string {
	switch s {
	case ScopeRun:
		return "run"
	case ScopeLastUnit:
		return "last-unit"
	}

	return "unknown"
}

// ParseScope converts a string to a Scope value.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "run", "":
		return ScopeRun, nil
	case "last-unit":
		return ScopeLastUnit, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: run, last-unit)", ErrUnknownScope, s)
	}
}
