package lintreport

import (
	"errors"
	"fmt"
)

var (
	// ErrRunFailed is wrapped by every *RunFailure.
	ErrRunFailed = errors.New("run failed")
	// ErrResolve is returned by NewRun when the file patterns cannot be expanded.
	ErrResolve = errors.New("resolving expected files")
	// ErrUnknownScope is returned by ParseScope.
	ErrUnknownScope = errors.New("unknown failure scope")
)

// RunFailure is returned when a completed run found warnings or errors and
// Options.ThrowError is set.
type RunFailure struct {
	// Files is the number of units that produced a report.
	Files int
}

func (e *RunFailure) Error() string {
	return fmt.Sprintf("warnings or errors were found in %d files", e.Files)
}

func (e *RunFailure) Unwrap() error {
	return ErrRunFailed
}
