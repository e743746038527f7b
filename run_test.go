package lintreport_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/lintreport"
)

var errResolverBroken = errors.New("resolver broken")

func TestNewRun(t *testing.T) {
	t.Parallel()

	var seen []string

	resolve := func(_ context.Context, patterns, _ []string) ([]string, error) {
		seen = patterns

		return []string{"a.css", "b.css", "c.css"}, nil
	}

	run, err := lintreport.NewRun(t.Context(), resolve, []string{"*.css"}, nil)
	require.NoError(t, err)

	expected, known := run.Expected()
	assert.True(t, known)
	assert.Equal(t, 3, expected)
	assert.Equal(t, []string{"*.css"}, seen)
}

func TestNewRunWithoutPatterns(t *testing.T) {
	t.Parallel()

	called := false
	resolve := func(context.Context, []string, []string) ([]string, error) {
		called = true

		return nil, nil
	}

	run, err := lintreport.NewRun(t.Context(), resolve, nil, nil)
	require.NoError(t, err)

	_, known := run.Expected()
	assert.False(t, known)
	assert.False(t, called)
}

func TestNewRunResolverError(t *testing.T) {
	t.Parallel()

	resolve := func(context.Context, []string, []string) ([]string, error) {
		return nil, errResolverBroken
	}

	_, err := lintreport.NewRun(t.Context(), resolve, []string{"*.css"}, nil)
	require.ErrorIs(t, err, lintreport.ErrResolve)
	require.ErrorIs(t, err, errResolverBroken)
}

func TestNewRunStateZeroExpected(t *testing.T) {
	t.Parallel()

	run := lintreport.NewRunState(0)

	expected, known := run.Expected()
	assert.True(t, known)
	assert.Zero(t, expected)
	assert.False(t, run.Completed())

	sink := &recordingSink{}
	reporter := newReporter(t, lintreport.Options{}, sink)

	require.NoError(t, reporter.Finalize(run))
	assert.True(t, run.Completed())
	assert.Equal(t, []int{0}, sink.passed)
}

func TestRunCounters(t *testing.T) {
	t.Parallel()

	reporter := newReporter(t, lintreport.Options{
		Formatter: func(group lintreport.Group) string { return group.Source },
	}, nil)
	run := lintreport.NewRunState(-1)

	_, err := reporter.Process(run, simpleUnit())
	require.NoError(t, err)

	_, err = reporter.Process(run, &lintreport.Unit{})
	require.NoError(t, err)

	assert.Equal(t, 2, run.Invocations())
	assert.Equal(t, 1, run.Reporting())
	assert.Equal(t, 1, run.Problems())
}
