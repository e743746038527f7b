package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/lintreport/internal/stream"
	"github.com/farcloser/lintreport/internal/types"
)

func digestUnits() []*types.Unit {
	source := func(file string) *types.Source {
		return &types.Source{Input: types.Input{File: file}}
	}

	return []*types.Unit{
		{
			Messages: []*types.Message{
				{Type: types.TypeWarning, Plugin: "stylelint", Text: "w1"},
				{Type: types.TypeError, Plugin: "stylelint", Text: "e1"},
				{Type: types.TypeWarning, Plugin: "doiuse", Text: "w2", Node: &types.Node{Source: source("b.css")}},
			},
			Root: types.Root{Source: source("a.css")},
		},
		{Root: types.Root{Source: source("c.css")}},
		{
			Messages: []*types.Message{{Type: "info", Plugin: "doiuse", Text: "i1"}},
			Root:     types.Root{Source: source("a.css")},
		},
	}
}

func TestComputeDigest(t *testing.T) {
	t.Parallel()

	result := computeDigest(digestUnits())

	assert.Equal(t, 3, result.Units)
	assert.Equal(t, 1, result.Clean)
	assert.Equal(t, 4, result.Messages)
	assert.Equal(t, 2, result.Warnings)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, 1, result.Other)

	// a.css holds 3 messages across two units, b.css one.
	assert.Equal(t, 2, result.Sources)
	assert.InDelta(t, 2.0, result.MeanPerSrc, 1e-9)
	assert.InDelta(t, 3.0, result.MaxPerSrc, 1e-9)
	assert.Greater(t, result.StdDevPerSrc, 0.0)

	require.Len(t, result.Plugins, 2)
	assert.Equal(t, "doiuse", result.Plugins[0].Plugin)
	assert.Equal(t, 2, result.Plugins[0].Total)
	assert.Equal(t, "stylelint", result.Plugins[1].Plugin)
	assert.Equal(t, 1, result.Plugins[1].Errors)
}

func TestComputeDigestEmpty(t *testing.T) {
	t.Parallel()

	result := computeDigest(nil)

	assert.Zero(t, result.Units)
	assert.Zero(t, result.Sources)
	assert.Empty(t, result.Plugins)
}

func TestRunDigest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "units.jsonl")

	file, err := os.Create(path)
	require.NoError(t, err)

	encoder := stream.NewEncoder(file)
	for _, unit := range digestUnits() {
		require.NoError(t, encoder.Encode(unit))
	}

	require.NoError(t, file.Close())

	var out bytes.Buffer

	require.NoError(t, runDigest(&out, path, stream.JSONL, "doiuse"))

	assert.Contains(t, out.String(), "=== lintreport digest ===")
	assert.Contains(t, out.String(), "Messages:  4")
	assert.Contains(t, out.String(), "=== doiuse: 2 sources ===")
	assert.Contains(t, out.String(), "[info] i1")

	out.Reset()

	require.NoError(t, runDigest(&out, path, stream.JSONL, "csslint"))
	assert.Contains(t, out.String(), "No messages from csslint")
}
