package stream_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/farcloser/primordium/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/farcloser/lintreport/internal/stream"
	"github.com/farcloser/lintreport/internal/types"
)

var errStop = errors.New("stop")

func collect(t *testing.T, input []byte, codec stream.Codec) []*types.Unit {
	t.Helper()

	var units []*types.Unit

	err := stream.Decode(bytes.NewReader(input), codec, func(unit *types.Unit) error {
		units = append(units, unit)

		return nil
	})
	require.NoError(t, err)

	return units
}

func sampleUnits() []*types.Unit {
	return []*types.Unit{
		{
			Messages: []*types.Message{
				{Type: types.TypeWarning, Plugin: "foo", Text: "foo warning", Line: 3, Column: 1},
				{
					Type:   types.TypeError,
					Plugin: "bar",
					Text:   "bar error",
					Node:   &types.Node{Source: &types.Source{Input: types.Input{File: "other.css"}}},
				},
			},
			Root: types.Root{Source: &types.Source{Input: types.Input{File: "a.css"}}},
		},
		{
			Messages: []*types.Message{{Type: "info", Plugin: "baz", Text: "note"}},
			Root:     types.Root{Source: &types.Source{Input: types.Input{ID: "<input css 1>"}}},
		},
	}
}

func TestDecodeJSONL(t *testing.T) {
	t.Parallel()

	input := `{"messages":[{"type":"warning","plugin":"foo","text":"w","node":{"source":{"input":{"file":"b.css"}}}}],"root":{"source":{"input":{"id":"<input css 1>"}}}}

{"messages":[],"root":{"source":{"input":{"file":"c.css"}}}}
`

	units := collect(t, []byte(input), stream.JSONL)
	require.Len(t, units, 2)

	assert.Equal(t, "<input css 1>", units[0].SourceKey())
	assert.Equal(t, "b.css", units[0].Messages[0].SourceKey(units[0].SourceKey()))
	assert.Equal(t, "c.css", units[1].SourceKey())
	assert.Empty(t, units[1].Messages)
}

func TestDecodeInvalidJSON(t *testing.T) {
	t.Parallel()

	err := stream.Decode(strings.NewReader("{}\nnot json\n"), stream.JSONL, func(*types.Unit) error { return nil })
	require.ErrorIs(t, err, fault.ErrInvalidJSON)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecodeStopsOnHandlerError(t *testing.T) {
	t.Parallel()

	calls := 0

	err := stream.Decode(strings.NewReader("{}\n{}\n{}\n"), stream.JSONL, func(*types.Unit) error {
		calls++

		return errStop
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, calls)
}

func TestDecodeMsgpack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	encoder := msgpack.NewEncoder(&buf)
	for _, unit := range sampleUnits() {
		require.NoError(t, encoder.Encode(unit))
	}

	assert.Equal(t, sampleUnits(), collect(t, buf.Bytes(), stream.Msgpack))
}

func TestDecodeEmptyMsgpack(t *testing.T) {
	t.Parallel()

	assert.Empty(t, collect(t, nil, stream.Msgpack))
}

func TestEncoderRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	encoder := stream.NewEncoder(&buf)
	for _, unit := range sampleUnits() {
		require.NoError(t, encoder.Encode(unit))
	}

	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
	assert.Equal(t, sampleUnits(), collect(t, buf.Bytes(), stream.JSONL))
}

func TestParseCodec(t *testing.T) {
	t.Parallel()

	for input, expected := range map[string]stream.Codec{
		"":        stream.JSONL,
		"json":    stream.JSONL,
		"jsonl":   stream.JSONL,
		"msgpack": stream.Msgpack,
	} {
		codec, err := stream.ParseCodec(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, codec, input)
	}

	_, err := stream.ParseCodec("yaml")
	require.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()

	_, err := stream.Open("/nonexistent/units.jsonl")
	require.ErrorIs(t, err, fault.ErrReadFailure)
}
