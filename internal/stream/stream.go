// Package stream reads and writes streams of lint units (JSON Lines or msgpack).
package stream

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/farcloser/primordium/fault"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/farcloser/lintreport/internal/types"
)

// Codec is the encoding of a unit stream.
type Codec int

const (
	// JSONL is one JSON unit per line.
	JSONL Codec = iota
	// Msgpack is a sequence of msgpack-encoded units.
	Msgpack
)

func (c Codec) String() string {
	switch c {
	case JSONL:
		return "jsonl"
	case Msgpack:
		return "msgpack"
	}

	return "unknown"
}

var (
	errUnknownCodec   = errors.New("unknown input format")
	errInvalidMsgpack = errors.New("invalid msgpack")
)

// ParseCodec converts a string to a Codec value.
func ParseCodec(s string) (Codec, error) {
	switch s {
	case "jsonl", "json", "":
		return JSONL, nil
	case "msgpack":
		return Msgpack, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: jsonl, msgpack)", errUnknownCodec, s)
	}
}

// maxLineSize bounds a single JSONL unit.
const maxLineSize = 16 * 1024 * 1024

// Decode reads units from reader and calls handle for each one, in stream order.
// An error returned by handle stops decoding and is returned as is.
func Decode(reader io.Reader, codec Codec, handle func(*types.Unit) error) error {
	switch codec {
	case Msgpack:
		return decodeMsgpack(reader, handle)
	default:
		return decodeJSONL(reader, handle)
	}
}

func decodeJSONL(reader io.Reader, handle func(*types.Unit) error) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0

	for scanner.Scan() {
		line++

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		unit := &types.Unit{}
		if err := json.Unmarshal(raw, unit); err != nil {
			return fmt.Errorf("%w: line %d: %w", fault.ErrInvalidJSON, line, err)
		}

		if err := handle(unit); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	slog.Debug("stream.Decode", "codec", JSONL.String(), "lines", line)

	return nil
}

func decodeMsgpack(reader io.Reader, handle func(*types.Unit) error) error {
	decoder := msgpack.NewDecoder(bufio.NewReader(reader))

	for count := 1; ; count++ {
		unit := &types.Unit{}

		err := decoder.Decode(unit)
		if errors.Is(err, io.EOF) {
			slog.Debug("stream.Decode", "codec", Msgpack.String(), "units", count-1)

			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: unit %d: %w", errInvalidMsgpack, count, err)
		}

		if err := handle(unit); err != nil {
			return err
		}
	}
}

// Encoder writes units as JSON Lines.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder returns an encoder writing to writer.
func NewEncoder(writer io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(writer)}
}

// Encode writes one unit.
func (e *Encoder) Encode(unit *types.Unit) error {
	return e.enc.Encode(unit) //nolint:wrapcheck // encoding failures are reported as is
}

// Open opens path for reading, "-" being stdin. The returned closer never closes stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified result files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	return file, nil
}
