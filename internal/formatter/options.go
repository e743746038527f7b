package formatter

import (
	"errors"
	"fmt"
)

var errUnknownPositionless = errors.New("unknown positionless placement")

// Positionless decides where messages without a line go when sorting by position.
type Positionless string

const (
	// PositionlessFirst puts positionless messages before positioned ones (default).
	PositionlessFirst Positionless = "first"
	// PositionlessLast puts them after.
	PositionlessLast Positionless = "last"
	// PositionlessAny leaves them where they are; only positioned messages are reordered.
	PositionlessAny Positionless = "any"
)

// ParsePositionless converts a string to a Positionless value.
func ParsePositionless(s string) (Positionless, error) {
	switch Positionless(s) {
	case "", PositionlessFirst:
		return PositionlessFirst, nil
	case PositionlessLast:
		return PositionlessLast, nil
	case PositionlessAny:
		return PositionlessAny, nil
	default:
		return "", fmt.Errorf("%w %q (valid: first, last, any)", errUnknownPositionless, s)
	}
}

// StyleText is the built-in text renderer. Any other style name is looked up in the
// structured renderers (console, json, markdown).
const StyleText = "text"

// Options configures the default renderer.
type Options struct {
	// SortByPosition orders messages by line then column (nil = true).
	SortByPosition *bool
	// Positionless places messages without a position (zero value = first).
	Positionless Positionless
	// NoIcon drops the severity icon.
	NoIcon bool
	// NoPlugin drops the trailing [plugin] marker.
	NoPlugin bool
	// Style selects the renderer (zero value = text).
	Style string
	// Color enables ANSI colors in the text renderer.
	Color bool
	// Root is the directory file sources are shown relative to (zero value = working directory).
	Root string
}

func (o Options) sortByPosition() bool {
	return o.SortByPosition == nil || *o.SortByPosition
}
