package formatter

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/lintreport/internal/output"
	"github.com/farcloser/lintreport/internal/types"
)

// Structured returns a renderer printing each group through the named primordium formatter
// (console, json, markdown).
func Structured(name string) (func(types.Group) string, error) {
	printer, err := format.GetFormatter(name)
	if err != nil {
		return nil, fmt.Errorf("output format %q: %w", name, err)
	}

	return func(group types.Group) string {
		if len(group.Messages) == 0 {
			return ""
		}

		data := &format.Data{
			Object: group.Source,
			Meta:   output.GroupToMap(group),
		}

		var buf bytes.Buffer

		if err := printer.PrintAll([]*format.Data{data}, &buf); err != nil {
			slog.Error("formatter.Structured", "source", group.Source, "format", name, "error", err)

			return ""
		}

		return buf.String()
	}, nil
}

// New returns the renderer selected by opts.Style.
func New(opts Options) (func(types.Group) string, error) {
	switch opts.Style {
	case "", StyleText:
		return Text(opts), nil
	default:
		return Structured(opts.Style)
	}
}
