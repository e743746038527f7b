// Package formatter renders message groups for the console.
package formatter

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/farcloser/lintreport/internal/types"
)

const (
	iconWarning = "⚠"
	iconError   = "✖"
)

type palette struct {
	source   *color.Color
	position *color.Color
	warning  *color.Color
	fail     *color.Color
	plugin   *color.Color
}

func newPalette(enabled bool) palette {
	pal := palette{
		source:   color.New(color.Bold, color.Underline),
		position: color.New(color.Bold),
		warning:  color.New(color.FgYellow),
		fail:     color.New(color.FgRed),
		plugin:   color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{pal.source, pal.position, pal.warning, pal.fail, pal.plugin} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return pal
}

// Text returns the default renderer.
//
// Each group renders as an empty line, the underlined source, then one line per message:
//
//	12:4	⚠  Unexpected unit [stylelint]
func Text(opts Options) func(types.Group) string {
	pal := newPalette(opts.Color)

	root := opts.Root
	if root == "" {
		root, _ = os.Getwd()
	}

	return func(group types.Group) string {
		if len(group.Messages) == 0 {
			return ""
		}

		var out strings.Builder

		out.WriteString("\n")

		if group.Source != "" {
			out.WriteString(pal.source.Sprint(displaySource(group.Source, root)))
			out.WriteString("\n")
		}

		for _, message := range order(group.Messages, opts) {
			writeMessage(&out, message, pal, opts)
			out.WriteString("\n")
		}

		return out.String()
	}
}

func writeMessage(out *strings.Builder, message *types.Message, pal palette, opts Options) {
	if pos, ok := message.Position(); ok {
		loc := strconv.Itoa(pos.Line)
		if pos.Column > 0 {
			loc += ":" + strconv.Itoa(pos.Column)
		}

		out.WriteString(pal.position.Sprint(loc))
		out.WriteString("\t")
	}

	if !opts.NoIcon {
		switch message.Type {
		case types.TypeWarning:
			out.WriteString(pal.warning.Sprint(iconWarning + "  "))
		case types.TypeError:
			out.WriteString(pal.fail.Sprint(iconError + "  "))
		}
	}

	out.WriteString(message.Text)

	if !opts.NoPlugin && message.Plugin != "" {
		out.WriteString(pal.plugin.Sprint(" [" + message.Plugin + "]"))
	}
}

// displaySource shows file sources relative to root with forward slashes.
// In-memory ids ("<input css 1>") are shown as is.
func displaySource(source, root string) string {
	if strings.HasPrefix(source, "<") || root == "" || !filepath.IsAbs(source) {
		return filepath.ToSlash(source)
	}

	rel, err := filepath.Rel(root, source)
	if err != nil {
		return filepath.ToSlash(source)
	}

	return filepath.ToSlash(rel)
}

// order returns the messages in display order. The input is never modified.
func order(messages []*types.Message, opts Options) []*types.Message {
	ordered := slices.Clone(messages)

	if opts.Positionless == PositionlessAny {
		if opts.sortByPosition() {
			sortPositionedInPlace(ordered)
		}

		return ordered
	}

	positionlessRank := 0
	if opts.Positionless == PositionlessLast {
		positionlessRank = 2
	}

	slices.SortStableFunc(ordered, func(a, b *types.Message) int {
		posA, okA := a.Position()
		posB, okB := b.Position()

		if c := cmp.Compare(rank(okA, positionlessRank), rank(okB, positionlessRank)); c != 0 {
			return c
		}

		if !opts.sortByPosition() || !okA || !okB {
			return 0
		}

		return comparePositions(posA, posB)
	})

	return ordered
}

func rank(positioned bool, positionlessRank int) int {
	if positioned {
		return 1
	}

	return positionlessRank
}

// sortPositionedInPlace sorts the positioned messages among the slots they occupy,
// leaving positionless messages at their index.
func sortPositionedInPlace(messages []*types.Message) {
	var (
		slots      []int
		positioned []*types.Message
	)

	for idx, message := range messages {
		if _, ok := message.Position(); ok {
			slots = append(slots, idx)
			positioned = append(positioned, message)
		}
	}

	slices.SortStableFunc(positioned, func(a, b *types.Message) int {
		posA, _ := a.Position()
		posB, _ := b.Position()

		return comparePositions(posA, posB)
	})

	for i, slot := range slots {
		messages[slot] = positioned[i]
	}
}

func comparePositions(a, b types.Position) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}

	return cmp.Compare(a.Column, b.Column)
}
