// Package console writes run reports and summaries to a terminal or any writer.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const bell = "\a"

// Styles holds the lipgloss styles of the summary lines.
type Styles struct {
	Passed lipgloss.Style
	Failed lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles(w io.Writer) Styles {
	renderer := lipgloss.NewRenderer(w)

	return Styles{
		Passed: renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true), // bold green
		Failed: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Passed: lipgloss.NewStyle(),
		Failed: lipgloss.NewStyle(),
	}
}

// Sink writes everything a run produces to one writer. It is safe for concurrent use.
type Sink struct {
	mu     sync.Mutex
	out    io.Writer
	styles Styles
}

// New returns a sink writing to out, colored when color is set.
func New(out io.Writer, color bool) *Sink {
	styles := NoStyles()
	if color {
		styles = NewStyles(out)
	}

	return &Sink{out: out, styles: styles}
}

// Report writes the report of one unit.
func (s *Sink) Report(report string) {
	s.write(report + "\n")
}

// Alert rings the terminal bell.
func (s *Sink) Alert() {
	s.write(bell + "\n")
}

// Failed writes the failure summary.
func (s *Sink) Failed(files int) {
	s.write("\n" + s.styles.Failed.Render(
		fmt.Sprintf("** lintreport: warnings or errors were found in %d files **", files),
	) + "\n")
}

// Passed writes the pass summary.
func (s *Sink) Passed(files int) {
	s.write("\n" + s.styles.Passed.Render("lintreport: Passed ✓") +
		fmt.Sprintf("\nNumber of files linted: %d\n", files))
}

func (s *Sink) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(s.out, text)
}

// ColorFor reports whether output to file should be colored.
func ColorFor(file *os.File) bool {
	return term.IsTerminal(int(file.Fd())) //nolint:gosec // file descriptors fit in an int
}
