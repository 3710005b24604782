// Package ui renders generation progress and the final summary to the
// terminal. Styling is dropped automatically when output is not a TTY.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// Console prints per target outcomes and a closing summary.
type Console struct {
	out     io.Writer
	colored bool
}

// NewConsole creates a console on the writer, with colors when the
// writer is a terminal.
func NewConsole(out io.Writer) *Console {
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{out: out, colored: colored}
}

func (c *Console) render(style lipgloss.Style, text string) string {
	if !c.colored {
		return text
	}
	return style.Render(text)
}

// Wrote reports a freshly written project file.
func (c *Console) Wrote(path string) {
	fmt.Fprintf(c.out, "%s %s\n", c.render(successStyle, "wrote"), path)
}

// UpToDate reports a project file that was already current.
func (c *Console) UpToDate(path string) {
	fmt.Fprintf(c.out, "%s %s\n", c.render(dimStyle, "up to date"), path)
}

// Converted reports a native project file produced from an emitted one.
func (c *Console) Converted(path string) {
	fmt.Fprintf(c.out, "%s %s\n", c.render(successStyle, "converted"), path)
}

// Skipped reports a target the platform pairing cannot serve.
func (c *Console) Skipped(target string, err error) {
	fmt.Fprintf(c.out, "%s %s: %v\n", c.render(warnStyle, "skipped"), target, err)
}

// Failed reports a target whose generation errored out.
func (c *Console) Failed(target string, err error) {
	fmt.Fprintf(c.out, "%s %s: %v\n", c.render(errorStyle, "failed"), target, err)
}

// Summary is the tally across every attempted target.
type Summary struct {
	Attempted int
	Written   int
	UpToDate  int
	Skipped   int
	Failed    int
}

// Print renders the closing one line summary.
func (s Summary) Print(c *Console) {
	line := fmt.Sprintf("%d targets: %d written, %d up to date, %d skipped, %d failed",
		s.Attempted, s.Written, s.UpToDate, s.Skipped, s.Failed)
	style := successStyle
	if s.Failed > 0 {
		style = errorStyle
	} else if s.Skipped > 0 {
		style = warnStyle
	}
	fmt.Fprintln(c.out, c.render(style, line))
}
