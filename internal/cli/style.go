package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printer renders human output. Colors are dropped automatically when w is
// not a terminal.
type printer struct {
	w     io.Writer
	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:     w,
		label: r.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true),
		value: r.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#565f89")),
	}
}

// field prints "label: value".
func (p *printer) field(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render(label+":"), p.value.Render(value))
}

func (p *printer) note(text string) {
	fmt.Fprintln(p.w, p.muted.Render(text))
}
