// Package ui renders todo lists as plain framed text for the CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer writes themed output. Color is decided per writer.
type Renderer struct {
	Theme Theme
	out   io.Writer
	errw  io.Writer
	lg    *lipgloss.Renderer
}

// NewRenderer returns a Renderer for out (and errw for failures).
// noColor forces plain output; the mono theme implies it.
func NewRenderer(out, errw io.Writer, theme Theme, noColor bool) *Renderer {
	lg := lipgloss.NewRenderer(out)
	if noColor || theme.Name == "mono" {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{Theme: theme, out: out, errw: errw, lg: lg}
}

// Style returns a foreground style in color c.
func (r *Renderer) Style(c lipgloss.TerminalColor) lipgloss.Style {
	s := r.lg.NewStyle()
	if c != nil {
		s = s.Foreground(c)
	}
	return s
}

// C colors s.
func (r *Renderer) C(c lipgloss.TerminalColor, s string) string {
	return r.Style(c).Render(s)
}

func (r *Renderer) OK(msg string) {
	fmt.Fprintln(r.out, r.C(r.Theme.Success, r.Theme.SymOK+" "+msg))
}

func (r *Renderer) Fail(msg string) {
	fmt.Fprintln(r.errw, r.C(r.Theme.Error, r.Theme.SymFail+" "+msg))
}

// Println writes s unstyled to the output writer.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Hint prints a muted line on the error writer.
func (r *Renderer) Hint(msg string) {
	fmt.Fprintln(r.errw, r.C(r.Theme.Muted, msg))
}
