package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/ui"
)

// styles are the view's Lip Gloss styles, derived once from the theme.
type styles struct {
	title, success, pending, accent, muted, err lipgloss.Style

	selected, done, help lipgloss.Style

	boxChecked, boxUnchecked string
	symDone, symPending      string

	panel, inputBar lipgloss.Style
}

func newStyles(th ui.Theme) *styles {
	frame := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.Muted).
		Padding(0, 1)
	return &styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(th.Title),
		success: lipgloss.NewStyle().Foreground(th.Success),
		pending: lipgloss.NewStyle().Foreground(th.Pending),
		accent:  lipgloss.NewStyle().Foreground(th.Accent),
		muted:   lipgloss.NewStyle().Foreground(th.Muted),
		err:     lipgloss.NewStyle().Foreground(th.Error).Bold(true),

		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),

		boxChecked:   th.BoxChecked,
		boxUnchecked: th.BoxUnchecked,
		symDone:      th.SymDone,
		symPending:   th.SymPending,

		panel:    frame,
		inputBar: frame,
	}
}
