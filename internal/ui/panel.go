package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/order"
)

// Title is shown on top of every list view.
const Title = "Todo List"

const maxLabelWidth = 80

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box around lines using the theme border.
func (r *Renderer) Panel(lines []string) {
	box := r.lg.NewStyle().
		Border(r.Theme.Border).
		BorderForeground(r.Theme.Muted).
		Padding(0, 1)
	fmt.Fprintln(r.out, box.Render(strings.Join(lines, "\n")))
}

// ListOptions tune list rendering.
type ListOptions struct {
	Group   bool // split into Pending and Done sections
	ShowIDs bool
}

// List renders l, which must already be in display order, inside a panel.
func (r *Renderer) List(l model.List, opt ListOptions) {
	r.Panel(r.ListLines(l, opt))
}

// ListLines builds the panel body: header, progress, items.
func (r *Renderer) ListLines(l model.List, opt ListOptions) []string {
	t := r.Theme
	done, pending := order.Stats(l)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		r.lg.NewStyle().Bold(true).Foreground(t.Title).Render(Title),
		r.C(t.Success, t.SymDone), done,
		r.C(t.Pending, t.SymPending), pending,
		r.C(t.Accent, "Total"), len(l),
	)

	lines := []string{header, r.C(t.Muted, ProgressBar(done, done+pending, 28)), ""}
	if opt.Group {
		lines = append(lines, r.groupLines(l, opt)...)
	} else {
		lines = append(lines, r.itemLines(l, 1, opt)...)
	}
	lines = append(lines, "", r.C(t.Muted, "Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

// itemLines numbers items from start so numbers match display positions.
func (r *Renderer) itemLines(l model.List, start int, opt ListOptions) []string {
	t := r.Theme
	if len(l) == 0 {
		return []string{r.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(l))
	for i, it := range l {
		idx := fmt.Sprintf("%2d.", start+i)
		box, color := t.BoxUnchecked, t.Muted
		if it.Checked {
			box, color = t.BoxChecked, t.Success
		}
		label := it.Label
		if len([]rune(label)) > maxLabelWidth {
			label = string([]rune(label)[:maxLabelWidth-3]) + "..."
		}
		line := fmt.Sprintf("%s %s %s", r.C(t.Muted, idx), r.C(color, box), label)
		if opt.ShowIDs {
			line += " " + r.C(t.Muted, "("+it.ID+")")
		}
		out = append(out, line)
	}
	return out
}

func (r *Renderer) groupLines(l model.List, opt ListOptions) []string {
	t := r.Theme
	pend, done := order.Partition(l)

	lines := []string{r.C(t.Accent, "Pending")}
	if len(pend) == 0 {
		lines = append(lines, r.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, r.itemLines(pend, 1, opt)...)
	}
	lines = append(lines, "", r.C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, r.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, r.itemLines(done, len(pend)+1, opt)...)
	}
	return lines
}
