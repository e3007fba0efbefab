// Package tui is the interactive list view. Every keypress that changes the
// list goes through the store, which saves it, and the view is re-derived
// in display order afterwards.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/order"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Store is the part of the todo store the view drives.
type Store interface {
	Add(label string) (model.Todo, error)
	Toggle(id string) (model.Todo, error)
	All() model.List
	Sync() error
}

// listItem adapts model.Todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Label }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Label }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	st *styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.todo.Label
	if it.todo.Checked {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

var (
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	retryBind  = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry save"))
	quitBind   = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit"))
)

// Model is the Bubble Tea model of the list view.
type Model struct {
	store  Store
	logger *log.Logger
	list   list.Model
	st     *styles

	width, height int

	// Inline add
	adding bool
	ti     textinput.Model

	// status is the last error, shown under the list until the next action.
	status string
	// unsaved is set while the last save failed; r retries it.
	unsaved bool
}

// New builds the view over s, styled with th.
func New(s Store, logger *log.Logger, th ui.Theme) Model {
	st := newStyles(th)
	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, retryBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{toggleBind, addBind, retryBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item label..."
	ti.CharLimit = 200

	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{store: s, logger: logger, list: l, st: st, ti: ti, width: 80, height: 24}
	m.refresh("")
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(s Store, logger *log.Logger, th ui.Theme) error {
	p := tea.NewProgram(New(s, logger, th), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh rebuilds the list from the store in display order and keeps the
// cursor on selectID when it is still present.
func (m *Model) refresh(selectID string) {
	display := order.Display(m.store.All())
	items := make([]list.Item, 0, len(display))
	sel := -1
	for i, t := range display {
		items = append(items, listItem{todo: t})
		if t.ID == selectID {
			sel = i
		}
	}
	m.list.SetItems(items)
	if sel >= 0 {
		m.list.Select(sel)
	}

	done, pending := order.Stats(display)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.Title,
		m.st.success.Render(m.st.symDone), done,
		m.st.pending.Render(m.st.symPending), pending,
		m.st.accent.Render("Total"), len(display),
	)
}

// Items returns the rendered todos in on-screen order.
func (m Model) Items() model.List {
	out := make(model.List, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.todo)
		}
	}
	return out
}

// Status returns the message shown under the list.
func (m Model) Status() string { return m.status }

// Unsaved reports whether the last save failed and has not been retried
// successfully.
func (m Model) Unsaved() bool { return m.unsaved }

// Adding reports whether the inline add input is open.
func (m Model) Adding() bool { return m.adding }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case km.String() == "esc" && m.list.FilterState() == list.FilterApplied:
			// let the list clear its filter
		case key.Matches(km, quitBind):
			return m, tea.Quit
		case key.Matches(km, toggleBind):
			m.toggleSelected()
			return m, nil
		case m.unsaved && key.Matches(km, retryBind):
			m.report(m.store.Sync())
			return m, nil
		case key.Matches(km, addBind):
			m.adding = true
			m.status = ""
			m.ti.SetValue("")
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) toggleSelected() {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return
	}
	t, err := m.store.Toggle(li.todo.ID)
	m.report(err)
	if err == nil || errors.Is(err, model.ErrPersistenceWrite) {
		m.refresh(t.ID)
	}
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			t, err := m.store.Add(m.ti.Value())
			m.report(err)
			if errors.Is(err, model.ErrValidation) {
				return m, nil
			}
			m.refresh(t.ID)
			m.closeInput()
			return m, nil
		case "esc":
			m.status = ""
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m *Model) report(err error) {
	switch {
	case err == nil:
		m.status = ""
		m.unsaved = false
	case errors.Is(err, model.ErrValidation):
		m.status = "Label cannot be empty"
	case errors.Is(err, model.ErrPersistenceWrite):
		m.status = "Not saved (r to retry): " + err.Error()
		m.unsaved = true
		m.logger.Error("save failed", "err", err)
	default:
		m.status = err.Error()
		m.logger.Warn("action failed", "err", err)
	}
}

func (m Model) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 6
	}
	if m.status != "" {
		listHeight--
	}
	m.list.SetSize(m.width-2, listHeight)

	var b strings.Builder
	b.WriteString(m.list.View())
	if m.adding {
		b.WriteString("\n" + m.st.inputBar.Render("Add new item\n"+m.ti.View()))
	}
	if m.status != "" {
		b.WriteString("\n" + m.st.err.Render(m.status))
	}
	return m.st.panel.Render(b.String())
}
