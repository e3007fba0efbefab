package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group   bool // list grouped by pending/done
	ShowIDs bool // print ids next to labels

	// Interactive runs the TUI; nil disables the tui subcommand.
	Interactive func(*app.App) error
}

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Runner dispatches subcommands against one loaded App.
type Runner struct {
	app *app.App
	r   *ui.Renderer
	opt Options
}

// NewRunner returns a Runner writing through r.
func NewRunner(a *app.App, r *ui.Renderer, opt Options) *Runner {
	return &Runner{app: a, r: r, opt: opt}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func (rn *Runner) Run(args []string) int {
	if len(args) == 0 {
		rn.PrintHelp()
		return ExitUsage
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		rn.PrintHelp()
		return ExitOK

	case "ls":
		return rn.doList()

	case "add":
		if len(a) == 0 {
			rn.r.Fail("usage: todo add <label...>")
			return ExitUsage
		}
		return rn.doAdd(strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			rn.r.Fail("usage: todo done <index>")
			return ExitUsage
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			rn.r.Fail("done: not a number: " + a[0])
			return ExitUsage
		}
		return rn.doToggleIndex(n)

	case "toggle":
		if len(a) != 1 {
			rn.r.Fail("usage: todo toggle <id>")
			return ExitUsage
		}
		return rn.doToggle(a[0])

	case "tui":
		if rn.opt.Interactive == nil {
			rn.r.Fail("tui: not available")
			return ExitError
		}
		if err := rn.opt.Interactive(rn.app); err != nil {
			rn.r.Fail("tui: " + err.Error())
			return ExitError
		}
		return ExitOK
	}

	rn.r.Fail("unknown subcommand: " + cmd)
	rn.r.Hint("Run `todo help` for usage")
	return ExitUsage
}

func (rn *Runner) PrintHelp() {
	rn.r.Println(`todo - a tiny todo list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  add <label...>     Add a new item (label can be multiple words)
  ls                 List items, open items first
  done <index>       Toggle the item at 1-based index as shown by ls
  toggle <id>        Toggle the item with the given id
  tui                Interactive list

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo -ids ls`)
}

// -------------- subcommand impls ----------------

func (rn *Runner) doList() int {
	rn.render()
	return ExitOK
}

func (rn *Runner) doAdd(label string) int {
	_, err := rn.app.Store.Add(label)
	if code, failed := rn.mutationFailed("add", err); failed {
		return code
	}
	rn.r.OK("added")
	rn.render()
	return ExitOK
}

func (rn *Runner) doToggleIndex(userIndex int) int {
	display := rn.app.Display()
	if userIndex < 1 || userIndex > len(display) {
		rn.r.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(display), userIndex))
		rn.r.Hint("Hint: run `todo ls` to see valid indexes")
		return ExitUsage
	}
	return rn.doToggle(display[userIndex-1].ID)
}

func (rn *Runner) doToggle(id string) int {
	t, err := rn.app.Store.Toggle(id)
	if code, failed := rn.mutationFailed("toggle", err); failed {
		if errors.Is(err, model.ErrNotFound) {
			rn.r.Hint("Hint: run `todo -ids ls` to see ids")
		}
		return code
	}
	state := "open"
	if t.Checked {
		state = "done"
	}
	rn.r.OK(fmt.Sprintf("marked %q %s", t.Label, state))
	rn.render()
	return ExitOK
}

// mutationFailed reports err and maps it to an exit code. A failed save
// still leaves the change applied in memory, so the list is rendered.
func (rn *Runner) mutationFailed(op string, err error) (int, bool) {
	switch {
	case err == nil:
		return ExitOK, false
	case errors.Is(err, model.ErrValidation):
		rn.r.Fail(op + ": empty label")
		return ExitUsage, true
	case errors.Is(err, model.ErrNotFound):
		rn.r.Fail(op + ": " + err.Error())
		return ExitUsage, true
	case errors.Is(err, model.ErrPersistenceWrite):
		rn.app.Logger.Error("save failed", "op", op, "err", err)
		rn.r.Fail("save: " + err.Error())
		rn.render()
		return ExitError, true
	default:
		rn.r.Fail(op + ": " + err.Error())
		return ExitError, true
	}
}

func (rn *Runner) render() {
	rn.r.List(rn.app.Display(), ui.ListOptions{Group: rn.opt.Group, ShowIDs: rn.opt.ShowIDs})
}
