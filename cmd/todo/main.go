package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	config.RegisterFlags(fs)
	showIDs := fs.Bool("ids", false, "show item ids")
	noColor := fs.Bool("no-color", false, "disable colored output")
	if err := fs.Parse(argv); err != nil {
		return cli.ExitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return cli.ExitError
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	r := ui.NewRenderer(os.Stdout, os.Stderr, ui.LookupTheme(cfg.Theme), *noColor)

	a, err := app.Open(cfg, logger)
	if err != nil {
		r.Fail(err.Error())
		return cli.ExitError
	}

	// Hand the remaining args to the CLI runner.
	code := cli.NewRunner(a, r, cli.Options{
		Group:   cfg.Group,
		ShowIDs: *showIDs,
		Interactive: func(a *app.App) error {
			return tui.Run(a.Store, a.Logger, ui.LookupTheme(cfg.Theme))
		},
	}).Run(fs.Args())
	if code != cli.ExitOK {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
