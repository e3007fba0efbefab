// Package app wires the store, its persistence and the logger into one
// explicitly constructed instance handed to the UI layers.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/kv"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/order"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
)

// App is a loaded todo list ready for mutations.
type App struct {
	Store   *store.Store
	Adapter *jsonstore.Adapter
	Logger  *log.Logger

	// Recovered holds the load error that made the app fall back to the
	// seed list. The bad value stays in storage until the next save.
	Recovered error
}

// Options configure New.
type Options struct {
	Key    string
	Seed   []store.SeedItem
	Logger *log.Logger
	NewID  func() string
}

// Open builds an App over the JSON data file named in cfg.
func Open(cfg *config.Config, logger *log.Logger) (*App, error) {
	return New(kv.NewFile(cfg.DataFile), Options{
		Key:    cfg.Key,
		Seed:   cfg.Seed,
		Logger: logger,
	})
}

// New loads the list from substrate. No prior state installs the seed
// list; a corrupt value is logged, kept in Recovered and also replaced by
// the seed list. Read failures of the substrate itself are returned.
func New(substrate kv.Store, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	adapter := jsonstore.New(substrate, jsonstore.WithKey(opts.Key))
	s := store.New(
		store.WithPersister(adapter),
		store.WithSeed(opts.Seed),
		store.WithLogger(logger),
		store.WithIDGenerator(opts.NewID),
	)
	a := &App{Store: s, Adapter: adapter, Logger: logger}

	loaded, err := adapter.Load()
	switch {
	case errors.Is(err, model.ErrCorruptState):
		logger.Warn("saved list is unreadable; starting from seed list", "key", adapter.Key(), "err", err)
		s.ResetToSeed()
		a.Recovered = err
		return a, nil
	case err != nil:
		return nil, fmt.Errorf("load: %w", err)
	}

	if err := s.Initialize(loaded); err != nil {
		return nil, err
	}
	if loaded == nil {
		logger.Info("no saved list; using seed list", "key", adapter.Key())
	}
	return a, nil
}

// Display returns the list in presentation order.
func (a *App) Display() model.List {
	return order.Display(a.Store.All())
}
