// Package store owns the canonical todo list. It is the only place todos are
// created or changed; every mutation is handed to a Persister afterwards.
//
// A Store is not safe for concurrent use. Callers drive it from a single
// event loop, one mutation at a time.
package store

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/todolist/internal/model"
)

// Persister receives the canonical list after each mutation.
type Persister interface {
	Save(model.List) error
}

// SeedItem describes one entry of the first-run list.
type SeedItem struct {
	Label   string `toml:"label"`
	Checked bool   `toml:"checked"`
}

// DefaultSeed is used when no prior state exists.
var DefaultSeed = []SeedItem{
	{Label: "Buy groceries"},
	{Label: "Ace CoderPad interview", Checked: true},
}

// Store holds the canonical, insertion-ordered todo list.
type Store struct {
	todos   model.List
	persist Persister
	newID   func() string
	seed    []SeedItem
	logger  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithPersister sets where mutations are saved. Without one the store is
// memory-only.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persist = p }
}

// WithIDGenerator replaces the random id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithSeed replaces DefaultSeed.
func WithSeed(seed []SeedItem) Option {
	return func(s *Store) {
		if len(seed) > 0 {
			s.seed = seed
		}
	}
}

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty Store. Call Initialize before use.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  uuid.NewString,
		seed:   DefaultSeed,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize sets the canonical list. A nil loaded list means no prior state
// and installs the seed list instead. Nothing is persisted.
func (s *Store) Initialize(loaded model.List) error {
	if loaded == nil {
		s.todos = s.seedList()
		s.logger.Debug("initialized from seed", "count", len(s.todos))
		return nil
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	s.todos = loaded.Clone()
	s.logger.Debug("initialized from saved state", "count", len(s.todos))
	return nil
}

// ResetToSeed replaces the list with the seed list. Used when saved state
// is unusable. Nothing is persisted.
func (s *Store) ResetToSeed() {
	s.todos = s.seedList()
}

func (s *Store) seedList() model.List {
	out := make(model.List, 0, len(s.seed))
	for _, it := range s.seed {
		label := strings.TrimSpace(it.Label)
		if label == "" {
			continue
		}
		out = append(out, model.Todo{ID: s.uniqueID(out), Label: label, Checked: it.Checked})
	}
	return out
}

// Add appends a new unchecked todo. Blank labels are rejected with a
// *model.ValidationError and leave the list unchanged.
//
// If saving fails the todo is still added; the returned error is a
// *model.PersistenceWriteError alongside the created todo.
func (s *Store) Add(label string) (model.Todo, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.Todo{}, &model.ValidationError{Field: "label", Reason: model.MsgRequired}
	}
	t := model.Todo{ID: s.uniqueID(s.todos), Label: label}
	s.todos = append(s.todos, t)
	s.logger.Debug("added", "id", t.ID, "label", t.Label)
	return t, s.save()
}

// Toggle flips Checked on the todo with id in place. Positions never change.
// Unknown ids return a *model.NotFoundError.
func (s *Store) Toggle(id string) (model.Todo, error) {
	i := s.todos.Index(id)
	if i < 0 {
		return model.Todo{}, &model.NotFoundError{ID: id}
	}
	s.todos[i].Checked = !s.todos[i].Checked
	t := s.todos[i]
	s.logger.Debug("toggled", "id", t.ID, "checked", t.Checked)
	return t, s.save()
}

// All returns a snapshot of the canonical list.
func (s *Store) All() model.List {
	out := s.todos.Clone()
	if out == nil {
		out = model.List{}
	}
	return out
}

// Get returns the todo with id.
func (s *Store) Get(id string) (model.Todo, bool) {
	i := s.todos.Index(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return s.todos[i], true
}

// Len returns the number of todos.
func (s *Store) Len() int { return len(s.todos) }

// Sync saves the current list. It lets callers retry after a failed write.
func (s *Store) Sync() error { return s.save() }

func (s *Store) save() error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(s.todos.Clone()); err != nil {
		s.logger.Warn("save failed; in-memory list kept", "err", err)
		if !errors.Is(err, model.ErrPersistenceWrite) {
			err = &model.PersistenceWriteError{Err: err}
		}
		return err
	}
	return nil
}

// uniqueID draws ids until one is unused in l.
func (s *Store) uniqueID(l model.List) string {
	for {
		id := s.newID()
		if id != "" && l.Index(id) < 0 {
			return id
		}
	}
}
