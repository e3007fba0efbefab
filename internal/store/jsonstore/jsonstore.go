// Package jsonstore persists the canonical todo list as JSON under a single
// key of a kv.Store. Every load is schema-checked before it is trusted.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/kv"
	"github.com/idilsaglam/todolist/internal/model"
)

// DefaultKey is the slot the list lives under.
const DefaultKey = "todos"

// Adapter round-trips a model.List through a kv.Store.
type Adapter struct {
	kv  kv.Store
	key string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// New returns an Adapter writing to s.
func New(s kv.Store, opts ...Option) *Adapter {
	a := &Adapter{kv: s, key: DefaultKey}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the slot this adapter reads and writes.
func (a *Adapter) Key() string { return a.key }

type envelope struct {
	Version int      `json:"version"`
	Todos   []record `json:"todos"`
}

type record struct {
	ID      recordID `json:"id"`
	Label   string   `json:"label"`
	Checked bool     `json:"checked"`
}

// recordID accepts a JSON string or a JSON integer.
type recordID string

func (r *recordID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*r = recordID(fmt.Sprintf("%d", i))
		return nil
	}
	*r = recordID(n.String())
	return nil
}

// Save writes l in canonical order. A failed write is returned as a
// *model.PersistenceWriteError.
func (a *Adapter) Save(l model.List) error {
	env := envelope{Version: Version, Todos: make([]record, 0, len(l))}
	for _, t := range l {
		env.Todos = append(env.Todos, record{ID: recordID(t.ID), Label: t.Label, Checked: t.Checked})
	}
	b, err := json.Marshal(env)
	if err != nil {
		return &model.PersistenceWriteError{Key: a.key, Err: fmt.Errorf("json marshal: %w", err)}
	}
	if err := a.kv.SetItem(a.key, string(b)); err != nil {
		return &model.PersistenceWriteError{Key: a.key, Err: err}
	}
	return nil
}

// Load reads the list back. It returns (nil, nil) when nothing has been
// saved yet and a *model.CorruptStateError when the stored value fails
// decoding or schema checks.
func (a *Adapter) Load() (model.List, error) {
	raw, ok, err := a.kv.GetItem(a.key)
	if errors.Is(err, kv.ErrMalformed) {
		return nil, a.corrupt("", err)
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", a.key, err)
	}
	if !ok {
		return nil, nil
	}
	return a.Decode(raw)
}

// Decode parses a stored value. Both the versioned envelope and the bare
// array written by the browser build are accepted.
func (a *Adapter) Decode(raw string) (model.List, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, a.corrupt("", fmt.Errorf("empty value"))
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, a.corrupt("", fmt.Errorf("json unmarshal: %w", err))
	}
	if dec.More() {
		return nil, a.corrupt("", fmt.Errorf("trailing data after value"))
	}

	legacy := trimmed[0] == '['
	schema := envelopeSchema
	if legacy {
		schema = legacySchema
	}
	if err := schema.Validate(doc); err != nil {
		path, cause := schemaFailure(err)
		return nil, a.corrupt(path, cause)
	}

	var records []record
	if legacy {
		if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
			return nil, a.corrupt("", fmt.Errorf("json unmarshal: %w", err))
		}
	} else {
		var env envelope
		if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
			return nil, a.corrupt("", fmt.Errorf("json unmarshal: %w", err))
		}
		records = env.Todos
	}

	prefix := "todos"
	if legacy {
		prefix = ""
	}
	l := make(model.List, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, r := range records {
		id := string(r.ID)
		if first, dup := seen[id]; dup {
			return nil, a.corrupt(fmt.Sprintf("%s[%d].id", prefix, i),
				fmt.Errorf("duplicate id %q (first at index %d)", id, first))
		}
		seen[id] = i
		t := model.Todo{ID: id, Label: r.Label, Checked: r.Checked}
		var verr *model.ValidationError
		if err := t.Validate(); errors.As(err, &verr) {
			return nil, a.corrupt(fmt.Sprintf("%s[%d].%s", prefix, i, verr.Field), err)
		}
		l = append(l, t)
	}
	if err := l.Validate(); err != nil {
		return nil, a.corrupt(prefix, err)
	}
	return l, nil
}

func (a *Adapter) corrupt(path string, err error) error {
	return &model.CorruptStateError{Key: a.key, Path: path, Err: err}
}
