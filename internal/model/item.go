// Package model holds the todo entity and the errors shared by the store,
// the persistence adapter and the UI layers.
package model

import "strings"

// Todo is the domain model for a todo entry.
// ID and Label never change after creation; Checked flips via the store only.
type Todo struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// List is the canonical, insertion-ordered sequence of todos.
type List []Todo

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Index returns the position of id in l, or -1.
func (l List) Index(id string) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Validate checks the invariants a stored Todo must hold.
func (t Todo) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return &ValidationError{Field: "id", Reason: MsgRequired}
	}
	if strings.TrimSpace(t.Label) == "" {
		return &ValidationError{Field: "label", Reason: MsgRequired}
	}
	return nil
}

// Validate checks every entry and rejects duplicate ids.
func (l List) Validate() error {
	seen := make(map[string]struct{}, len(l))
	for _, t := range l {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.ID]; dup {
			return &ValidationError{Field: "id", Reason: "duplicate: " + t.ID}
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
