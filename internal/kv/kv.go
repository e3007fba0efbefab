// Package kv is the local key-value substrate the todo list persists into.
// It mirrors the browser storage contract: string keys, string values.
package kv

import "errors"

// ErrMalformed reports a backing container that could not be parsed.
// Writes replace such a container instead of failing.
var ErrMalformed = errors.New("malformed store")

// Store is a synchronous local key-value store.
// GetItem reports ok=false when key is absent.
type Store interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Clear() error
}
