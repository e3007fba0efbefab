package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrCorruptState     = errors.New("corrupt state")
	ErrPersistenceWrite = errors.New("persistence write failed")
)

// MsgRequired is the reason used when a field is missing or blank.
const MsgRequired = "required"

// ValidationError reports input rejected before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports a toggle or lookup on an unknown id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo %q: %s", e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// CorruptStateError reports a persisted value that could not be decoded.
// Path locates the offending value inside the payload when known.
type CorruptStateError struct {
	Key  string
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	msg := fmt.Sprintf("%s under key %q", ErrCorruptState.Error(), e.Key)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *CorruptStateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCorruptState}
	}
	return []error{ErrCorruptState, e.Err}
}

// PersistenceWriteError reports a failed save. The in-memory state stays
// authoritative when this is returned.
type PersistenceWriteError struct {
	Key string
	Err error
}

func (e *PersistenceWriteError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", ErrPersistenceWrite.Error(), e.Err)
	}
	return fmt.Sprintf("%s for key %q: %v", ErrPersistenceWrite.Error(), e.Key, e.Err)
}

func (e *PersistenceWriteError) Unwrap() []error {
	return []error{ErrPersistenceWrite, e.Err}
}
