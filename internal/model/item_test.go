package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		todo      Todo
		wantField string
	}{
		{name: "valid", todo: Todo{ID: "1", Label: "Buy milk"}},
		{name: "missing id", todo: Todo{Label: "Buy milk"}, wantField: "id"},
		{name: "blank label", todo: Todo{ID: "1", Label: "  \t"}, wantField: "label"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.todo.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestList_ValidateRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	l := List{{ID: "a", Label: "one"}, {ID: "a", Label: "two"}}
	err := l.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestList_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	l := List{{ID: "a", Label: "one"}}
	c := l.Clone()
	c[0].Checked = true

	assert.False(t, l[0].Checked)
	assert.Nil(t, List(nil).Clone())
}

func TestList_Index(t *testing.T) {
	t.Parallel()

	l := List{{ID: "a", Label: "one"}, {ID: "b", Label: "two"}}
	assert.Equal(t, 1, l.Index("b"))
	assert.Equal(t, -1, l.Index("zzz"))
}

func TestErrors_UnwrapToSentinels(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")

	assert.ErrorIs(t, &NotFoundError{ID: "x"}, ErrNotFound)
	assert.ErrorIs(t, &CorruptStateError{Key: "todos", Err: cause}, ErrCorruptState)
	assert.ErrorIs(t, &CorruptStateError{Key: "todos", Err: cause}, cause)
	assert.ErrorIs(t, &CorruptStateError{Key: "todos"}, ErrCorruptState)
	assert.ErrorIs(t, &PersistenceWriteError{Key: "todos", Err: cause}, ErrPersistenceWrite)
	assert.ErrorIs(t, &PersistenceWriteError{Key: "todos", Err: cause}, cause)

	err := &CorruptStateError{Key: "todos", Path: "todos[0].label", Err: cause}
	assert.Equal(t, `corrupt state under key "todos" at todos[0].label: disk full`, err.Error())
}
