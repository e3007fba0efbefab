package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": &Memory{},
		"file":   NewFile(filepath.Join(t.TempDir(), "nested", "todos.json")),
	}
}

func TestStore_Contract(t *testing.T) {
	t.Parallel()

	for name, s := range backends(t) {
		name, s := name, s
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, ok, err := s.GetItem("todos")
			require.NoError(t, err)
			assert.False(t, ok, "absent key")

			require.NoError(t, s.SetItem("todos", `[{"id":"1"}]`))
			require.NoError(t, s.SetItem("other", "x"))

			v, ok, err := s.GetItem("todos")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"1"}]`, v)

			require.NoError(t, s.RemoveItem("todos"))
			_, ok, err = s.GetItem("todos")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.RemoveItem("missing"))

			require.NoError(t, s.Clear())
			_, ok, err = s.GetItem("other")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, NewFile(path).SetItem("todos", "v1"))

	v, ok, err := NewFile(path).GetItem("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
}

func TestFile_MalformedFileIsReplacedOnWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"todos": "[{\"id\":\"1\"`), 0o644))
	f := NewFile(path)

	_, _, err := f.GetItem("todos")
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "json unmarshal")

	require.NoError(t, f.SetItem("todos", "fresh"))

	v, ok, err := NewFile(path).GetItem("todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fresh", v)
}

func TestFile_UnreadablePathIsNotMalformed(t *testing.T) {
	t.Parallel()

	_, _, err := NewFile(t.TempDir()).GetItem("todos")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestNewMemory_CopiesInput(t *testing.T) {
	t.Parallel()

	src := map[string]string{"todos": "a"}
	m := NewMemory(src)
	src["todos"] = "b"

	v, _, _ := m.GetItem("todos")
	assert.Equal(t, "a", v)
}
