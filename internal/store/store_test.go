package store

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/kv"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/order"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
)

// sequentialIDs returns "1", "2", ... on each call.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

type recordingPersister struct {
	saves []model.List
	err   error
}

func (p *recordingPersister) Save(l model.List) error {
	p.saves = append(p.saves, l)
	return p.err
}

func labels(l model.List) []string {
	out := make([]string, 0, len(l))
	for _, t := range l {
		out = append(out, t.Label)
	}
	return out
}

func newTestStore(t *testing.T, loaded model.List, opts ...Option) (*Store, *recordingPersister) {
	t.Helper()
	p := &recordingPersister{}
	opts = append([]Option{WithPersister(p), WithIDGenerator(sequentialIDs())}, opts...)
	s := New(opts...)
	require.NoError(t, s.Initialize(loaded))
	return s, p
}

func threeTodos() model.List {
	return model.List{
		{ID: "1", Label: "Test 1"},
		{ID: "2", Label: "Test 2"},
		{ID: "3", Label: "Test 3"},
	}
}

func TestInitialize_SeedsWhenNoPriorState(t *testing.T) {
	t.Parallel()

	s, p := newTestStore(t, nil)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Buy groceries", all[0].Label)
	assert.False(t, all[0].Checked)
	assert.Equal(t, "Ace CoderPad interview", all[1].Label)
	assert.True(t, all[1].Checked)
	assert.NotEqual(t, all[0].ID, all[1].ID)
	assert.Empty(t, p.saves, "initialize does not persist")
}

func TestInitialize_CustomSeed(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, nil, WithSeed([]SeedItem{{Label: "  "}, {Label: "Water plants", Checked: true}}))

	assert.Equal(t, []string{"Water plants"}, labels(s.All()))
}

func TestInitialize_EmptyLoadedListIsKept(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, model.List{})
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.All())
}

func TestInitialize_RejectsInvalidList(t *testing.T) {
	t.Parallel()

	s := New()
	err := s.Initialize(model.List{{ID: "1", Label: "a"}, {ID: "1", Label: "b"}})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestInitialize_CopiesInput(t *testing.T) {
	t.Parallel()

	loaded := threeTodos()
	s, _ := newTestStore(t, loaded)
	loaded[0].Label = "mutated"

	assert.Equal(t, "Test 1", s.All()[0].Label)
}

func TestAdd_AppendsUnchecked(t *testing.T) {
	t.Parallel()

	s, p := newTestStore(t, threeTodos(), WithIDGenerator(func() string { return "new" }))

	got, err := s.Add("New Todo Item")
	require.NoError(t, err)
	assert.Equal(t, model.Todo{ID: "new", Label: "New Todo Item"}, got)

	all := s.All()
	require.Len(t, all, 4)
	assert.Equal(t, got, all[3])
	assert.Equal(t, []string{"Test 1", "Test 2", "Test 3"}, labels(all[:3]))

	require.Len(t, p.saves, 1)
	assert.Equal(t, all, p.saves[0])
}

func TestAdd_TrimsLabel(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, model.List{})
	got, err := s.Add("  Buy milk \n")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Label)
}

func TestAdd_RejectsBlank(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"", "   ", "\t\n"} {
		label := label
		t.Run(strconv.Quote(label), func(t *testing.T) {
			t.Parallel()
			s, p := newTestStore(t, threeTodos())

			_, err := s.Add(label)
			require.ErrorIs(t, err, model.ErrValidation)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "label", verr.Field)
			assert.Equal(t, 3, s.Len())
			assert.Empty(t, p.saves)
		})
	}
}

func TestAdd_SkipsCollidingIDs(t *testing.T) {
	t.Parallel()

	ids := []string{"2", "", "3", "9"}
	next := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	s, _ := newTestStore(t, threeTodos(), WithIDGenerator(next))

	got, err := s.Add("fresh")
	require.NoError(t, err)
	assert.Equal(t, "9", got.ID)
}

func TestAdd_DefaultIDsAreUnique(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.Initialize(model.List{}))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		got, err := s.Add("item")
		require.NoError(t, err)
		assert.False(t, seen[got.ID], "id %s reused", got.ID)
		seen[got.ID] = true
	}
}

func TestToggle_IsInvolutive(t *testing.T) {
	t.Parallel()

	s, p := newTestStore(t, threeTodos())
	before := s.All()

	got, err := s.Toggle("2")
	require.NoError(t, err)
	assert.True(t, got.Checked)
	assert.Equal(t, before[0], s.All()[0])
	assert.Equal(t, before[2], s.All()[2])

	got, err = s.Toggle("2")
	require.NoError(t, err)
	assert.False(t, got.Checked)
	assert.Equal(t, before, s.All())
	assert.Len(t, p.saves, 2)
}

func TestToggle_KeepsCanonicalOrder(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, threeTodos())
	_, err := s.Toggle("1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Test 1", "Test 2", "Test 3"}, labels(s.All()))
	assert.Equal(t, []string{"Test 2", "Test 3", "Test 1"}, labels(order.Display(s.All())))
}

func TestToggle_UnknownID(t *testing.T) {
	t.Parallel()

	s, p := newTestStore(t, threeTodos())
	before := s.All()

	_, err := s.Toggle("nope")
	require.ErrorIs(t, err, model.ErrNotFound)

	var nerr *model.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "nope", nerr.ID)
	assert.Equal(t, before, s.All())
	assert.Empty(t, p.saves)
}

func TestAll_IsSnapshot(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, threeTodos())
	all := s.All()
	all[0].Checked = true
	_ = append(all[:1], model.Todo{ID: "x", Label: "x"})

	assert.Equal(t, threeTodos(), s.All())
}

func TestGet(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, threeTodos())

	got, ok := s.Get("3")
	assert.True(t, ok)
	assert.Equal(t, "Test 3", got.Label)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestMutation_PersistenceFailureKeepsMemoryState(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s, p := newTestStore(t, threeTodos(), WithLogger(logger))
	p.err = errors.New("quota exceeded")

	got, err := s.Add("kept anyway")
	require.ErrorIs(t, err, model.ErrPersistenceWrite)
	assert.Equal(t, "kept anyway", got.Label)
	assert.Equal(t, 4, s.Len())

	toggled, err := s.Toggle("1")
	require.ErrorIs(t, err, model.ErrPersistenceWrite)
	assert.True(t, toggled.Checked)

	assert.Contains(t, buf.String(), "save failed")

	p.err = nil
	require.NoError(t, s.Sync())
	assert.Equal(t, s.All(), p.saves[len(p.saves)-1])
}

func TestResetToSeed(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, threeTodos())
	s.ResetToSeed()

	assert.Equal(t, []string{"Buy groceries", "Ace CoderPad interview"}, labels(s.All()))
}

// Persisted three items, toggle the first, reload: display order and
// persisted state both reflect the toggle.
func TestEndToEnd_ToggleThenReload(t *testing.T) {
	t.Parallel()

	substrate := kv.NewMemory(map[string]string{
		jsonstore.DefaultKey: `[{"id":1,"label":"Test 1","checked":false},{"id":2,"label":"Test 2","checked":false},{"id":3,"label":"Test 3","checked":false}]`,
	})
	adapter := jsonstore.New(substrate)

	loaded, err := adapter.Load()
	require.NoError(t, err)

	s := New(WithPersister(adapter))
	require.NoError(t, s.Initialize(loaded))

	_, err = s.Toggle("1")
	require.NoError(t, err)

	display := order.Display(s.All())
	assert.Len(t, display, 3)
	assert.Equal(t, []string{"Test 2", "Test 3", "Test 1"}, labels(display))

	reloaded, err := adapter.Load()
	require.NoError(t, err)
	assert.Equal(t, s.All(), reloaded)
}
