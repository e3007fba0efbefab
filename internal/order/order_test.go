package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/todolist/internal/model"
)

func labels(l model.List) []string {
	out := make([]string, 0, len(l))
	for _, t := range l {
		out = append(out, t.Label)
	}
	return out
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   model.List
		want []string
	}{
		{
			name: "nothing checked keeps canonical order",
			in:   model.List{{ID: "1", Label: "A"}, {ID: "2", Label: "B"}, {ID: "3", Label: "C"}},
			want: []string{"A", "B", "C"},
		},
		{
			name: "checked first item sinks",
			in:   model.List{{ID: "1", Label: "A", Checked: true}, {ID: "2", Label: "B"}, {ID: "3", Label: "C"}},
			want: []string{"B", "C", "A"},
		},
		{
			name: "stable within both groups",
			in: model.List{
				{ID: "1", Label: "A", Checked: true},
				{ID: "2", Label: "B"},
				{ID: "3", Label: "C", Checked: true},
				{ID: "4", Label: "D"},
				{ID: "5", Label: "E"},
			},
			want: []string{"B", "D", "E", "A", "C"},
		},
		{
			name: "all checked",
			in:   model.List{{ID: "1", Label: "A", Checked: true}, {ID: "2", Label: "B", Checked: true}},
			want: []string{"A", "B"},
		},
		{
			name: "empty",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, labels(Display(tt.in)))
		})
	}
}

func TestDisplay_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := model.List{{ID: "1", Label: "A", Checked: true}, {ID: "2", Label: "B"}}
	before := in.Clone()

	out := Display(in)
	out[0].Label = "changed"

	assert.Equal(t, before, in)
}

func TestDisplay_Deterministic(t *testing.T) {
	t.Parallel()

	in := model.List{{ID: "1", Label: "A", Checked: true}, {ID: "2", Label: "B"}, {ID: "3", Label: "C"}}
	assert.Equal(t, Display(in), Display(in))
}

func TestStats(t *testing.T) {
	t.Parallel()

	done, pending := Stats(model.List{{Checked: true}, {}, {}})
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
