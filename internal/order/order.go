// Package order derives the presentation order of a todo list.
package order

import "github.com/idilsaglam/todolist/internal/model"

// Display returns l with unchecked todos first and checked todos last.
// Relative order inside each group is the canonical order. l is not modified.
func Display(l model.List) model.List {
	pending, done := Partition(l)
	return append(pending, done...)
}

// Partition splits l into unchecked and checked todos in a single pass,
// preserving relative order. The returned slices never alias l.
func Partition(l model.List) (pending, done model.List) {
	pending = make(model.List, 0, len(l))
	done = make(model.List, 0, len(l))
	for _, t := range l {
		if t.Checked {
			done = append(done, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, done
}

// Stats counts checked and unchecked todos.
func Stats(l model.List) (done, pending int) {
	for _, t := range l {
		if t.Checked {
			done++
		} else {
			pending++
		}
	}
	return
}
