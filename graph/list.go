package graph

import "iter"

// List is an ordered sequence of graph values with the same lazy element
// wrapping as Object: raw maps and slices are converted on first access
// and memoized in place.
type List struct {
	elems []any
}

// NewList returns a List holding the given values.
func NewList(values ...any) *List {
	return &List{elems: values}
}

// WrapList returns a List view over raw without copying it. The raw
// reference is consumed, like Wrap.
func WrapList(raw []any) *List {
	return &List{elems: raw}
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.elems)
}

// At returns the element at index i, converting raw nested values on
// first access. An out-of-range index yields nil.
func (l *List) At(i int) any {
	if i < 0 || i >= len(l.elems) {
		return nil
	}
	switch l.elems[i].(type) {
	case map[string]any, []any:
		w := WrapValue(l.elems[i])
		l.elems[i] = w
		return w
	}
	return l.elems[i]
}

// SetAt overwrites the element at index i. It panics if i is out of
// range, like a slice store.
func (l *List) SetAt(i int, v any) {
	l.elems[i] = v
}

// Append adds values at the end.
func (l *List) Append(values ...any) {
	l.elems = append(l.elems, values...)
}

// Values returns a sequence over the elements, wrapping lazily as it
// goes. The sequence observes the length at call time.
func (l *List) Values() iter.Seq[any] {
	n := len(l.elems)
	return func(yield func(any) bool) {
		for i := 0; i < n; i++ {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// Objects returns the sequence of elements that are (or wrap to) graph
// objects, skipping every other kind.
func (l *List) Objects() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for v := range l.Values() {
			if o, ok := v.(*Object); ok {
				if !yield(o) {
					return
				}
			}
		}
	}
}
