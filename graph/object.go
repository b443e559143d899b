package graph

import (
	"iter"
	"maps"
	"slices"

	"github.com/graphkit/go-graph/debug"
)

// IDKey is the conventional key carrying a node's domain identifier.
// Its presence is not enforced; see SameID.
const IDKey = "id"

// Object is a mutable associative container representing one graph node.
//
// Allowed value kinds are nil, bool, numbers, string, *Object, *List, and
// raw map[string]any / []any pending lazy conversion. Keys iterate in
// insertion order for created objects and in sorted order for wrapped
// documents; iteration order must not be relied upon for equality.
type Object struct {
	keys []string
	m    map[string]any
}

// New returns a new, empty Object, ready for population before posting a
// new node or action to the API.
func New() *Object {
	return &Object{m: map[string]any{}}
}

// Wrap returns an Object view over raw without copying it. The raw
// reference is consumed: further mutation must go through the returned
// Object. Nested maps and slices are converted lazily on first read.
func Wrap(raw map[string]any) *Object {
	if raw == nil {
		return New()
	}
	if debug.Wrap() {
		debug.Logf("wrap object with %d keys\n", len(raw))
	}
	return &Object{
		keys: slices.Sorted(maps.Keys(raw)),
		m:    raw,
	}
}

// WrapValue wraps a single raw value. Maps become Objects, slices become
// Lists, scalars pass through. Already-wrapped values are returned as is,
// so WrapValue(WrapValue(v)) shares backing storage with WrapValue(v).
func WrapValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return Wrap(x)
	case []any:
		return WrapList(x)
	default:
		return v
	}
}

// Len returns the number of stored keys.
func (o *Object) Len() int {
	return len(o.m)
}

// Get returns the value at key, or nil if the key is absent. Absence is
// not an error.
//
// If the stored value is a raw map or slice, Get converts it to an
// *Object or *List and stores the converted form back under key, so
// repeated reads return the same instance.
func (o *Object) Get(key string) any {
	v, _ := o.Lookup(key)
	return v
}

// Lookup is Get plus a presence report, distinguishing a stored nil from
// an absent key.
func (o *Object) Lookup(key string) (any, bool) {
	v, ok := o.m[key]
	if !ok {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, []any:
		w := WrapValue(v)
		o.m[key] = w
		return w, true
	}
	return v, true
}

// Set inserts or overwrites the value at key. The mutation is visible to
// every holder of this Object, including facade views.
func (o *Object) Set(key string, value any) {
	if _, ok := o.m[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.m[key] = value
}

// Remove deletes the entry at key. Removing an absent key is a no-op.
func (o *Object) Remove(key string) {
	if _, ok := o.m[key]; !ok {
		return
	}
	delete(o.m, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Keys returns a restartable sequence over a snapshot of the keys taken
// at call time. Mutating the Object does not affect sequences already
// obtained; start a fresh sequence to observe the new key set.
func (o *Object) Keys() iter.Seq[string] {
	ks := slices.Clone(o.keys)
	return func(yield func(string) bool) {
		for _, k := range ks {
			if !yield(k) {
				return
			}
		}
	}
}

// SameID reports whether a and b are the same graph object, by equality
// of their identifier fields. It is false when either side is nil or
// lacks an identifier; absence is not equality. SameID is independent of
// reference equality and of structural equality.
func SameID(a, b *Object) bool {
	if a == nil || b == nil {
		return false
	}
	av, aok := a.Lookup(IDKey)
	bv, bok := b.Lookup(IDKey)
	if !aok || !bok || denil(av) == nil || denil(bv) == nil {
		return false
	}
	return Equal(av, bv)
}
