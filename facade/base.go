package facade

import "github.com/graphkit/go-graph/graph"

// Base is embedded in every facade type and carries the reference to the
// shared backing object. All readers are nil-safe: on a facade cast from
// a nil object, every read yields the zero value.
type Base struct {
	obj *graph.Object
}

func (b *Base) setObject(o *graph.Object) { b.obj = o }

// GraphObject returns the underlying node, or nil. Mutations through it
// are visible to every facade view of the same node.
func (b Base) GraphObject() *graph.Object { return b.obj }

// Get returns the raw value at key, nil when absent.
func (b Base) Get(key string) any {
	if b.obj == nil {
		return nil
	}
	return b.obj.Get(key)
}

// Set writes through to the shared storage. Writing on a nil-object
// facade is a no-op.
func (b Base) Set(key string, value any) {
	if b.obj == nil {
		return
	}
	b.obj.Set(key, value)
}

// String reads a string field; absent or off-kind values yield "".
func (b Base) String(key string) string {
	s, _ := b.Get(key).(string)
	return s
}

// Int reads an integer field, coercing across stored number
// representations; absent or off-kind values yield 0.
func (b Base) Int(key string) int64 {
	i, _ := graph.Int64(b.Get(key))
	return i
}

// Float reads a numeric field as float64; absent or off-kind values
// yield 0.
func (b Base) Float(key string) float64 {
	f, _ := graph.Float64(b.Get(key))
	return f
}

// Bool reads a boolean field; absent or off-kind values yield false.
func (b Base) Bool(key string) bool {
	v, _ := b.Get(key).(bool)
	return v
}

// Object reads a nested object field; absent or off-kind values yield
// nil. The nested raw document, if any, is wrapped and memoized by the
// underlying Get.
func (b Base) Object(key string) *graph.Object {
	o, _ := b.Get(key).(*graph.Object)
	return o
}

// List reads a sequence field; absent or off-kind values yield nil.
func (b Base) List(key string) *graph.List {
	l, _ := b.Get(key).(*graph.List)
	return l
}
