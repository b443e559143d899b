package graph

import (
	"slices"
	"testing"
)

func TestSetGet(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"string", "name", "Cafe"},
		{"int", "checkins", int64(12)},
		{"float", "rating", 4.5},
		{"bool", "open", true},
		{"nil", "closed_reason", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			o.Set(tt.key, tt.value)
			if got := o.Get(tt.key); got != tt.value {
				t.Errorf("Get(%q) = %v, want %v", tt.key, got, tt.value)
			}
			if o.Len() != 1 {
				t.Errorf("Len() = %d, want 1", o.Len())
			}
		})
	}
}

func TestSetOverwrite(t *testing.T) {
	o := New()
	o.Set("name", "Cafe")
	o.Set("name", "Bistro")
	if got := o.Get("name"); got != "Bistro" {
		t.Errorf("Get(name) = %v, want Bistro", got)
	}
	if o.Len() != 1 {
		t.Errorf("Len() = %d, want 1", o.Len())
	}
}

func TestGetAbsent(t *testing.T) {
	o := New()
	if got := o.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if _, ok := o.Lookup("missing"); ok {
		t.Error("Lookup(missing) reported presence")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	o := New()
	o.Set("id", "1")
	o.Remove("never-set")
	if o.Len() != 1 {
		t.Errorf("Len() = %d after removing absent key, want 1", o.Len())
	}
	o.Remove("id")
	if o.Len() != 0 {
		t.Errorf("Len() = %d after removing id, want 0", o.Len())
	}
	o.Remove("id")
	if o.Len() != 0 {
		t.Errorf("Len() = %d after double remove, want 0", o.Len())
	}
}

func TestKeysInsertionOrder(t *testing.T) {
	o := New()
	o.Set("c", 1)
	o.Set("a", 2)
	o.Set("b", 3)
	got := slices.Collect(o.Keys())
	want := []string{"c", "a", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestKeysSnapshotSurvivesMutation(t *testing.T) {
	o := New()
	o.Set("a", 1)
	o.Set("b", 2)
	seq := o.Keys()
	o.Remove("a")
	o.Set("c", 3)
	// the earlier snapshot still iterates without issue
	if got := slices.Collect(seq); len(got) != 2 {
		t.Errorf("stale snapshot has %d keys, want 2", len(got))
	}
	got := slices.Collect(o.Keys())
	want := []string{"b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("fresh Keys() = %v, want %v", got, want)
	}
}

func TestWrapSharesStorage(t *testing.T) {
	raw := map[string]any{"id": "123", "name": "Cafe"}
	a := Wrap(raw)
	b := Wrap(raw)
	a.Set("name", "Bistro")
	if got := b.Get("name"); got != "Bistro" {
		t.Errorf("mutation through a not visible through b: got %v", got)
	}
}

func TestWrapValueIdempotent(t *testing.T) {
	raw := map[string]any{"id": "123"}
	w := WrapValue(raw)
	if WrapValue(w) != w {
		t.Error("WrapValue of a wrapped object made a new value")
	}
	o, ok := w.(*Object)
	if !ok {
		t.Fatalf("WrapValue returned %T, want *Object", w)
	}
	o.Set("name", "Cafe")
	// the second wrapper over raw sees the mutation: same backing map
	if got := Wrap(raw).Get("name"); got != "Cafe" {
		t.Errorf("re-wrap lost mutation, got %v", got)
	}
}

func TestLazyWrapMemoized(t *testing.T) {
	raw := map[string]any{
		"id":       "123",
		"name":     "Cafe",
		"location": map[string]any{"city": "Paris"},
		"tags":     []any{"coffee", "wifi"},
	}
	o := Wrap(raw)

	first := o.Get("location")
	loc, ok := first.(*Object)
	if !ok {
		t.Fatalf("Get(location) = %T, want *Object", first)
	}
	if got := loc.Get("city"); got != "Paris" {
		t.Errorf("location.city = %v, want Paris", got)
	}
	if second := o.Get("location"); second != first {
		t.Error("repeated Get(location) returned a different instance")
	}

	tags, ok := o.Get("tags").(*List)
	if !ok {
		t.Fatalf("Get(tags) = %T, want *List", o.Get("tags"))
	}
	if tags.Len() != 2 || tags.At(0) != "coffee" {
		t.Errorf("tags = %v len %d", tags.At(0), tags.Len())
	}
	if again, _ := o.Get("tags").(*List); again != tags {
		t.Error("repeated Get(tags) returned a different instance")
	}
}

func TestUnknownFieldsRetrievable(t *testing.T) {
	o := Wrap(map[string]any{"id": "123", "name": "Cafe"})
	o.Set("foo", "bar")
	if got := o.Get("foo"); got != "bar" {
		t.Errorf("Get(foo) = %v, want bar", got)
	}
}

func TestSameID(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]any
		want bool
	}{
		{
			"equal ids",
			map[string]any{"id": "123", "name": "a"},
			map[string]any{"id": "123", "name": "b"},
			true,
		},
		{
			"different ids same fields",
			map[string]any{"id": "1", "name": "Cafe", "city": "Paris"},
			map[string]any{"id": "2", "name": "Cafe", "city": "Paris"},
			false,
		},
		{
			"left missing id",
			map[string]any{"name": "Cafe"},
			map[string]any{"id": "1", "name": "Cafe"},
			false,
		},
		{
			"both missing id, fields equal",
			map[string]any{"name": "Cafe"},
			map[string]any{"name": "Cafe"},
			false,
		},
		{
			"numeric ids across representations",
			map[string]any{"id": int64(7)},
			map[string]any{"id": float64(7)},
			true,
		},
		{
			"nil id is absence",
			map[string]any{"id": nil},
			map[string]any{"id": nil},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameID(Wrap(tt.a), Wrap(tt.b)); got != tt.want {
				t.Errorf("SameID = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSameIDNil(t *testing.T) {
	if SameID(nil, nil) {
		t.Error("SameID(nil, nil) = true")
	}
	if SameID(New(), nil) {
		t.Error("SameID(o, nil) = true")
	}
}
