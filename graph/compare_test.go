package graph

import (
	"encoding/json"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     any
		expected int
	}{
		// kind ranking: nil < bool < number < string < list < object
		{"nil < bool", nil, false, -1},
		{"bool < number", true, int64(1), -1},
		{"number < string", int64(1), "a", -1},
		{"string < list", "a", NewList(), -1},
		{"list < object", NewList(), New(), -1},

		{"false < true", false, true, -1},
		{"true == true", true, true, 0},

		// numbers compare by value across representations
		{"int == float", int64(1), float64(1), 0},
		{"int < int", int64(1), int64(2), -1},
		{"float < int", 1.5, int64(2), -1},
		{"json.Number == int", json.Number("42"), int64(42), 0},

		{"string < string", "a", "b", -1},

		{"empty lists equal", NewList(), NewList(), 0},
		{"short list < long list", NewList(1), NewList(1, 2), -1},
		{"list element compare", NewList(1), NewList(2), -1},
		{"raw slice wraps for compare", []any{"x"}, NewList("x"), 0},

		{"empty objects equal", New(), New(), 0},
		{
			"object key order irrelevant",
			Wrap(map[string]any{"a": 1, "b": 2}),
			func() any {
				o := New()
				o.Set("b", 2)
				o.Set("a", 1)
				return o
			}(),
			0,
		},
		{
			"object value compare",
			Wrap(map[string]any{"a": 1}),
			Wrap(map[string]any{"a": 2}),
			-1,
		},
		{
			"short object < long object",
			Wrap(map[string]any{"a": 1}),
			Wrap(map[string]any{"a": 1, "b": 2}),
			-1,
		},
		{"raw map wraps for compare", map[string]any{"a": 1}, Wrap(map[string]any{"a": 1}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
			if rev := Compare(tt.b, tt.a); rev != -tt.expected {
				t.Errorf("Compare reversed = %d, want %d", rev, -tt.expected)
			}
		})
	}
}

func TestCompareNilViews(t *testing.T) {
	var no *Object
	var nl *List
	if c := Compare(no, nil); c != 0 {
		t.Errorf("Compare(nil *Object, nil) = %d, want 0", c)
	}
	if c := Compare(nl, nil); c != 0 {
		t.Errorf("Compare(nil *List, nil) = %d, want 0", c)
	}
	if c := Compare(no, false); c != -1 {
		t.Errorf("Compare(nil *Object, false) = %d, want -1", c)
	}

	// a stored nil view must not panic identity or equality checks
	o := Wrap(map[string]any{"id": "1"})
	o.Set("location", no)
	if !Equal(o, o) {
		t.Error("object holding a nil view is not equal to itself")
	}
	other := Wrap(map[string]any{"id": "1", "location": nil})
	if !Equal(o, other) {
		t.Error("stored nil view does not compare equal to stored nil")
	}
	if !SameID(o, other) {
		t.Error("SameID fails across a stored nil view")
	}
}

func TestSameIDNilView(t *testing.T) {
	var no *Object
	a := New()
	a.Set(IDKey, no)
	b := New()
	b.Set(IDKey, no)
	if SameID(a, b) {
		t.Error("nil-view ids count as identity")
	}
}

func TestEqualNested(t *testing.T) {
	a := Wrap(map[string]any{
		"id":       "123",
		"location": map[string]any{"city": "Paris"},
		"tags":     []any{"a", "b"},
	})
	b := Wrap(map[string]any{
		"tags":     []any{"a", "b"},
		"location": map[string]any{"city": "Paris"},
		"id":       "123",
	})
	if !Equal(a, b) {
		t.Error("structurally equal objects compare unequal")
	}
	b.Get("location").(*Object).Set("city", "Lyon")
	if Equal(a, b) {
		t.Error("objects with different nested values compare equal")
	}
}
