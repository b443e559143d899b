package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAnyRoundtrip(t *testing.T) {
	raw := map[string]any{
		"id":       "123",
		"name":     "Cafe",
		"location": map[string]any{"city": "Paris"},
		"tags":     []any{"coffee", "wifi"},
		"rating":   4.5,
	}
	o := Wrap(raw)
	// force lazy conversion so ToAny sees wrapped values
	o.Get("location")
	o.Get("tags")

	got, err := ToAny(o)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"id":       "123",
		"name":     "Cafe",
		"location": map[string]any{"city": "Paris"},
		"tags":     []any{"coffee", "wifi"},
		"rating":   4.5,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", d)
	}
}

func TestToAnyDetachesStorage(t *testing.T) {
	o := Wrap(map[string]any{"name": "Cafe"})
	plain, err := ToAny(o)
	if err != nil {
		t.Fatal(err)
	}
	plain.(map[string]any)["name"] = "Bistro"
	if got := o.Get("name"); got != "Cafe" {
		t.Errorf("mutating ToAny result leaked into object: %v", got)
	}
}

func TestToAnyCycle(t *testing.T) {
	raw := map[string]any{"id": "1"}
	raw["self"] = raw
	if _, err := ToAny(Wrap(raw)); err == nil {
		t.Error("ToAny on cyclic object did not report an error")
	}

	inner := []any{nil}
	inner[0] = inner
	if _, err := ToAny(WrapList(inner)); err == nil {
		t.Error("ToAny on cyclic list did not report an error")
	}
}

func TestWrapCyclicNoRecursion(t *testing.T) {
	raw := map[string]any{"id": "1"}
	raw["self"] = raw
	o := Wrap(raw)
	self, ok := o.Get("self").(*Object)
	if !ok {
		t.Fatalf("Get(self) = %T, want *Object", o.Get("self"))
	}
	// the cycle is observable but never recursed into eagerly
	if got := self.Get("id"); got != "1" {
		t.Errorf("self.id = %v, want 1", got)
	}
}
