package facade_test

import (
	"testing"

	"github.com/graphkit/go-graph/facade"
	"github.com/graphkit/go-graph/graph"
)

// Place and Location are the well-known facades used throughout these
// tests; Starship is deliberately unrelated to anything stored.

type Location struct{ facade.Base }

func (l Location) City() string  { return l.String("city") }
func (l Location) State() string { return l.String("state") }
func (l Location) Lat() float64  { return l.Float("latitude") }
func (l Location) Long() float64 { return l.Float("longitude") }

type Place struct{ facade.Base }

func (p Place) ID() string   { return p.String("id") }
func (p Place) Name() string { return p.String("name") }
func (p Place) Location() Location {
	return facade.Of[Location](p.Object("location"))
}

type Starship struct{ facade.Base }

func (s Starship) Warp() int64      { return s.Int("warp") }
func (s Starship) Captain() string  { return s.String("captain") }
func (s Starship) Cloaked() bool    { return s.Bool("cloaked") }
func (s Starship) Crew() *graph.List { return s.List("crew") }

func placeDoc() *graph.Object {
	return graph.Wrap(map[string]any{
		"id":   "123",
		"name": "Cafe",
		"location": map[string]any{
			"city":     "Paris",
			"latitude": 48.86,
		},
	})
}

func TestFacadeTypedReads(t *testing.T) {
	p := facade.Of[Place](placeDoc())
	if p.Name() != "Cafe" {
		t.Errorf("Name() = %q, want Cafe", p.Name())
	}
	if p.Location().City() != "Paris" {
		t.Errorf("Location().City() = %q, want Paris", p.Location().City())
	}
	if p.Location().Lat() != 48.86 {
		t.Errorf("Location().Lat() = %v", p.Location().Lat())
	}
	// undeclared state field reads as zero, not an error
	if p.Location().State() != "" {
		t.Errorf("Location().State() = %q, want empty", p.Location().State())
	}
}

func TestFacadeSharesStorage(t *testing.T) {
	o := placeDoc()
	p := facade.Of[Place](o)
	if p.GraphObject() != o {
		t.Fatal("facade does not share the object's identity")
	}
	p.Set("name", "Bistro")
	if got := o.Get("name"); got != "Bistro" {
		t.Errorf("facade write not visible via raw get: %v", got)
	}
	o.Set("name", "Brasserie")
	if p.Name() != "Brasserie" {
		t.Errorf("raw write not visible via facade: %q", p.Name())
	}
}

func TestTwoViewsInterchangeable(t *testing.T) {
	o := placeDoc()
	a := facade.Of[Place](o)
	b := facade.Of[Place](o)
	a.Set("name", "Bistro")
	if b.Name() != "Bistro" {
		t.Errorf("views diverged: %q", b.Name())
	}
}

func TestUnrelatedFacadeNeverErrors(t *testing.T) {
	s := facade.Of[Starship](placeDoc())
	if s.Warp() != 0 {
		t.Errorf("Warp() = %d, want 0", s.Warp())
	}
	if s.Captain() != "" {
		t.Errorf("Captain() = %q, want empty", s.Captain())
	}
	if s.Cloaked() {
		t.Error("Cloaked() = true, want false")
	}
	if s.Crew() != nil {
		t.Errorf("Crew() = %v, want nil", s.Crew())
	}
}

func TestFacadeOfNilObject(t *testing.T) {
	s := facade.Of[Starship](nil)
	if s.Warp() != 0 || s.Captain() != "" || s.Cloaked() || s.Crew() != nil {
		t.Error("reads on a nil-object facade are not zero values")
	}
	// writes are dropped, not panics
	s.Set("warp", int64(9))
	if s.GraphObject() != nil {
		t.Error("nil-object facade grew an object")
	}
}

func TestOffKindReadsYieldZero(t *testing.T) {
	o := graph.Wrap(map[string]any{
		"warp":    "not a number",
		"captain": int64(7),
		"cloaked": "yes",
		"crew":    "nobody",
	})
	s := facade.Of[Starship](o)
	if s.Warp() != 0 {
		t.Errorf("Warp() = %d, want 0", s.Warp())
	}
	if s.Captain() != "" {
		t.Errorf("Captain() = %q, want empty", s.Captain())
	}
	if s.Cloaked() {
		t.Error("Cloaked() = true, want false")
	}
	if s.Crew() != nil {
		t.Error("Crew() != nil for a string value")
	}
}

func TestFacadeDoesNotHideRawAccess(t *testing.T) {
	o := placeDoc()
	o.Set("foo", "bar")
	p := facade.Of[Place](o)
	// foo is unreachable through the facade but retrievable via raw get
	if got := p.GraphObject().Get("foo"); got != "bar" {
		t.Errorf("raw get(foo) = %v, want bar", got)
	}
}

func TestIntCoercion(t *testing.T) {
	o := graph.Wrap(map[string]any{"warp": float64(9)})
	s := facade.Of[Starship](o)
	if s.Warp() != 9 {
		t.Errorf("Warp() = %d, want 9 from float64 storage", s.Warp())
	}
}
