package facade

import "github.com/graphkit/go-graph/graph"

// viewer is satisfied by any struct embedding Base.
type viewer interface {
	setObject(*graph.Object)
}

// Of casts o to the facade type F, a struct embedding Base. The cast is
// a structural re-interpretation, not a copy: the returned view shares
// o's storage and identity. It always succeeds, including for o == nil
// and for facades unrelated to the object's actual shape; unmatched
// fields simply read as zero values.
func Of[F any, PF interface {
	*F
	viewer
}](o *graph.Object) F {
	var f F
	PF(&f).setObject(o)
	return f
}
