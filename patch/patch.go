// Package patch applies server-side deltas to graph objects using RFC
// 6902 JSON patches and RFC 7386 merge patches. Application round-trips
// through the JSON boundary; the result is a freshly wrapped object, not
// an in-place mutation.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/graphkit/go-graph/codec"
	"github.com/graphkit/go-graph/debug"
	"github.com/graphkit/go-graph/graph"
)

// Apply applies an RFC 6902 JSON patch document to o and returns the
// patched object.
func Apply(o *graph.Object, rfc6902 []byte) (*graph.Object, error) {
	ops, err := jsonpatch.DecodePatch(rfc6902)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	doc, err := codec.ToJSON(o)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("apply json-patch to %s\n", doc)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return codec.FromJSON(out)
}

// Merge applies an RFC 7386 merge patch document to o and returns the
// merged object.
func Merge(o *graph.Object, mergePatch []byte) (*graph.Object, error) {
	doc, err := codec.ToJSON(o)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("apply merge-patch to %s\n", doc)
	}
	out, err := jsonpatch.MergePatch(doc, mergePatch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return codec.FromJSON(out)
}
