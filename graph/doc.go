// Package graph provides the object model for nodes of a remote
// social-graph or open-graph API.
//
// # Overview
//
// Graph API responses are schema-less key/value documents whose shape
// evolves over time: new fields appear, and third parties extend node
// types. The graph package represents every such node as an Object, a
// mutable associative container that never drops unknown fields. Typed,
// named access to well-known node shapes is layered on top by the facade
// package without the producer knowing which views will be used.
//
// # Objects
//
// An Object is created empty, for population before posting to the API:
//
//	o := graph.New()
//	o.Set("message", "hello")
//
// or by wrapping a raw document produced by the JSON layer:
//
//	o := graph.Wrap(raw)
//
// Wrap does not copy the raw map; it adopts it as the Object's backing
// storage. Callers must treat the raw reference as consumed and perform
// further mutation through the wrapper.
//
// # Lazy conversion
//
// Nested maps and slices reachable from a wrapped document are not
// converted eagerly. The first read of a nested value converts it to an
// *Object or *List and stores the converted form back under the same key,
// so repeated reads return the same instance. This replacement is an
// intentional, visible side effect of reading.
//
// Because wrapping is shallow and conversion is lazy and memoized, Wrap
// performs no cycle validation: a cyclic input yields cyclic Objects but
// never unbounded recursion. Operations that do recurse over whole values
// (ToAny, codecs, diffing) guard against cycles themselves.
//
// # Absence
//
// A missing key is not an error. Get returns nil for absent keys, Remove
// of an absent key is a no-op, and typed facade reads of absent fields
// yield zero values. This is a deliberate robustness-over-strictness
// policy for evolving schemas.
//
// # Identity
//
// Two nodes are "the same graph object" when both carry equal values
// under the conventional "id" key. SameID implements this relation; it is
// distinct from both reference equality and the structural Equal.
//
// # Thread safety
//
// Objects are not thread-safe. The model assumes single-writer,
// UI-thread-bound mutation; concurrent access requires external
// synchronization, including around lazy conversion on read.
package graph
