package graph

import (
	"fmt"
	"reflect"
)

// ToAny returns the plain Go form of a graph value: map[string]any for
// objects, []any for lists, scalars unchanged. The result shares no
// container storage with the input, so it is safe to hand across the
// transport boundary.
//
// ToAny recurses over the whole value and therefore detects cycles,
// which Wrap deliberately does not; a cyclic value is an error.
func ToAny(v any) (any, error) {
	return toAny(v, map[uintptr]bool{})
}

func toAny(v any, visited map[uintptr]bool) (any, error) {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil, nil
		}
		return toAnyMap(x.m, visited)
	case map[string]any:
		return toAnyMap(x, visited)
	case *List:
		if x == nil {
			return nil, nil
		}
		return toAnySlice(x.elems, visited)
	case []any:
		return toAnySlice(x, visited)
	default:
		return v, nil
	}
}

func toAnyMap(m map[string]any, visited map[uintptr]bool) (any, error) {
	p := reflect.ValueOf(m).Pointer()
	if visited[p] {
		return nil, fmt.Errorf("cycle detected in graph object")
	}
	visited[p] = true
	defer delete(visited, p)

	res := make(map[string]any, len(m))
	for k, v := range m {
		c, err := toAny(v, visited)
		if err != nil {
			return nil, err
		}
		res[k] = c
	}
	return res, nil
}

func toAnySlice(s []any, visited map[uintptr]bool) (any, error) {
	if s == nil {
		return []any{}, nil
	}
	p := reflect.ValueOf(s).Pointer()
	if visited[p] {
		return nil, fmt.Errorf("cycle detected in graph list")
	}
	visited[p] = true
	defer delete(visited, p)

	res := make([]any, len(s))
	for i, v := range s {
		c, err := toAny(v, visited)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}
