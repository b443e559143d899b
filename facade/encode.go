package facade

import (
	"fmt"
	"math"
	"reflect"

	"github.com/graphkit/go-graph/graph"
)

// Encode builds a graph object from a Go struct (or pointer to struct),
// using `graph:"..."` tags for key names. Nested structs become nested
// objects, slices become lists. Self-referential values are reported as
// errors rather than recursed into. Unsigned integers are stored as
// int64; values above math.MaxInt64 are errors, not wraparounds.
func Encode(v any) (*graph.Object, error) {
	if v == nil {
		return nil, &EncodeError{Message: "source value cannot be nil"}
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, &EncodeError{Message: "source pointer cannot be nil"}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, &EncodeError{Message: fmt.Sprintf("cannot encode %s as graph object", rv.Kind())}
	}
	visited := map[uintptr]bool{}
	return encodeStruct(rv, "", visited)
}

func encodeStruct(sv reflect.Value, path string, visited map[uintptr]bool) (*graph.Object, error) {
	o := graph.New()
	t := sv.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		ft := parseFieldTag(sf)
		if ft.Omit {
			continue
		}
		fv := sv.Field(i)
		if ft.OmitEmpty && fv.IsZero() {
			continue
		}
		ev, err := encodeValue(fv, joinPath(path, ft.Name), visited)
		if err != nil {
			return nil, err
		}
		o.Set(ft.Name, ev)
	}
	return o, nil
}

func encodeValue(rv reflect.Value, path string, visited map[uintptr]bool) (any, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return nil, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		p := rv.Pointer()
		if visited[p] {
			return nil, &EncodeError{FieldPath: path, Message: "cycle detected"}
		}
		// wrapped containers pass through by reference
		switch rv.Type() {
		case objectType, listType:
			return rv.Interface(), nil
		}
		visited[p] = true
		defer delete(visited, p)
		return encodeValue(rv.Elem(), path, visited)
	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return encodeValue(rv.Elem(), path, visited)
	case reflect.Struct:
		return encodeStruct(rv, path, visited)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &EncodeError{FieldPath: path, Message: "map keys must be strings"}
		}
		o := graph.New()
		iter := rv.MapRange()
		for iter.Next() {
			ev, err := encodeValue(iter.Value(), joinPath(path, iter.Key().String()), visited)
			if err != nil {
				return nil, err
			}
			o.Set(iter.Key().String(), ev)
		}
		return o, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && !rv.IsNil() {
			p := rv.Pointer()
			if visited[p] {
				return nil, &EncodeError{FieldPath: path, Message: "cycle detected"}
			}
			visited[p] = true
			defer delete(visited, p)
		}
		l := graph.NewList()
		for i := 0; i < rv.Len(); i++ {
			ev, err := encodeValue(rv.Index(i), fmt.Sprintf("%s[%d]", path, i), visited)
			if err != nil {
				return nil, err
			}
			l.Append(ev)
		}
		return l, nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, &EncodeError{
				FieldPath: path,
				Message:   fmt.Sprintf("value %d overflows int64", u),
			}
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return nil, &EncodeError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported kind %s", rv.Kind()),
		}
	}
}
