package facade

import (
	"reflect"

	"github.com/graphkit/go-graph/graph"
)

// Decode copies the fields of o into the struct pointed to by v, using
// `graph:"..."` tags for key names. Absent keys leave the destination
// field at its zero value, and stored values of an unexpected kind are
// skipped rather than reported, matching the facade read policy. Errors
// are reserved for misuse of the destination itself.
func Decode(o *graph.Object, v any) error {
	if o == nil {
		return &DecodeError{Message: "source object cannot be nil"}
	}
	if v == nil {
		return &DecodeError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return &DecodeError{Message: "destination must be a non-nil pointer"}
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return &DecodeError{Message: "destination must point to a struct"}
	}
	return decodeStruct(o, elem, "")
}

func decodeStruct(o *graph.Object, sv reflect.Value, path string) error {
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
		val, ok := o.Lookup(ft.Name)
		if !ok {
			continue
		}
		if err := decodeValue(val, sv.Field(i), joinPath(path, ft.Name)); err != nil {
			return err
		}
	}
	return nil
}

var (
	objectType = reflect.TypeOf((*graph.Object)(nil))
	listType   = reflect.TypeOf((*graph.List)(nil))
)

func decodeValue(v any, dst reflect.Value, path string) error {
	// wrapped container references pass through untouched
	switch dst.Type() {
	case objectType:
		if o, ok := v.(*graph.Object); ok {
			dst.Set(reflect.ValueOf(o))
		}
		return nil
	case listType:
		if l, ok := v.(*graph.List); ok {
			dst.Set(reflect.ValueOf(l))
		}
		return nil
	}

	switch dst.Kind() {
	case reflect.String:
		if s, ok := v.(string); ok {
			dst.SetString(s)
		}
	case reflect.Bool:
		if b, ok := v.(bool); ok {
			dst.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, ok := graph.Int64(v); ok && !dst.OverflowInt(i) {
			dst.SetInt(i)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i, ok := graph.Int64(v); ok && i >= 0 && !dst.OverflowUint(uint64(i)) {
			dst.SetUint(uint64(i))
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := graph.Float64(v); ok && !dst.OverflowFloat(f) {
			dst.SetFloat(f)
		}
	case reflect.Pointer:
		if v == nil {
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return decodeValue(v, dst.Elem(), path)
	case reflect.Struct:
		if o, ok := v.(*graph.Object); ok {
			return decodeStruct(o, dst, path)
		}
	case reflect.Slice:
		l, ok := v.(*graph.List)
		if !ok {
			return nil
		}
		out := reflect.MakeSlice(dst.Type(), l.Len(), l.Len())
		for i := 0; i < l.Len(); i++ {
			if err := decodeValue(l.At(i), out.Index(i), path); err != nil {
				return err
			}
		}
		dst.Set(out)
	case reflect.Map:
		o, ok := v.(*graph.Object)
		if !ok || dst.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := reflect.MakeMapWithSize(dst.Type(), o.Len())
		elemType := dst.Type().Elem()
		for k := range o.Keys() {
			ev := reflect.New(elemType).Elem()
			if err := decodeValue(o.Get(k), ev, joinPath(path, k)); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k), ev)
		}
		dst.Set(out)
	case reflect.Interface:
		if dst.NumMethod() != 0 {
			return nil
		}
		if v == nil {
			dst.SetZero()
			return nil
		}
		dst.Set(reflect.ValueOf(v))
	}
	return nil
}
