package facade

import (
	"reflect"
	"strings"
)

// fieldTag holds binding metadata extracted from a `graph:"..."` struct
// tag. Field matching is case-sensitive; the default key is the exact
// struct field name, like encoding/json.
type fieldTag struct {
	Name      string
	Omit      bool
	OmitEmpty bool
}

// parseFieldTag parses `graph:"name,omitempty"` style tags.
// `graph:"-"` omits the field from binding entirely.
func parseFieldTag(sf reflect.StructField) fieldTag {
	ft := fieldTag{Name: sf.Name}
	tag, ok := sf.Tag.Lookup("graph")
	if !ok {
		return ft
	}
	if tag == "-" {
		ft.Omit = true
		return ft
	}
	name, rest, _ := strings.Cut(tag, ",")
	if name != "" {
		ft.Name = name
	}
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if opt == "omitempty" {
			ft.OmitEmpty = true
		}
	}
	return ft
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
