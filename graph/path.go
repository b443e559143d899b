package graph

import (
	"strconv"
	"strings"
)

// GetPath navigates nested objects and lists using a dotted path with
// optional [i] indexes, e.g. "location.city" or "tags[0]".
//
// A miss at any step (absent field, out-of-range index, wrong kind,
// malformed path) yields nil, never an error, consistent with Get.
// Field names containing '.' or '[' are not addressable this way; use
// Get for those.
func (o *Object) GetPath(path string) any {
	var cur any = o
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
			if i == len(path) {
				return nil
			}
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil
			}
			idx, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil {
				return nil
			}
			l, ok := cur.(*List)
			if !ok {
				return nil
			}
			cur = l.At(idx)
			i += end + 1
		default:
			end := i
			for end < len(path) && path[end] != '.' && path[end] != '[' {
				end++
			}
			obj, ok := cur.(*Object)
			if !ok {
				return nil
			}
			cur = obj.Get(path[i:end])
			i = end
		}
	}
	return cur
}
