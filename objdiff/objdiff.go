// Package objdiff computes field-level change sets between graph
// objects. Ordered key sequences are aligned with go-diff so that key
// renames and reorderings produce minimal change sets; shared fields are
// diffed recursively.
package objdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/graphkit/go-graph/debug"
	"github.com/graphkit/go-graph/graph"
)

// Objects returns a change set between from and to, or nil when the two
// are structurally equal. Each changed field maps to a record carrying
// "from" and/or "to": only "from" means the field was removed, only
// "to" means it was added, both mean it was replaced.
func Objects(from, to *graph.Object) *graph.Object {
	if from == nil {
		from = graph.New()
	}
	if to == nil {
		to = graph.New()
	}
	if debug.Diff() {
		debug.Logf("diff objects %d/%d keys\n", from.Len(), to.Len())
	}
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(fieldMap, runeMap, from)
	toRunes := mapKeysTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := graph.New()
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				key := runeMap[r]
				res.Set(key, change(from.Get(key), nil, true, false))
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				key := runeMap[r]
				res.Set(key, change(nil, to.Get(key), false, true))
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				key := runeMap[r]
				if c := Values(from.Get(key), to.Get(key)); c != nil {
					res.Set(key, c)
				}
			}
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

// Values diffs two graph values, recursing into objects and lists.
// It returns nil when the values are equal.
func Values(from, to any) any {
	from, to = graph.WrapValue(from), graph.WrapValue(to)
	if fo, ok := from.(*graph.Object); ok {
		if t, ok := to.(*graph.Object); ok {
			return Objects(fo, t)
		}
	}
	if fl, ok := from.(*graph.List); ok {
		if tl, ok := to.(*graph.List); ok {
			return listsOrNil(fl, tl)
		}
	}
	if graph.Equal(from, to) {
		return nil
	}
	return change(from, to, true, true)
}

// Lists returns positional changes between two lists, or nil when they
// are equal. Entries carry "index" (relative to the side the value came
// from) plus "from" for removals and "to" for insertions.
func Lists(from, to *graph.List) *graph.List {
	return listsOrNil(from, to)
}

func listsOrNil(from, to *graph.List) *graph.List {
	var dict []any
	fromRunes := mapElemsTo(&dict, from)
	toRunes := mapElemsTo(&dict, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := graph.NewList()
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				e := change(from.At(fi), nil, true, false)
				e.Set("index", int64(fi))
				res.Append(e)
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				e := change(nil, to.At(ti), false, true)
				e.Set("index", int64(ti))
				res.Append(e)
				ti++
			}
		case diffpatch.DiffEqual:
			fi += len([]rune(diff.Text))
			ti += len([]rune(diff.Text))
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

func change(from, to any, hasFrom, hasTo bool) *graph.Object {
	c := graph.New()
	if hasFrom {
		c.Set("from", from)
	}
	if hasTo {
		c.Set("to", to)
	}
	return c
}

// mapKeysTo assigns one rune per distinct field name, shared across both
// objects, so go-diff can align the ordered key sequences.
func mapKeysTo(m map[string]rune, im map[rune]string, o *graph.Object) []rune {
	rs := make([]rune, 0, o.Len())
	for k := range o.Keys() {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs = append(rs, r)
	}
	return rs
}

// mapElemsTo assigns one rune per distinct element value, using
// structural equality, so list diffs align on content.
func mapElemsTo(dict *[]any, l *graph.List) []rune {
	if l == nil {
		return nil
	}
	rs := make([]rune, 0, l.Len())
	for v := range l.Values() {
		r := -1
		for i, dv := range *dict {
			if graph.Equal(dv, v) {
				r = i
				break
			}
		}
		if r < 0 {
			r = len(*dict)
			*dict = append(*dict, v)
		}
		rs = append(rs, rune(r))
	}
	return rs
}
