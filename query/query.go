// Package query evaluates expressions against graph objects using the
// expr language. The object's fields form the evaluation environment,
// so `name == "Cafe"` reads the "name" field; a `getpath` function is
// registered for dotted-path access into nested values.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/graphkit/go-graph/debug"
	"github.com/graphkit/go-graph/graph"
)

func exprOpts(o *graph.Object) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("getpath wants a string path, got %T", params[0])
			}
			return graph.ToAny(o.GetPath(path))
		},
			new(func(string) any)),
	}
}

// Eval evaluates src against o and returns the result.
func Eval(src string, o *graph.Object) (any, error) {
	if o == nil {
		o = graph.New()
	}
	env, err := graph.ToAny(o)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("eval %q against %v\n", src, env)
	}
	prg, err := expr.Compile(src, exprOpts(o)...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", src, err)
	}
	return res, nil
}

// Match evaluates src against o and reports whether the result is true.
// A non-boolean result is an error.
func Match(src string, o *graph.Object) (bool, error) {
	res, err := Eval(src, o)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, want bool", src, res)
	}
	return b, nil
}

// Filter returns the object elements of l matching src. Non-object
// elements are dropped.
func Filter(l *graph.List, src string) (*graph.List, error) {
	res := graph.NewList()
	if l == nil {
		return res, nil
	}
	for o := range l.Objects() {
		ok, err := Match(src, o)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Append(o)
		}
	}
	return res, nil
}
