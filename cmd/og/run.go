package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/graphkit/go-graph/codec"
	"github.com/graphkit/go-graph/graph"
	"github.com/graphkit/go-graph/objdiff"
	"github.com/graphkit/go-graph/patch"
	"github.com/graphkit/go-graph/query"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range fileArgs(args[1:]) {
		o, err := cfg.readObject(arg)
		if err != nil {
			return err
		}
		res := o.GetPath(path)
		if res == nil {
			// absent paths print nothing and don't yell either
			continue
		}
		if err := cfg.writeValue(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		o, err := cfg.readObject(arg)
		if err != nil {
			return err
		}
		for k := range o.Keys() {
			if _, err := fmt.Fprintln(cc.Out, k); err != nil {
				return err
			}
		}
	}
	return nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := cfg.readObject(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readObject(args[1])
	if err != nil {
		return err
	}
	changes := objdiff.Objects(from, to)
	if changes == nil {
		return nil
	}
	if cfg.useColor(cc.Out) {
		if err := writeColorDiff(cc.Out, changes, ""); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	if err := cfg.writeValue(cc.Out, changes); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// writeColorDiff prints a change set as -/+ lines, removals in red and
// additions in green, recursing into nested change records.
func writeColorDiff(w io.Writer, changes *graph.Object, prefix string) error {
	for k := range changes.Keys() {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if l, ok := changes.Get(k).(*graph.List); ok {
			for v := range l.Values() {
				e, ok := v.(*graph.Object)
				if !ok {
					continue
				}
				if err := writeColorChange(w, e, fmt.Sprintf("%s[%v]", path, e.Get("index"))); err != nil {
					return err
				}
			}
			continue
		}
		c, ok := changes.Get(k).(*graph.Object)
		if !ok {
			continue
		}
		_, hasFrom := c.Lookup("from")
		_, hasTo := c.Lookup("to")
		if !hasFrom && !hasTo {
			// nested change set
			if err := writeColorDiff(w, c, path); err != nil {
				return err
			}
			continue
		}
		if err := writeColorChange(w, c, path); err != nil {
			return err
		}
	}
	return nil
}

func writeColorChange(w io.Writer, c *graph.Object, path string) error {
	if from, ok := c.Lookup("from"); ok {
		plain, err := graph.ToAny(from)
		if err != nil {
			return err
		}
		if _, err := color.New(color.FgRed).Fprintf(w, "-%s: %v\n", path, plain); err != nil {
			return err
		}
	}
	if to, ok := c.Lookup("to"); ok {
		plain, err := graph.ToAny(to)
		if err != nil {
			return err
		}
		if _, err := color.New(color.FgGreen).Fprintf(w, "+%s: %v\n", path, plain); err != nil {
			return err
		}
	}
	return nil
}

func same(cfg *SameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Same.Parse(cc, args)
	if err != nil {
		cfg.Same.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: same requires two file arguments", cli.ErrUsage)
	}
	a, err := cfg.readObject(args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readObject(args[1])
	if err != nil {
		return err
	}
	if graph.SameID(a, b) {
		fmt.Fprintln(cc.Out, "true")
		return nil
	}
	fmt.Fprintln(cc.Out, "false")
	return cli.ExitCodeErr(1)
}

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires -e expression", cli.ErrUsage)
	}
	for _, arg := range fileArgs(args) {
		if cfg.Filter {
			l, err := cfg.readList(arg)
			if err != nil {
				return err
			}
			res, err := query.Filter(l, cfg.Expr)
			if err != nil {
				return err
			}
			if err := cfg.writeValue(cc.Out, res); err != nil {
				return err
			}
			continue
		}
		o, err := cfg.readObject(arg)
		if err != nil {
			return err
		}
		res, err := query.Eval(cfg.Expr, o)
		if err != nil {
			return err
		}
		if err := cfg.writeValue(cc.Out, graph.WrapValue(res)); err != nil {
			return err
		}
	}
	return nil
}

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p patchfile", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", cfg.PatchFile, err)
	}
	for _, arg := range fileArgs(args) {
		o, err := cfg.readObject(arg)
		if err != nil {
			return err
		}
		var res *graph.Object
		if cfg.Merge {
			res, err = patch.Merge(o, pd)
		} else {
			res, err = patch.Apply(o, pd)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.writeValue(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func decodeYAML(d []byte, v any) error {
	return yaml.Unmarshal(d, v)
}

// readList loads an argument expected to hold a top-level array.
func (cfg *MainConfig) readList(arg string) (*graph.List, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if cfg.Y {
		var raw []any
		if err := decodeYAML(d, &raw); err != nil {
			return nil, err
		}
		return graph.WrapList(raw), nil
	}
	v, err := codec.DecodeJSON(d)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*graph.List)
	if !ok {
		return nil, fmt.Errorf("document in %s is not an array", arg)
	}
	return l, nil
}
