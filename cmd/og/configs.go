package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/graphkit/go-graph/codec"
	"github.com/graphkit/go-graph/graph"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='force colored output'"`

	closers []func() error

	Main *cli.Command
}

// checkFormats rejects conflicting i/o format flags.
func (cfg *MainConfig) checkFormats() error {
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: -j and -y are mutually exclusive", cli.ErrUsage)
	}
	return nil
}

// outOpt redirects command output to a file; "-" keeps stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.closers = append(cfg.closers, f.Close)
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	for _, c := range cfg.closers {
		c()
	}
}

// readObject loads one argument ("-" for stdin) and wraps it as a graph
// object in the configured input format.
func (cfg *MainConfig) readObject(arg string) (*graph.Object, error) {
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
		return codec.FromYAML(d)
	}
	return codec.FromJSON(d)
}

// writeValue renders a graph value on w in the configured output format.
func (cfg *MainConfig) writeValue(w io.Writer, v any) error {
	var d []byte
	var err error
	if cfg.Y {
		d, err = codec.ToYAML(v)
	} else {
		plain, cerr := graph.ToAny(v)
		if cerr != nil {
			return cerr
		}
		d, err = marshalIndentJSON(plain)
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	if len(d) > 0 && d[len(d)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type SameConfig struct {
	*MainConfig

	Same *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Expr   string `cli:"name=e desc='expression to evaluate'"`
	Filter bool   `cli:"name=f desc='filter a top-level array by the expression'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='patch file (rfc 6902)'"`
	Merge     bool   `cli:"name=m desc='treat patch as a merge patch (rfc 7386)'"`

	Patch *cli.Command
}
