package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "og").
		WithSynopsis("og [opts] command [opts]").
		WithDescription("og is a tool for inspecting graph object documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ogMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			KeysCommand(cfg),
			DiffCommand(cfg),
			SameCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get values at a dotted path, e.g. location.city or tags[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("keys").
		WithAliases("k").
		WithSynopsis("keys [files]").
		WithDescription("list the keys of graph object documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
	cfg.Keys = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("show field-level changes between two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func SameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SameConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("same").
		WithSynopsis("same <a> <b>").
		WithDescription("report whether two documents are the same graph object by id").
		WithRun(func(cc *cli.Context, args []string) error {
			return same(cfg, cc, args)
		})
	cfg.Same = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query -e <expr> [-f] [files]").
		WithDescription("evaluate an expression against documents, or filter arrays with -f").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch -p <patchfile> [-m] [files]").
		WithDescription("apply a json patch or merge patch to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
