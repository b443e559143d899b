package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func ogMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	rest, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkFormats(); err != nil {
		return err
	}
	return dispatch(cfg.Main, cc, rest)
}

// dispatch resolves and runs the named subcommand, rendering usage for
// usage-class errors before exiting.
func dispatch(main *cli.Command, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err := sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func marshalIndentJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// fileArgs defaults to stdin when no files are given.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
