package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jute-format/go-jute/ir"
	"github.com/jute-format/go-jute/libdiff"
	"github.com/jute-format/go-jute/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := diffArg(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := diffArg(cfg, args[1])
	if err != nil {
		return err
	}
	d := libdiff.Diff(from, to)
	if d == nil {
		return nil
	}
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, string(out))
	return cli.ExitCodeErr(1)
}

func diffArg(cfg *DiffConfig, arg string) (*ir.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}
