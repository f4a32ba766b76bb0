package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jute-format/go-jute/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	colors := cfg.colors(cc.Out)
	bad := 0
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d, cfg.parseOpts()...); err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, colors.Bad("%v", err))
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, colors.OK("ok"))
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
