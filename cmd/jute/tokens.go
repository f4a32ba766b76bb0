package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jute-format/go-jute/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	colors := cfg.colors(cc.Out)
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		toks, err := token.Tokenize(nil, d)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", arg, err)
		}
		for i := range toks {
			t := &toks[i]
			fmt.Fprintf(cc.Out, "%-12s %s\n", t.Info(), colors.TokenString(t))
		}
	}
	return nil
}
