package main

import (
	"io"
	"os"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/jute-format/go-jute/parse"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='force colored output'"`
	Strict bool `cli:"name=strict desc='reject trailing content after the document'"`
	Depth  int  `cli:"name=depth desc='maximum container nesting depth'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colors returns the palette for w: full colors when w is a terminal or
// -color was given, the plain palette otherwise.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		return NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return PlainColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return PlainColors()
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='report failures only'"`

	Check *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Every time.Duration
	Lim   int `cli:"name=lim desc='max number of check rounds'"`

	Watch *cli.Command
}

func (cfg *WatchConfig) mkEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Every = d
		return d, nil
	}
}
