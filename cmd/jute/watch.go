package main

import (
	"fmt"
	"time"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/jute-format/go-jute/debug"
	"github.com/jute-format/go-jute/parse"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: watch requires file arguments", cli.ErrUsage)
	}

	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}
	defer agent.Close()

	colors := cfg.colors(cc.Out)
	tick := time.NewTicker(cfg.Every)
	defer tick.Stop()
	round := 0
	for {
		for _, arg := range args {
			d, err := readArg(arg)
			if err != nil {
				fmt.Fprintf(cc.Out, "%s %s: %s\n",
					time.Now().Format(time.TimeOnly), arg, colors.Bad("%v", err))
				continue
			}
			if _, err := parse.Parse(d, cfg.parseOpts()...); err != nil {
				fmt.Fprintf(cc.Out, "%s %s: %s\n",
					time.Now().Format(time.TimeOnly), arg, colors.Bad("%v", err))
				continue
			}
			fmt.Fprintf(cc.Out, "%s %s: %s\n",
				time.Now().Format(time.TimeOnly), arg, colors.OK("ok"))
		}
		round++
		if debug.Watch() {
			debug.Logf("watch round %d done\n", round)
		}
		if cfg.Lim > 0 && round >= cfg.Lim {
			return nil
		}
		<-tick.C
	}
}
