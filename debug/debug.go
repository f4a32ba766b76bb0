package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Diff  bool
	Watch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("JUTE_DEBUG_EVAL")
	d.Diff = boolEnv("JUTE_DEBUG_DIFF")
	d.Watch = boolEnv("JUTE_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func Watch() bool {
	return d.Watch
}
