package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Wrap  bool
	Patch bool
	Query bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Wrap = boolEnv("GRAPH_DEBUG_WRAP")
	d.Patch = boolEnv("GRAPH_DEBUG_PATCH")
	d.Query = boolEnv("GRAPH_DEBUG_QUERY")
	d.Diff = boolEnv("GRAPH_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Wrap() bool {
	return d.Wrap
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func Diff() bool {
	return d.Diff
}
