package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode    bool
	Parse     bool
	Reconcile bool
	Gomap     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("YM_DEBUG_ENCODE")
	d.Parse = boolEnv("YM_DEBUG_PARSE")
	d.Reconcile = boolEnv("YM_DEBUG_RECONCILE")
	d.Gomap = boolEnv("YM_DEBUG_GOMAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Parse() bool {
	return d.Parse
}
func Reconcile() bool {
	return d.Reconcile
}
func Gomap() bool {
	return d.Gomap
}
