package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Push      bool
	Compose   bool
	Transform bool
	Diff      bool
	RPC       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Push = boolEnv("DELTA_DEBUG_PUSH")
	d.Compose = boolEnv("DELTA_DEBUG_COMPOSE")
	d.Transform = boolEnv("DELTA_DEBUG_TRANSFORM")
	d.Diff = boolEnv("DELTA_DEBUG_DIFF")
	d.RPC = boolEnv("DELTA_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Push() bool {
	return d.Push
}
func Compose() bool {
	return d.Compose
}
func Transform() bool {
	return d.Transform
}
func Diff() bool {
	return d.Diff
}
func RPC() bool {
	return d.RPC
}
