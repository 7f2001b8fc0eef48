package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff   bool
	Common bool
	Merge  bool
	Sort   bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("YABE_DEBUG_DIFF")
	d.Common = boolEnv("YABE_DEBUG_COMMON")
	d.Merge = boolEnv("YABE_DEBUG_MERGE")
	d.Sort = boolEnv("YABE_DEBUG_SORT")
	d.Parse = boolEnv("YABE_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Common() bool {
	return d.Common
}
func Merge() bool {
	return d.Merge
}
func Sort() bool {
	return d.Sort
}
func Parse() bool {
	return d.Parse
}
