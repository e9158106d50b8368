package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("GEDXML_DEBUG_PARSE")
	d.Encode = boolEnv("GEDXML_DEBUG_ENCODE")
	d.Filter = boolEnv("GEDXML_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Filter() bool {
	return d.Filter
}
