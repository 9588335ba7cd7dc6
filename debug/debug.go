package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Encode   bool
	Query    bool
	Compress bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NBT_DEBUG_PARSE")
	d.Encode = boolEnv("NBT_DEBUG_ENCODE")
	d.Query = boolEnv("NBT_DEBUG_QUERY")
	d.Compress = boolEnv("NBT_DEBUG_COMPRESS")
	d.Eval = boolEnv("NBT_DEBUG_EVAL")
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
func Query() bool {
	return d.Query
}
func Compress() bool {
	return d.Compress
}
func Eval() bool {
	return d.Eval
}
