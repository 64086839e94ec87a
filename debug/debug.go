package debug

import (
	"fmt"
	"os"
	"strconv"
)

// Debug switches are read once from the environment at startup.
type debug struct {
	Probe  bool
	Binary bool
	XML    bool
	Query  bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Probe = boolEnv("PLIST_DEBUG_PROBE")
	d.Binary = boolEnv("PLIST_DEBUG_BINARY")
	d.XML = boolEnv("PLIST_DEBUG_XML")
	d.Query = boolEnv("PLIST_DEBUG_QUERY")
	d.Patch = boolEnv("PLIST_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Probe() bool {
	return d.Probe
}
func Binary() bool {
	return d.Binary
}
func XML() bool {
	return d.XML
}
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
