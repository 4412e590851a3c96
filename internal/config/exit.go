package config

import (
	"fmt"
	"os"
)

// Exitf prints "webtools: " and the formatted message to stderr, then exits
// with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, "webtools: "+fmt.Sprintf(format, args...))
	os.Exit(1)
}
