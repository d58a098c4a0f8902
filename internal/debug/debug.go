//go:build debug

package debug

import "fmt"

// Enabled reports whether assertions are active in this build.
const Enabled = true

// Assert panics with the formatted message if cond is false.
func Assert(cond bool, format string, a ...any) {
	if !cond {
		panic("assertion failed: " + fmt.Sprintf(format, a...))
	}
}
