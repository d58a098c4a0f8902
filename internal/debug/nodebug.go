//go:build !debug

package debug

// Enabled reports whether assertions are active in this build.
const Enabled = false

// Assert is a no-op without the "debug" build tag.
func Assert(bool, string, ...any) {}
