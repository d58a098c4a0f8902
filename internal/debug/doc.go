// Package debug provides assertions that are compiled in only when building
// with the "debug" tag. Guard calls with Enabled so their arguments are not
// evaluated in regular builds:
//
//	if debug.Enabled {
//	    debug.Assert(i < n, "index %d out of range", i)
//	}
package debug
