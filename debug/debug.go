//go:build !debug

// Package debug gates debug-only checks behind the "debug" build tag.
package debug

const Debug = false

// Assert does nothing if the debug build tag is not provided.
func Assert(condition bool, message ...string) {}
