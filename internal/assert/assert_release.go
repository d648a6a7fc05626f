//go:build !debug

// Package assert is a helper for debug-only sanity checks inside the
// engine's hot paths: a build-tag gated Assert that compiles away
// entirely in release builds because DEBUG is a const the compiler can
// fold.
package assert

// DEBUG is true only when built with -tags debug.
const DEBUG = false

// Assert is a no-op in release builds. Callers should still guard
// expensive argument expressions with "if assert.DEBUG { ... }" since
// Go evaluates call arguments regardless of whether the callee does
// anything with them.
func Assert(test bool, msg string, a ...interface{}) {}
