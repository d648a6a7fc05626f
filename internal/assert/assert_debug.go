//go:build debug

package assert

import "fmt"

// DEBUG is true only when built with -tags debug.
const DEBUG = true

// Assert panics with the formatted message when test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
