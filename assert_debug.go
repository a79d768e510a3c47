//go:build dynarraydebug

package dynarray

import "fmt"

// debugAsserts reports whether precondition checks are compiled in.
const debugAsserts = true

// assertf panics with a descriptive message when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
