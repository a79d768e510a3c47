//go:build !dynarraydebug

package dynarray

// debugAsserts reports whether precondition checks are compiled in.
const debugAsserts = false

// Without the dynarraydebug tag precondition checks compile to nothing.
// Out-of-range positions then surface as the runtime's own bounds panics,
// without a descriptive message.
func assertf(bool, string, ...any) {}
