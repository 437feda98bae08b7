//go:build !assertions_disabled

// Package assert provides runtime invariant checks. They panic on failure,
// and compile to no-ops when built with the assertions_disabled tag.
package assert

import "fmt"

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Iff asserts that a and b are both true or both false.
// The optional args are passed to True and follow the same formatting rules.
func Iff(a, b bool, args ...any) {
	True(a == b, args...)
}

// InRange asserts that lo <= value <= hi.
func InRange(value, lo, hi int, args ...any) {
	if len(args) == 0 {
		args = []any{"value %d outside [%d, %d]", value, lo, hi}
	}

	True(value >= lo && value <= hi, args...)
}
