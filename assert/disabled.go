//go:build assertions_disabled

// Package assert provides runtime invariant checks. They panic on failure,
// and compile to no-ops when built with the assertions_disabled tag.
package assert

// True is a no-op when assertions are disabled.
func True(value bool, args ...any) {}

// False is a no-op when assertions are disabled.
func False(value bool, args ...any) {}

// Iff is a no-op when assertions are disabled.
func Iff(a, b bool, args ...any) {}

// InRange is a no-op when assertions are disabled.
func InRange(value, lo, hi int, args ...any) {}
