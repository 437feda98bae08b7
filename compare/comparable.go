// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// IndexOf returns the index of the first element of items equal to target,
// or -1 if there is none.
func IndexOf[T Comparable[T]](items []T, target T) int {
	for i, item := range items {
		if item.Equals(target) {
			return i
		}
	}

	return -1
}
