// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-sorted/compare"
)

// Sortable is a total order: Equals and LessThan must agree, so that for any
// a and b exactly one of a.LessThan(b), a.Equals(b), b.LessThan(a) holds.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is the three-way comparison derived from a Sortable.
// It returns -1 if a < b, 0 if a equals b, and +1 if a > b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// IsSorted reports whether items is non-decreasing. When strict is true it
// additionally requires that no two neighbours compare equal.
func IsSorted[T Sortable[T]](items []T, strict bool) bool {
	for i := 1; i < len(items); i++ {
		c := Compare(items[i-1], items[i])
		if c > 0 || (strict && c == 0) {
			return false
		}
	}

	return true
}
