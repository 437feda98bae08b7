// Package list provides a positional sequence with 1-based indexing and no
// ordering guarantee of its own. It is the backing store of sortedlist.
package list

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-sorted/errors"
)

// List is an ordered sequence addressed by 1-based position.
//
// Thread-safety: Implementations are not thread-safe. Concurrent access must
// be synchronized by the caller.
type List[T any] interface {
	// Length returns the number of elements in the list.
	Length() int

	// IsEmpty returns true if the list has no elements.
	IsEmpty() bool

	// GetAt returns the element at position.
	// Returns ErrOutOfRange unless 1 <= position <= Length().
	GetAt(position int) (T, error)

	// InsertAt inserts value at position, shifting the element currently
	// there, and everything after it, one position later.
	// Returns ErrOutOfRange unless 1 <= position <= Length()+1.
	InsertAt(position int, value T) error

	// RemoveAt removes and returns the element at position, shifting
	// everything after it one position earlier.
	// Returns ErrOutOfRange unless 1 <= position <= Length().
	RemoveAt(position int) (T, error)

	// Clear removes every element.
	Clear()

	// ToArray returns a newly allocated slice of the elements, front to back.
	ToArray() []T

	// Seq returns an iterator over (position, element) pairs, front to back.
	Seq() iter.Seq2[int, T]
}

func checkPosition(position, length int) error {
	if position < 1 || position > length {
		return fmt.Errorf("%w: position %d, length %d", errors.ErrOutOfRange, position, length)
	}

	return nil
}
