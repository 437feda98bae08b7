// Package dictionary provides associative maps whose keys are kept in
// ascending order. Two implementations share the Dictionary interface:
//
//   - SortedArrayDictionary stores entries in a growable array and finds
//     them by binary search.
//   - SortedLinkedDictionary stores entries in a singly linked chain and
//     finds them by a linear scan that tracks the predecessor node.
//
// Both keep keys unique and strictly ascending at all times. Neither is safe
// for concurrent use.
//
// Iterators borrow the dictionary they were created from. Mutating the
// dictionary by any path other than the iterator's own Remove while an
// iteration is in progress leaves the iterator stale; what it returns after
// that is undefined.
package dictionary

import (
	"iter"

	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/sortable"
)

// Dictionary maps unique, totally ordered keys to values.
//
//nolint:interfacebloat
type Dictionary[K sortable.Sortable[K], V any] interface {
	// Add associates value with key. If key was already present its value is
	// replaced in place and the previous value is returned; otherwise None.
	// Returns ErrInvalidArgument if key or value is nil, and
	// ErrCapacityExceeded if a bounded implementation cannot grow.
	// On error the dictionary is unchanged.
	Add(key K, value V) (optional.Value[V], error)

	// Remove deletes key and returns the value it mapped to, or None.
	Remove(key K) optional.Value[V]

	// GetValue returns the value mapped to key, or None.
	GetValue(key K) optional.Value[V]

	// Contains reports whether key is present.
	Contains(key K) bool

	// IsEmpty reports whether the dictionary has no entries.
	IsEmpty() bool

	// Size returns the number of entries.
	Size() int

	// Clear removes every entry.
	Clear()

	// KeyIterator returns an iterator over the keys in ascending order.
	KeyIterator() Iterator[K]

	// ValueIterator returns an iterator over the values in ascending key order.
	ValueIterator() Iterator[V]

	// Seq returns a range-over-func view of the entries in ascending key order.
	Seq() iter.Seq2[K, V]

	// Keys returns a newly allocated slice of the keys in ascending order.
	Keys() []K

	// Values returns a newly allocated slice of the values in ascending key order.
	Values() []V

	// Validate checks the ordering, uniqueness and size invariants and
	// returns every violation found.
	Validate() error
}

// Iterator is a forward-only cursor over a dictionary.
type Iterator[T any] interface {
	// HasNext reports whether Next will return an element.
	HasNext() bool

	// Next returns the element under the cursor and advances it.
	// Returns ErrNoSuchElement when HasNext is false; the cursor does not move.
	Next() (T, error)

	// Remove deletes, through the dictionary, the entry last returned by Next.
	// Returns ErrIllegalState if Next has not been called, or if Remove was
	// already called since the last Next. Iterators that do not permit
	// removal always return ErrUnsupported.
	Remove() error
}

// KeyValuePair is a single dictionary entry.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// Entries collects every entry of d in ascending key order.
func Entries[K sortable.Sortable[K], V any](d Dictionary[K, V]) []KeyValuePair[K, V] {
	out := make([]KeyValuePair[K, V], 0, d.Size())
	for k, v := range d.Seq() {
		out = append(out, KeyValuePair[K, V]{Key: k, Value: v})
	}

	return out
}

// AddAll adds every pair to d in order, stopping at the first error.
// Returns how many adds replaced an existing value.
func AddAll[K sortable.Sortable[K], V any](d Dictionary[K, V], pairs ...KeyValuePair[K, V]) (int, error) {
	replaced := 0

	for _, p := range pairs {
		prev, err := d.Add(p.Key, p.Value)
		if err != nil {
			return replaced, err
		}

		if prev.NonEmpty() {
			replaced++
		}
	}

	return replaced, nil
}
