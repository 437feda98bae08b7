// Package sortedlist provides a multiset of sortable elements that is always
// kept in ascending order. Elements are addressed by 1-based position and
// duplicates are allowed.
//
// A SortedList delegates storage to a list.List and only decides where each
// element goes. It is not safe for concurrent use.
package sortedlist

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/list"
	"github.com/amp-labs/amp-sorted/sortable"
)

// Position is the result of locating an element.
// Index is 1-based. When Found is true it is the position of the first
// occurrence; otherwise it is where the element would have to be inserted
// to keep the list sorted.
type Position struct {
	Found bool
	Index int
}

// Signed folds the position into a single int: Index when found, -Index when not.
func (p Position) Signed() int {
	if p.Found {
		return p.Index
	}

	return -p.Index
}

// Option configures a SortedList.
type Option[T sortable.Sortable[T]] func(*SortedList[T])

// WithBackingList makes the sorted list store its elements in backing.
// New clears backing, so anything already in it is discarded.
func WithBackingList[T sortable.Sortable[T]](backing list.List[T]) Option[T] {
	return func(s *SortedList[T]) {
		s.list = backing
	}
}

// SortedList keeps its elements in non-decreasing order.
type SortedList[T sortable.Sortable[T]] struct {
	list list.List[T]
}

// New returns an empty sorted list backed by a linked list unless
// WithBackingList says otherwise. A supplied backing list is cleared.
func New[T sortable.Sortable[T]](opts ...Option[T]) *SortedList[T] {
	s := &SortedList[T]{}

	for _, opt := range opts {
		opt(s)
	}

	if s.list == nil {
		s.list = list.NewLinkedList[T]()
	} else if !s.list.IsEmpty() {
		s.list.Clear()
	}

	return s
}

// Of returns a sorted list holding items.
func Of[T sortable.Sortable[T]](items ...T) *SortedList[T] {
	s := New[T]()
	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts value at its sorted position. Equal elements are kept; the
// new one goes before any existing equal elements.
func (s *SortedList[T]) Add(value T) {
	pos := s.Locate(value)

	err := s.list.InsertAt(pos.Index, value)
	assert.True(err == nil, "insert at %d of %d: %v", pos.Index, s.list.Length(), err)
}

// Remove deletes the first occurrence of value and reports whether it was present.
func (s *SortedList[T]) Remove(value T) bool {
	pos := s.Locate(value)
	if !pos.Found {
		return false
	}

	_, err := s.list.RemoveAt(pos.Index)
	assert.True(err == nil, "remove at %d of %d: %v", pos.Index, s.list.Length(), err)

	return true
}

// RemoveAt deletes and returns the element at a 1-based position.
// Returns ErrOutOfRange unless 1 <= position <= Length().
func (s *SortedList[T]) RemoveAt(position int) (T, error) {
	value, err := s.list.RemoveAt(position)
	if err != nil {
		return value, fmt.Errorf("sorted list remove: %w", err)
	}

	return value, nil
}

// GetAt returns the element at a 1-based position.
// Returns ErrOutOfRange unless 1 <= position <= Length().
func (s *SortedList[T]) GetAt(position int) (T, error) {
	value, err := s.list.GetAt(position)
	if err != nil {
		return value, fmt.Errorf("sorted list get: %w", err)
	}

	return value, nil
}

// Contains reports whether an element equal to value is present.
func (s *SortedList[T]) Contains(value T) bool {
	return s.Locate(value).Found
}

// GetPosition returns the 1-based position of the first occurrence of value,
// or, if value is absent, the negated position at which it would be inserted.
func (s *SortedList[T]) GetPosition(value T) int {
	return s.Locate(value).Signed()
}

// Locate scans from the front for the first element that is not smaller
// than value.
func (s *SortedList[T]) Locate(value T) Position {
	position := 1

	for _, elem := range s.list.Seq() {
		c := sortable.Compare(value, elem)
		if c > 0 {
			position++

			continue
		}

		return Position{Found: c == 0, Index: position}
	}

	return Position{Found: false, Index: position}
}

// ToArray returns a newly allocated slice of the elements in order.
func (s *SortedList[T]) ToArray() []T {
	return s.list.ToArray()
}

// Length returns the number of elements.
func (s *SortedList[T]) Length() int {
	return s.list.Length()
}

// IsEmpty reports whether the list has no elements.
func (s *SortedList[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// Clear removes every element.
func (s *SortedList[T]) Clear() {
	s.list.Clear()
}

// Seq returns an iterator over (position, element) pairs in ascending order.
func (s *SortedList[T]) Seq() iter.Seq2[int, T] {
	return s.list.Seq()
}

// Validate checks that the backing list is non-decreasing and reports every
// out-of-order neighbour it finds.
func (s *SortedList[T]) Validate() error {
	if sortable.IsSorted(s.list.ToArray(), false) {
		return nil
	}

	var (
		errs  errors.Collection
		prev  T
		first = true
	)

	for pos, elem := range s.list.Seq() {
		if !first && sortable.Compare(prev, elem) > 0 {
			errs.Add(fmt.Errorf("%w: element at position %d (%v) is smaller than its predecessor (%v)",
				ErrUnsorted, pos, elem, prev))
		}

		prev, first = elem, false
	}

	return errs.GetError()
}
