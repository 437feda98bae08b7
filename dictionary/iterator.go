package dictionary

import (
	"fmt"

	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/sortable"
)

// arrayIterator walks the occupied slots of a SortedArrayDictionary with a
// 0-based cursor. T is the key or the value, picked by extract.
type arrayIterator[K sortable.Sortable[K], V any, T any] struct {
	dict      *SortedArrayDictionary[K, V]
	cursor    int
	removable bool
	canRemove bool
	extract   func(*arrayEntry[K, V]) T
}

func (it *arrayIterator[K, V, T]) HasNext() bool {
	return !it.dict.IsEmpty() && it.cursor < it.dict.count
}

func (it *arrayIterator[K, V, T]) Next() (T, error) {
	if !it.HasNext() {
		var zeroVal T

		return zeroVal, fmt.Errorf("%w: iterator is past the last entry", errors.ErrNoSuchElement)
	}

	out := it.extract(it.dict.slots[it.cursor])
	it.cursor++
	it.canRemove = true

	return out, nil
}

// Remove deletes the entry last returned by Next and steps the cursor back
// so the following Next returns the entry that came after it.
func (it *arrayIterator[K, V, T]) Remove() error {
	if !it.removable {
		return fmt.Errorf("%w: value iterator does not support removal", errors.ErrUnsupported)
	}

	if !it.canRemove {
		if it.cursor == 0 {
			return fmt.Errorf("%w: Next has not been called", errors.ErrIllegalState)
		}

		return fmt.Errorf("%w: Remove was already called after the last Next", errors.ErrIllegalState)
	}

	key := it.dict.slots[it.cursor-1].key
	it.dict.Remove(key)
	it.cursor--
	it.canRemove = false

	return nil
}

// linkedIterator walks a SortedLinkedDictionary node by node.
type linkedIterator[K sortable.Sortable[K], V any, T any] struct {
	dict      *SortedLinkedDictionary[K, V]
	next      *linkedNode[K, V]
	last      *linkedNode[K, V]
	removable bool
	extract   func(*linkedNode[K, V]) T
}

func (it *linkedIterator[K, V, T]) HasNext() bool {
	return it.next != nil
}

func (it *linkedIterator[K, V, T]) Next() (T, error) {
	if it.next == nil {
		var zeroVal T

		return zeroVal, fmt.Errorf("%w: iterator is after the end of the chain", errors.ErrNoSuchElement)
	}

	out := it.extract(it.next)
	it.last = it.next
	it.next = it.next.next

	return out, nil
}

// Remove deletes the key last returned by Next. The iterator holds no
// predecessor, so the dictionary re-walks the chain from the head to find
// it; the cursor already points past the removed node and stays valid.
func (it *linkedIterator[K, V, T]) Remove() error {
	if !it.removable {
		return fmt.Errorf("%w: value iterator does not support removal", errors.ErrUnsupported)
	}

	if it.last == nil {
		return fmt.Errorf("%w: Next has not been called, or Remove was already called after it",
			errors.ErrIllegalState)
	}

	it.dict.Remove(it.last.key)
	it.last = nil

	return nil
}
