package dictionary

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/sortable"
	"github.com/amp-labs/amp-sorted/zero"
)

// linkedNode owns one entry and the rest of the chain after it.
type linkedNode[K any, V any] struct {
	key   K
	value V
	next  *linkedNode[K, V]
}

// SortedLinkedDictionary keeps its entries in a singly linked chain sorted
// by key. There is no capacity limit and no tail pointer.
//
// head is nil exactly when count is 0; this is asserted after every mutation.
type SortedLinkedDictionary[K sortable.Sortable[K], V any] struct {
	head  *linkedNode[K, V]
	count int
	cfg   config
}

var _ Dictionary[sortable.Int, any] = (*SortedLinkedDictionary[sortable.Int, any])(nil)

// NewSortedLinkedDictionary returns an empty linked dictionary.
// WithCapacity is ignored.
func NewSortedLinkedDictionary[K sortable.Sortable[K], V any](opts ...Option) *SortedLinkedDictionary[K, V] {
	d := &SortedLinkedDictionary[K, V]{cfg: newConfig(opts)}
	d.cfg.recordSize(kindLinked, 0)

	return d
}

// findPredecessor walks from the head while the current key is smaller than
// key and returns the last node visited. Nil means key is, or belongs, at
// the head.
func (d *SortedLinkedDictionary[K, V]) findPredecessor(key K) *linkedNode[K, V] {
	var before *linkedNode[K, V]

	for cur := d.head; cur != nil && sortable.Compare(key, cur.key) > 0; cur = cur.next {
		before = cur
	}

	return before
}

// position returns the predecessor of key and the node right after it.
// current holds key if key is present.
func (d *SortedLinkedDictionary[K, V]) position(key K) (before, current *linkedNode[K, V]) {
	before = d.findPredecessor(key)
	if before == nil {
		return nil, d.head
	}

	return before, before.next
}

func (d *SortedLinkedDictionary[K, V]) find(key K) *linkedNode[K, V] {
	_, current := d.position(key)
	if current != nil && sortable.Compare(key, current.key) == 0 {
		return current
	}

	return nil
}

// link points before's next at n, or makes n the head when there is no
// predecessor.
func (d *SortedLinkedDictionary[K, V]) link(before, n *linkedNode[K, V]) {
	if before == nil {
		d.head = n
	} else {
		before.next = n
	}
}

func (d *SortedLinkedDictionary[K, V]) checkInvariant() {
	assert.Iff(d.head == nil, d.count == 0,
		"head is nil: %v, but count is %d", d.head == nil, d.count)
}

func (d *SortedLinkedDictionary[K, V]) Add(key K, value V) (optional.Value[V], error) {
	if zero.IsNil(key) || zero.IsNil(value) {
		return optional.None[V](), fmt.Errorf("%w: key and value must not be nil", errors.ErrInvalidArgument)
	}

	before, current := d.position(key)

	if current != nil && sortable.Compare(key, current.key) == 0 {
		prev := current.value
		current.value = value

		return optional.Some(prev), nil
	}

	d.link(before, &linkedNode[K, V]{key: key, value: value, next: current})
	d.count++

	d.checkInvariant()
	d.cfg.recordSize(kindLinked, d.count)

	return optional.None[V](), nil
}

func (d *SortedLinkedDictionary[K, V]) Remove(key K) optional.Value[V] {
	before, current := d.position(key)

	if current == nil || sortable.Compare(key, current.key) != 0 {
		return optional.None[V]()
	}

	d.link(before, current.next)
	current.next = nil
	d.count--

	d.checkInvariant()
	d.cfg.recordSize(kindLinked, d.count)

	return optional.Some(current.value)
}

func (d *SortedLinkedDictionary[K, V]) GetValue(key K) optional.Value[V] {
	n := d.find(key)
	if n == nil {
		return optional.None[V]()
	}

	return optional.Some(n.value)
}

func (d *SortedLinkedDictionary[K, V]) Contains(key K) bool {
	return d.find(key) != nil
}

func (d *SortedLinkedDictionary[K, V]) IsEmpty() bool {
	d.checkInvariant()

	return d.count == 0
}

func (d *SortedLinkedDictionary[K, V]) Size() int {
	return d.count
}

func (d *SortedLinkedDictionary[K, V]) Clear() {
	d.head = nil
	d.count = 0

	d.checkInvariant()
	d.cfg.recordSize(kindLinked, 0)
}

// KeyIterator returns an iterator over the keys. Its Remove deletes the last
// returned key by looking it up again from the head.
func (d *SortedLinkedDictionary[K, V]) KeyIterator() Iterator[K] {
	return &linkedIterator[K, V, K]{
		dict:      d,
		next:      d.head,
		removable: true,
		extract:   func(n *linkedNode[K, V]) K { return n.key },
	}
}

// ValueIterator returns an iterator over the values. Its Remove always
// returns ErrUnsupported.
func (d *SortedLinkedDictionary[K, V]) ValueIterator() Iterator[V] {
	return &linkedIterator[K, V, V]{
		dict:    d,
		next:    d.head,
		extract: func(n *linkedNode[K, V]) V { return n.value },
	}
}

func (d *SortedLinkedDictionary[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for cur := d.head; cur != nil; cur = cur.next {
			if !yield(cur.key, cur.value) {
				return
			}
		}
	}
}

func (d *SortedLinkedDictionary[K, V]) Keys() []K {
	out := make([]K, 0, d.count)
	for k := range d.Seq() {
		out = append(out, k)
	}

	return out
}

func (d *SortedLinkedDictionary[K, V]) Values() []V {
	out := make([]V, 0, d.count)
	for _, v := range d.Seq() {
		out = append(out, v)
	}

	return out
}

func (d *SortedLinkedDictionary[K, V]) Validate() error {
	var errs errors.Collection

	if (d.head == nil) != (d.count == 0) {
		errs.Add(fmt.Errorf("%w: head is nil: %v, but size is %d", ErrCorrupt, d.head == nil, d.count))
	}

	walked := 0

	var prev *linkedNode[K, V]

	for cur := d.head; cur != nil; cur = cur.next {
		if prev != nil {
			errs.Add(checkAscending(prev.key, cur.key, walked))
		}

		prev = cur
		walked++

		if walked > d.count {
			// Either the count is stale or the chain loops; stop either way.
			break
		}
	}

	if walked != d.count {
		errs.Add(fmt.Errorf("%w: chain holds %d nodes but size is %d", ErrCorrupt, walked, d.count))
	}

	return errs.GetError()
}
