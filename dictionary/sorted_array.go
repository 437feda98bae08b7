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

// arrayEntry is a key/value pair owned by a slot of the array.
// The key never changes once stored; the value may be replaced in place.
type arrayEntry[K any, V any] struct {
	key   K
	value V
}

// SortedArrayDictionary keeps its entries in a slice sorted by key.
//
// The dictionary grows once the entries occupy len(slots)-1 slots, one entry
// before the slice is full, so there is always a free slot past the last
// entry for makeRoom to shift into. Growing allocates 2*len(slots)+1 slots.
type SortedArrayDictionary[K sortable.Sortable[K], V any] struct {
	slots []*arrayEntry[K, V]
	count int
	cfg   config
}

var _ Dictionary[sortable.Int, any] = (*SortedArrayDictionary[sortable.Int, any])(nil)

// NewSortedArrayDictionary returns an empty array-backed dictionary.
// Returns ErrInvalidArgument if the requested capacity is below 2, and
// ErrCapacityExceeded if it is above MaxCapacity.
func NewSortedArrayDictionary[K sortable.Sortable[K], V any](opts ...Option) (*SortedArrayDictionary[K, V], error) {
	cfg := newConfig(opts)

	if cfg.capacity < MinCapacity {
		return nil, fmt.Errorf("%w: capacity %d must be at least %d", errors.ErrInvalidArgument, cfg.capacity, MinCapacity)
	}

	if err := checkCapacity(cfg.capacity); err != nil {
		return nil, err
	}

	d := &SortedArrayDictionary[K, V]{
		slots: make([]*arrayEntry[K, V], cfg.capacity),
		cfg:   cfg,
	}

	d.cfg.recordCapacity(len(d.slots))
	d.cfg.recordSize(kindArray, 0)

	return d, nil
}

func checkCapacity(capacity int) error {
	if capacity > MaxCapacity {
		return fmt.Errorf("%w: requested %d, maximum is %d", errors.ErrCapacityExceeded, capacity, MaxCapacity)
	}

	return nil
}

// Capacity returns the number of allocated slots. The dictionary grows when
// Size reaches Capacity()-1.
func (d *SortedArrayDictionary[K, V]) Capacity() int {
	return len(d.slots)
}

func (d *SortedArrayDictionary[K, V]) Add(key K, value V) (optional.Value[V], error) {
	if zero.IsNil(key) || zero.IsNil(value) {
		return optional.None[V](), fmt.Errorf("%w: key and value must not be nil", errors.ErrInvalidArgument)
	}

	index := d.Locate(key)

	if d.matches(index, key) {
		prev := d.slots[index].value
		d.slots[index].value = value

		return optional.Some(prev), nil
	}

	// Growing happens after the insert. Refuse up front if that growth is
	// going to fail, so a rejected add leaves nothing behind.
	if d.count+1 >= len(d.slots)-1 {
		if err := checkCapacity(2 * len(d.slots)); err != nil {
			d.cfg.recordCapacityExceeded()
			d.cfg.logger.Warn("sorted dictionary cannot grow",
				"capacity", len(d.slots), "max_capacity", MaxCapacity, "size", d.count)

			return optional.None[V](), err
		}
	}

	d.makeRoom(index)
	d.slots[index] = &arrayEntry[K, V]{key: key, value: value}
	d.count++
	d.ensureCapacity()

	d.cfg.recordSize(kindArray, d.count)

	return optional.None[V](), nil
}

func (d *SortedArrayDictionary[K, V]) Remove(key K) optional.Value[V] {
	index := d.Locate(key)
	if !d.matches(index, key) {
		return optional.None[V]()
	}

	removed := d.slots[index].value
	d.removeGap(index)
	d.count--

	d.cfg.recordSize(kindArray, d.count)

	return optional.Some(removed)
}

func (d *SortedArrayDictionary[K, V]) GetValue(key K) optional.Value[V] {
	index := d.Locate(key)
	if !d.matches(index, key) {
		return optional.None[V]()
	}

	return optional.Some(d.slots[index].value)
}

func (d *SortedArrayDictionary[K, V]) Contains(key K) bool {
	return d.matches(d.Locate(key), key)
}

func (d *SortedArrayDictionary[K, V]) IsEmpty() bool {
	return d.count == 0
}

func (d *SortedArrayDictionary[K, V]) Size() int {
	return d.count
}

// Clear drops every entry. The allocated capacity is kept.
func (d *SortedArrayDictionary[K, V]) Clear() {
	clear(d.slots[:d.count])
	d.count = 0

	d.cfg.recordSize(kindArray, 0)
}

// Locate returns the index of key if present, otherwise the index at which
// key belongs: the smallest i with key < entries[i].key, or Size() if key
// is greater than every stored key.
func (d *SortedArrayDictionary[K, V]) Locate(key K) int {
	return d.binarySearch(0, d.count-1, key)
}

// binarySearch searches the occupied range [first, last]. The base case
// first > last yields first, which is where key would be inserted.
func (d *SortedArrayDictionary[K, V]) binarySearch(first, last int, key K) int {
	if first > last {
		return first
	}

	mid := first + (last-first)/2

	switch c := sortable.Compare(key, d.slots[mid].key); {
	case c == 0:
		return mid
	case c < 0:
		return d.binarySearch(first, mid-1, key)
	default:
		return d.binarySearch(mid+1, last, key)
	}
}

func (d *SortedArrayDictionary[K, V]) matches(index int, key K) bool {
	return index < d.count && sortable.Compare(key, d.slots[index].key) == 0
}

// makeRoom shifts entries [newPosition, count] one slot later.
// Slot count+1 is written too, which is why one slot is always kept free.
func (d *SortedArrayDictionary[K, V]) makeRoom(newPosition int) {
	assert.InRange(newPosition, 0, d.count)

	for index := d.count; index >= newPosition; index-- {
		d.slots[index+1] = d.slots[index]
	}
}

// removeGap shifts the entries after givenPosition one slot earlier.
func (d *SortedArrayDictionary[K, V]) removeGap(givenPosition int) {
	assert.InRange(givenPosition, 0, d.count-1)

	copy(d.slots[givenPosition:d.count-1], d.slots[givenPosition+1:d.count])
	d.slots[d.count-1] = nil
}

// ensureCapacity doubles the slice once only one free slot is left.
func (d *SortedArrayDictionary[K, V]) ensureCapacity() {
	if d.count < len(d.slots)-1 {
		return
	}

	oldCapacity := len(d.slots)
	newCapacity := 2 * oldCapacity

	// Add already checked that the new capacity is allowed.
	assert.True(newCapacity <= MaxCapacity, "capacity %d exceeds maximum %d", newCapacity, MaxCapacity)

	grown := make([]*arrayEntry[K, V], newCapacity+1)
	copy(grown, d.slots[:d.count])

	d.cfg.logger.Debug("sorted dictionary grew",
		"old_capacity", oldCapacity, "new_capacity", len(grown), "size", d.count)

	d.slots = grown

	d.cfg.recordResize()
	d.cfg.recordCapacity(len(grown))
}

func (d *SortedArrayDictionary[K, V]) KeyIterator() Iterator[K] {
	return &arrayIterator[K, V, K]{
		dict:      d,
		removable: true,
		extract:   func(e *arrayEntry[K, V]) K { return e.key },
	}
}

// ValueIterator returns an iterator over the values. Its Remove always
// returns ErrUnsupported.
func (d *SortedArrayDictionary[K, V]) ValueIterator() Iterator[V] {
	return &arrayIterator[K, V, V]{
		dict:    d,
		extract: func(e *arrayEntry[K, V]) V { return e.value },
	}
}

func (d *SortedArrayDictionary[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.slots[:d.count] {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (d *SortedArrayDictionary[K, V]) Keys() []K {
	out := make([]K, 0, d.count)
	for _, e := range d.slots[:d.count] {
		out = append(out, e.key)
	}

	return out
}

func (d *SortedArrayDictionary[K, V]) Values() []V {
	out := make([]V, 0, d.count)
	for _, e := range d.slots[:d.count] {
		out = append(out, e.value)
	}

	return out
}

func (d *SortedArrayDictionary[K, V]) Validate() error {
	var errs errors.Collection

	if d.count < 0 || d.count >= len(d.slots)-1 {
		errs.Add(fmt.Errorf("%w: size %d with %d slots", ErrCorrupt, d.count, len(d.slots)))

		return errs.GetError()
	}

	for i, e := range d.slots[:d.count] {
		if e == nil {
			errs.Add(fmt.Errorf("%w: slot %d is empty but size is %d", ErrCorrupt, i, d.count))

			continue
		}

		if i > 0 && d.slots[i-1] != nil {
			errs.Add(checkAscending(d.slots[i-1].key, e.key, i))
		}
	}

	for i, e := range d.slots[d.count:] {
		if e != nil {
			errs.Add(fmt.Errorf("%w: slot %d is occupied past size %d", ErrCorrupt, d.count+i, d.count))
		}
	}

	return errs.GetError()
}
