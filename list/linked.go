package list

import (
	"iter"

	"github.com/amp-labs/amp-sorted/assert"
)

type node[T any] struct {
	data T
	next *node[T]
}

// linkedList is a singly linked chain of nodes. There is no tail pointer;
// positional access walks from the head.
type linkedList[T any] struct {
	head   *node[T]
	length int
}

// NewLinkedList returns an empty List backed by a singly linked chain.
func NewLinkedList[T any]() List[T] {
	return &linkedList[T]{}
}

func (l *linkedList[T]) Length() int {
	return l.length
}

func (l *linkedList[T]) IsEmpty() bool {
	assert.Iff(l.length == 0, l.head == nil, "length is %d but head nil is %v", l.length, l.head == nil)

	return l.length == 0
}

// nodeAt returns the node at a position already known to be valid.
func (l *linkedList[T]) nodeAt(position int) *node[T] {
	cur := l.head
	for i := 1; i < position; i++ {
		cur = cur.next
	}

	return cur
}

func (l *linkedList[T]) GetAt(position int) (T, error) {
	if err := checkPosition(position, l.length); err != nil {
		var zeroVal T

		return zeroVal, err
	}

	return l.nodeAt(position).data, nil
}

func (l *linkedList[T]) InsertAt(position int, value T) error {
	if err := checkPosition(position, l.length+1); err != nil {
		return err
	}

	n := &node[T]{data: value}

	if position == 1 {
		n.next = l.head
		l.head = n
	} else {
		before := l.nodeAt(position - 1)
		n.next = before.next
		before.next = n
	}

	l.length++

	return nil
}

func (l *linkedList[T]) RemoveAt(position int) (T, error) {
	if err := checkPosition(position, l.length); err != nil {
		var zeroVal T

		return zeroVal, err
	}

	var removed *node[T]

	if position == 1 {
		removed = l.head
		l.head = removed.next
	} else {
		before := l.nodeAt(position - 1)
		removed = before.next
		before.next = removed.next
	}

	removed.next = nil
	l.length--

	return removed.data, nil
}

func (l *linkedList[T]) Clear() {
	l.head = nil
	l.length = 0
}

func (l *linkedList[T]) ToArray() []T {
	out := make([]T, 0, l.length)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}

	return out
}

func (l *linkedList[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		position := 1
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(position, cur.data) {
				return
			}

			position++
		}
	}
}
