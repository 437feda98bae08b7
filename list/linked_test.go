package list_test

import (
	"testing"

	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedList_InsertAt(t *testing.T) {
	t.Parallel()

	t.Run("inserts at front, middle and end", func(t *testing.T) {
		t.Parallel()

		l := list.NewLinkedList[string]()
		require.NoError(t, l.InsertAt(1, "b"))
		require.NoError(t, l.InsertAt(1, "a"))
		require.NoError(t, l.InsertAt(3, "d"))
		require.NoError(t, l.InsertAt(3, "c"))

		assert.Equal(t, []string{"a", "b", "c", "d"}, l.ToArray())
		assert.Equal(t, 4, l.Length())
	})

	t.Run("rejects positions outside 1..length+1", func(t *testing.T) {
		t.Parallel()

		l := list.NewLinkedList[int]()

		require.ErrorIs(t, l.InsertAt(0, 1), errors.ErrOutOfRange)
		require.ErrorIs(t, l.InsertAt(2, 1), errors.ErrOutOfRange)
		assert.True(t, l.IsEmpty())
	})
}

func TestLinkedList_GetAt(t *testing.T) {
	t.Parallel()

	l := fromSlice(t, []int{10, 20, 30})

	for pos, want := range map[int]int{1: 10, 2: 20, 3: 30} {
		got, err := l.GetAt(pos)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := l.GetAt(0)
	require.ErrorIs(t, err, errors.ErrOutOfRange)

	_, err = l.GetAt(4)
	require.ErrorIs(t, err, errors.ErrOutOfRange)
}

func TestLinkedList_RemoveAt(t *testing.T) {
	t.Parallel()

	t.Run("removes head", func(t *testing.T) {
		t.Parallel()

		l := fromSlice(t, []int{1, 2, 3})

		v, err := l.RemoveAt(1)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.Equal(t, []int{2, 3}, l.ToArray())
	})

	t.Run("removes last", func(t *testing.T) {
		t.Parallel()

		l := fromSlice(t, []int{1, 2, 3})

		v, err := l.RemoveAt(3)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 2}, l.ToArray())
	})

	t.Run("removing the only element empties the list", func(t *testing.T) {
		t.Parallel()

		l := fromSlice(t, []int{7})

		_, err := l.RemoveAt(1)
		require.NoError(t, err)
		assert.True(t, l.IsEmpty())
		assert.Empty(t, l.ToArray())
	})

	t.Run("out of range leaves the list alone", func(t *testing.T) {
		t.Parallel()

		l := fromSlice(t, []int{1})

		_, err := l.RemoveAt(2)
		require.ErrorIs(t, err, errors.ErrOutOfRange)
		assert.Equal(t, 1, l.Length())
	})
}

func TestLinkedList_ClearAndSeq(t *testing.T) {
	t.Parallel()

	l := fromSlice(t, []string{"x", "y"})

	var positions []int

	for pos, v := range l.Seq() {
		positions = append(positions, pos)

		if v == "x" {
			assert.Equal(t, 1, pos)
		}
	}

	assert.Equal(t, []int{1, 2}, positions)

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Length())
}

func fromSlice[T any](t *testing.T, items []T) list.List[T] {
	t.Helper()

	l := list.NewLinkedList[T]()
	for i, item := range items {
		require.NoError(t, l.InsertAt(i+1, item))
	}

	return l
}
