package dictionary_test

import (
	"math/rand/v2"
	"testing"

	"github.com/amp-labs/amp-sorted/dictionary"
	"github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/sortable"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implementations runs the shared contract against both dictionaries.
func implementations[K sortable.Sortable[K], V any]() map[string]func(t *testing.T) dictionary.Dictionary[K, V] {
	return map[string]func(t *testing.T) dictionary.Dictionary[K, V]{
		"array": func(t *testing.T) dictionary.Dictionary[K, V] {
			t.Helper()

			d, err := dictionary.NewSortedArrayDictionary[K, V](dictionary.WithLogger(slogt.New(t)))
			require.NoError(t, err)

			return d
		},
		"linked": func(t *testing.T) dictionary.Dictionary[K, V] {
			t.Helper()

			return dictionary.NewSortedLinkedDictionary[K, V](dictionary.WithLogger(slogt.New(t)))
		},
	}
}

func drainKeys[K any](t *testing.T, it dictionary.Iterator[K]) []K {
	t.Helper()

	var out []K

	for it.HasNext() {
		k, err := it.Next()
		require.NoError(t, err)

		out = append(out, k)
	}

	return out
}

func TestDictionary_Scenario(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[sortable.String, int]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := newDict(t)

			for _, kv := range []struct {
				k sortable.String
				v int
			}{{"b", 1}, {"a", 2}, {"c", 3}} {
				prev, err := d.Add(kv.k, kv.v)
				require.NoError(t, err)
				assert.True(t, prev.Empty())
			}

			assert.Equal(t, []sortable.String{"a", "b", "c"}, drainKeys(t, d.KeyIterator()))
			assert.Equal(t, optional.Some(1), d.Remove("b"))
			assert.True(t, d.GetValue("b").Empty())
			assert.Equal(t, 2, d.Size())
			require.NoError(t, d.Validate())
		})
	}
}

func TestDictionary_Add(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[sortable.String, int]() {
		t.Run(name+"/replacement returns previous value", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)

			_, err := d.Add("k", 1)
			require.NoError(t, err)

			prev, err := d.Add("k", 2)
			require.NoError(t, err)
			assert.Equal(t, optional.Some(1), prev)
			assert.Equal(t, optional.Some(2), d.GetValue("k"))
			assert.Equal(t, 1, d.Size())
		})

		t.Run(name+"/inserts at head, middle and tail", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)

			for _, k := range []sortable.String{"m", "a", "z", "n", "b"} {
				_, err := d.Add(k, len(k))
				require.NoError(t, err)
			}

			assert.Equal(t, []sortable.String{"a", "b", "m", "n", "z"}, d.Keys())
			require.NoError(t, d.Validate())
		})

		t.Run(name+"/zero values are not absent", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)

			prev, err := d.Add("", 0)
			require.NoError(t, err)
			assert.True(t, prev.Empty())
			assert.True(t, d.Contains(""))
		})
	}
}

type ptrKey struct {
	id int
}

func (p *ptrKey) Equals(other *ptrKey) bool   { return p.id == other.id }
func (p *ptrKey) LessThan(other *ptrKey) bool { return p.id < other.id }

func TestDictionary_AddRejectsNil(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[*ptrKey, *string]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			value := "v"

			_, err := d.Add(nil, &value)
			require.ErrorIs(t, err, errors.ErrInvalidArgument)

			_, err = d.Add(&ptrKey{id: 1}, nil)
			require.ErrorIs(t, err, errors.ErrInvalidArgument)

			assert.True(t, d.IsEmpty())

			_, err = d.Add(&ptrKey{id: 1}, &value)
			require.NoError(t, err)
			assert.True(t, d.Contains(&ptrKey{id: 1}))
		})
	}
}

func TestDictionary_Remove(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[sortable.Int, string]() {
		t.Run(name+"/head, middle, tail and missing", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			for i := 1; i <= 5; i++ {
				_, err := d.Add(sortable.Int(i), "v")
				require.NoError(t, err)
			}

			assert.True(t, d.Remove(1).NonEmpty())
			assert.True(t, d.Remove(3).NonEmpty())
			assert.True(t, d.Remove(5).NonEmpty())
			assert.True(t, d.Remove(42).Empty())
			assert.True(t, d.Remove(3).Empty())

			assert.Equal(t, []sortable.Int{2, 4}, d.Keys())
			assert.Equal(t, 2, d.Size())
			require.NoError(t, d.Validate())
		})

		t.Run(name+"/removing everything empties the dictionary", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			_, err := d.Add(7, "seven")
			require.NoError(t, err)

			assert.Equal(t, optional.Some("seven"), d.Remove(7))
			assert.True(t, d.IsEmpty())
			assert.Empty(t, d.Keys())
			require.NoError(t, d.Validate())
		})
	}
}

func TestDictionary_Clear(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[sortable.Int, int]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			for i := range 10 {
				_, err := d.Add(sortable.Int(i), i)
				require.NoError(t, err)
			}

			d.Clear()

			assert.True(t, d.IsEmpty())
			assert.Equal(t, 0, d.Size())
			assert.False(t, d.KeyIterator().HasNext())
			assert.False(t, d.Contains(3))
			require.NoError(t, d.Validate())

			_, err := d.Add(1, 1)
			require.NoError(t, err)
			assert.Equal(t, []sortable.Int{1}, d.Keys())
		})
	}
}

func TestDictionary_RandomOperations(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[sortable.Int, int]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			model := map[sortable.Int]int{}
			rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

			for i := range 2000 {
				key := sortable.Int(rng.IntN(300))

				if rng.IntN(3) == 0 {
					want, ok := model[key]
					assert.Equal(t, optional.Of(want, ok), d.Remove(key))
					delete(model, key)
				} else {
					want, ok := model[key]
					prev, err := d.Add(key, i)
					require.NoError(t, err)
					assert.Equal(t, optional.Of(want, ok), prev)
					model[key] = i
				}
			}

			require.NoError(t, d.Validate())
			assert.Equal(t, len(model), d.Size())
			assert.True(t, sortable.IsSorted(d.Keys(), true))

			for k, v := range d.Seq() {
				assert.Equal(t, model[k], v)
			}

			assert.Len(t, drainKeys(t, d.ValueIterator()), d.Size())
		})
	}
}

func TestDictionary_Iterators(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[sortable.String, int]() {
		t.Run(name+"/values follow key order", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			_, _ = d.Add("b", 2)
			_, _ = d.Add("a", 1)
			_, _ = d.Add("c", 3)

			assert.Equal(t, []int{1, 2, 3}, drainKeys(t, d.ValueIterator()))
			assert.Equal(t, []int{1, 2, 3}, d.Values())
		})

		t.Run(name+"/next past the end", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			_, _ = d.Add("a", 1)

			it := d.KeyIterator()
			_, err := it.Next()
			require.NoError(t, err)

			_, err = it.Next()
			require.ErrorIs(t, err, errors.ErrNoSuchElement)
			assert.False(t, it.HasNext())

			_, err = d.ValueIterator().Next()
			require.NoError(t, err)

			_, err = newDict(t).ValueIterator().Next()
			require.ErrorIs(t, err, errors.ErrNoSuchElement)
		})

		t.Run(name+"/value iterator does not remove", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			_, _ = d.Add("a", 1)

			it := d.ValueIterator()
			require.ErrorIs(t, it.Remove(), errors.ErrUnsupported)

			_, err := it.Next()
			require.NoError(t, err)
			require.ErrorIs(t, it.Remove(), errors.ErrUnsupported)
			assert.Equal(t, 1, d.Size())
		})

		t.Run(name+"/key iterator removal state", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			_, _ = d.Add("x", 10)

			it := d.KeyIterator()
			require.ErrorIs(t, it.Remove(), errors.ErrIllegalState)

			k, err := it.Next()
			require.NoError(t, err)
			assert.Equal(t, sortable.String("x"), k)

			require.NoError(t, it.Remove())
			require.ErrorIs(t, it.Remove(), errors.ErrIllegalState)
			assert.True(t, d.IsEmpty())
		})

		t.Run(name+"/key iterator removes every other key", func(t *testing.T) {
			t.Parallel()

			d := newDict(t)
			for i, k := range []sortable.String{"a", "b", "c", "d", "e"} {
				_, _ = d.Add(k, i)
			}

			var seen []sortable.String

			it := d.KeyIterator()
			for i := 0; it.HasNext(); i++ {
				k, err := it.Next()
				require.NoError(t, err)

				seen = append(seen, k)

				if i%2 == 0 {
					require.NoError(t, it.Remove())
				}
			}

			assert.Equal(t, []sortable.String{"a", "b", "c", "d", "e"}, seen)
			assert.Equal(t, []sortable.String{"b", "d"}, d.Keys())
			require.NoError(t, d.Validate())
		})
	}
}

func TestDictionary_Helpers(t *testing.T) {
	t.Parallel()

	for name, newDict := range implementations[sortable.Int, string]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := newDict(t)

			replaced, err := dictionary.AddAll(d,
				dictionary.KeyValuePair[sortable.Int, string]{Key: 2, Value: "two"},
				dictionary.KeyValuePair[sortable.Int, string]{Key: 1, Value: "one"},
				dictionary.KeyValuePair[sortable.Int, string]{Key: 2, Value: "deux"},
			)
			require.NoError(t, err)
			assert.Equal(t, 1, replaced)

			assert.Equal(t, []dictionary.KeyValuePair[sortable.Int, string]{
				{Key: 1, Value: "one"},
				{Key: 2, Value: "deux"},
			}, dictionary.Entries(d))
		})
	}
}
