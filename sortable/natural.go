package sortable

import "facette.io/natsort"

// NaturalString is a string ordered the way humans read numbers inside text:
// "item2" sorts before "item10", where String would put "item10" first.
//
// Example:
//
//	keys := []sortable.NaturalString{"v10", "v9", "v1"}
//	// In a sorted collection these are kept as v1, v9, v10.
type NaturalString string

// Compile-time check that NaturalString implements Sortable[NaturalString].
var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if both strings are byte-for-byte identical.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if s sorts before other in natural order.
func (s NaturalString) LessThan(other NaturalString) bool {
	switch {
	case s == other:
		return false
	case natsort.Compare(string(s), string(other)):
		return true
	case natsort.Compare(string(other), string(s)):
		return false
	default:
		// "a01" and "a1" are equivalent to natsort; fall back to byte order
		// so the two never compare equal without being Equals.
		return string(s) < string(other)
	}
}
