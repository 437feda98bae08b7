package sortable

import "math"

// Float is a sortable wrapper type for float64.
//
// NaN does not take part in a total order. Float treats every NaN as equal
// to every other NaN and smaller than any number, so a collection keyed by
// Float keeps a consistent ordering even if NaNs slip in.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

// Equals returns true if both values are numerically equal, or both are NaN.
func (f Float) Equals(other Float) bool {
	if math.IsNaN(float64(f)) || math.IsNaN(float64(other)) {
		return math.IsNaN(float64(f)) && math.IsNaN(float64(other))
	}

	return float64(f) == float64(other)
}

// LessThan returns true if this value is numerically less than other.
func (f Float) LessThan(other Float) bool {
	switch {
	case math.IsNaN(float64(f)):
		return !math.IsNaN(float64(other))
	case math.IsNaN(float64(other)):
		return false
	default:
		return float64(f) < float64(other)
	}
}
