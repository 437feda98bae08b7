// Package errors defines the failure kinds shared by the sorted collections,
// along with a small utility for accumulating several errors at once.
package errors

import "errors"

var (
	// ErrInvalidArgument is returned when an absent key or value is passed to a mutator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a 1-based position lies outside [1, length].
	ErrOutOfRange = errors.New("position out of range")

	// ErrCapacityExceeded is returned when an array-backed collection would have
	// to grow past its hard maximum. It indicates a configuration problem, the
	// collection is left exactly as it was before the failing call.
	ErrCapacityExceeded = errors.New("capacity exceeds allowed maximum")

	// ErrNoSuchElement is returned by Next on an exhausted iterator.
	ErrNoSuchElement = errors.New("no such element")

	// ErrIllegalState is returned when an iterator removal is attempted
	// before Next, or twice without an intervening Next.
	ErrIllegalState = errors.New("illegal iterator state")

	// ErrUnsupported is returned by iterators that do not permit removal.
	ErrUnsupported = errors.New("unsupported operation")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// The invariant validators use it to report every violation they find
// instead of stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
