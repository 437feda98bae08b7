package dictionary

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-sorted/sortable"
)

// ErrCorrupt is reported by Validate when a dictionary's internal
// invariants do not hold.
var ErrCorrupt = errors.New("dictionary invariant violated")

func checkAscending[K sortable.Sortable[K]](prev, cur K, index int) error {
	switch sortable.Compare(prev, cur) {
	case 0:
		return fmt.Errorf("%w: duplicate key %v at index %d", ErrCorrupt, cur, index)
	case 1:
		return fmt.Errorf("%w: key %v at index %d sorts before its predecessor %v", ErrCorrupt, cur, index, prev)
	default:
		return nil
	}
}
