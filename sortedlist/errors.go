package sortedlist

import "errors"

// ErrUnsorted is reported by Validate when the order invariant is broken.
var ErrUnsorted = errors.New("sorted list out of order")
