package chain

import (
	"errors"
	"fmt"
)

// ErrNoInterceptors is delivered when Start is called on a chain whose
// interceptor list is empty.
var ErrNoInterceptors = errors.New("chain: no interceptors")

// InvalidIndexError is delivered when an interceptor calls Proceed and no
// interceptor exists at the next position. It indicates a defect in how the
// list was assembled, not a transient fault.
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("chain: no interceptor at index %d", e.Index)
}

// IsInvalidIndex reports whether err is (or wraps) an InvalidIndexError.
func IsInvalidIndex(err error) bool {
	return errors.As(err, new(*InvalidIndexError))
}
