package vec3

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the sentinel matched by every *ErrOutOfRange.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrOutOfRange is returned by the bounds-checked accessors when the index
// is not in [0, 3).
type ErrOutOfRange struct {
	Op    string
	Index int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, 3)", e.Op, e.Index)
}

func (e *ErrOutOfRange) Unwrap() error { return ErrIndexOutOfRange }
