package vec3

import (
	"fmt"

	"github.com/hupe1980/libv/internal/conv"
)

// Vector is a three-dimensional vector. The zero value is the zero vector.
type Vector[T conv.Number] [3]T

// New creates the vector (x, y, z).
func New[T conv.Number](x, y, z T) Vector[T] {
	return Vector[T]{x, y, z}
}

// Filled creates a vector with every element set to x.
func Filled[T conv.Number](x T) Vector[T] {
	return Vector[T]{x, x, x}
}

// Len always returns 3.
func (v Vector[T]) Len() int { return 3 }

// X, Y and Z read elements 0, 1 and 2.
func (v Vector[T]) X() T { return v[0] }
func (v Vector[T]) Y() T { return v[1] }
func (v Vector[T]) Z() T { return v[2] }

func (v *Vector[T]) SetX(x T) { v[0] = x }
func (v *Vector[T]) SetY(y T) { v[1] = y }
func (v *Vector[T]) SetZ(z T) { v[2] = z }

// At returns element i, or an *ErrOutOfRange if i is not 0, 1 or 2.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= 3 {
		var zero T
		return zero, &ErrOutOfRange{Op: "vec3.Vector.At", Index: i}
	}
	return v[i], nil
}

// SetAt sets element i to x, or returns an *ErrOutOfRange if i is not
// 0, 1 or 2.
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= 3 {
		return &ErrOutOfRange{Op: "vec3.Vector.SetAt", Index: i}
	}
	v[i] = x
	return nil
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	v[0], v[1], v[2] = x, x, x
}

// Swap exchanges the contents of v and o.
func (v *Vector[T]) Swap(o *Vector[T]) {
	*v, *o = *o, *v
}

// String formats the vector as (x, y, z).
func (v Vector[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}
