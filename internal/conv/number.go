package conv

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sqrt returns the square root of x in x's own type.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Compare orders a and b using T's own < operator.
// Unordered values (NaN) compare as equal.
func Compare[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}
