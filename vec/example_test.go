package vec_test

import (
	"fmt"

	"github.com/hupe1980/libv/vec"
)

// Example demonstrates element-wise arithmetic and reductions.
func Example() {
	a := vec.From[float64]([4]float64{1, 2, 3, 4})
	b := vec.Filled[float64, [4]float64](2)

	fmt.Println(vec.Add(a, b))
	fmt.Println(a.Dot(b), a.Sum(), a.Prod(), a.Mean())
	// Output:
	// (3, 4, 5, 6)
	// 20 10 24 2.5
}

// ExampleCross shows the three-dimensional cross product.
func ExampleCross() {
	x := vec.From[float64]([3]float64{1, 0, 0})
	y := vec.From[float64]([3]float64{0, 1, 0})

	fmt.Println(vec.Cross(x, y))
	// Output: (0, 0, 1)
}

// ExampleVector_Normalize normalizes a vector in place.
func ExampleVector_Normalize() {
	v := vec.From[float64]([2]float64{3, 4})
	v.Normalize()

	fmt.Printf("%v %.1f\n", v, v.Magnitude())
	// Output: (0.6, 0.8) 1.0
}
