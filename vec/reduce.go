package vec

import "github.com/hupe1980/libv/internal/conv"

// Sum returns the sum of all elements.
func (v Vector[T, A]) Sum() T {
	var sum T
	for i := range len(v.p) {
		sum += v.p[i]
	}
	return sum
}

// Prod returns the product of all elements.
// The fold is seeded with the first element rather than a multiplicative
// identity.
func (v Vector[T, A]) Prod() T {
	prod := v.p[0]
	for i := 1; i < len(v.p); i++ {
		prod *= v.p[i]
	}
	return prod
}

// Mean returns Sum divided by the dimension.
// For integral T this is integer division.
func (v Vector[T, A]) Mean() T {
	return v.Sum() / T(len(v.p))
}

// Dot returns the inner product of v and o.
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	var dot T
	for i := range len(v.p) {
		dot += v.p[i] * o.p[i]
	}
	return dot
}

// Magnitude2 returns the squared Euclidean norm.
func (v Vector[T, A]) Magnitude2() T {
	return v.Dot(v)
}

// Magnitude returns the Euclidean norm.
func (v Vector[T, A]) Magnitude() T {
	return conv.Sqrt(v.Magnitude2())
}

// Min returns the smallest element.
func (v Vector[T, A]) Min() T {
	m := v.p[0]
	for i := 1; i < len(v.p); i++ {
		if v.p[i] < m {
			m = v.p[i]
		}
	}
	return m
}

// Max returns the largest element.
func (v Vector[T, A]) Max() T {
	m := v.p[0]
	for i := 1; i < len(v.p); i++ {
		if m < v.p[i] {
			m = v.p[i]
		}
	}
	return m
}
