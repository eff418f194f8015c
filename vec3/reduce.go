package vec3

import "github.com/hupe1980/libv/internal/conv"

// Sum returns x + y + z.
func (v Vector[T]) Sum() T {
	return v[0] + v[1] + v[2]
}

// Prod returns x * y * z.
func (v Vector[T]) Prod() T {
	return v[0] * v[1] * v[2]
}

// Mean returns Sum divided by three.
// For integral T this is integer division.
func (v Vector[T]) Mean() T {
	return v.Sum() / 3
}

// Dot returns the inner product of v and o.
func (v Vector[T]) Dot(o Vector[T]) T {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Magnitude2 returns the squared Euclidean norm.
func (v Vector[T]) Magnitude2() T {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Magnitude returns the Euclidean norm.
func (v Vector[T]) Magnitude() T {
	return conv.Sqrt(v.Magnitude2())
}

// Min returns the smallest element.
func (v Vector[T]) Min() T {
	m := v[0]
	if v[1] < m {
		m = v[1]
	}
	if v[2] < m {
		m = v[2]
	}
	return m
}

// Max returns the largest element.
func (v Vector[T]) Max() T {
	m := v[0]
	if m < v[1] {
		m = v[1]
	}
	if m < v[2] {
		m = v[2]
	}
	return m
}
