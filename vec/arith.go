package vec

import "github.com/hupe1980/libv/internal/conv"

// AddAssign adds o to v element-wise and returns v.
func (v *Vector[T, A]) AddAssign(o Vector[T, A]) *Vector[T, A] {
	for i := range len(v.p) {
		v.p[i] += o.p[i]
	}
	return v
}

// SubAssign subtracts o from v element-wise and returns v.
func (v *Vector[T, A]) SubAssign(o Vector[T, A]) *Vector[T, A] {
	for i := range len(v.p) {
		v.p[i] -= o.p[i]
	}
	return v
}

// MulAssign multiplies v by o element-wise and returns v.
func (v *Vector[T, A]) MulAssign(o Vector[T, A]) *Vector[T, A] {
	for i := range len(v.p) {
		v.p[i] *= o.p[i]
	}
	return v
}

// DivAssign divides v by o element-wise and returns v.
func (v *Vector[T, A]) DivAssign(o Vector[T, A]) *Vector[T, A] {
	for i := range len(v.p) {
		v.p[i] /= o.p[i]
	}
	return v
}

// ScaleAssign multiplies every element of v by s and returns v.
func (v *Vector[T, A]) ScaleAssign(s T) *Vector[T, A] {
	for i := range len(v.p) {
		v.p[i] *= s
	}
	return v
}

// DivScalarAssign divides every element of v by s and returns v.
func (v *Vector[T, A]) DivScalarAssign(s T) *Vector[T, A] {
	for i := range len(v.p) {
		v.p[i] /= s
	}
	return v
}

// Normalize divides v by its magnitude in place and returns v.
// A zero vector is not special-cased.
func (v *Vector[T, A]) Normalize() *Vector[T, A] {
	return v.DivScalarAssign(v.Magnitude())
}

// Add returns v + o.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	v.AddAssign(o)
	return v
}

// Sub returns v - o.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	v.SubAssign(o)
	return v
}

// Mul returns the element-wise product of v and o.
func (v Vector[T, A]) Mul(o Vector[T, A]) Vector[T, A] {
	v.MulAssign(o)
	return v
}

// Div returns the element-wise quotient of v and o.
func (v Vector[T, A]) Div(o Vector[T, A]) Vector[T, A] {
	v.DivAssign(o)
	return v
}

// Scale returns v * s.
func (v Vector[T, A]) Scale(s T) Vector[T, A] {
	v.ScaleAssign(s)
	return v
}

// DivScalar returns v / s.
func (v Vector[T, A]) DivScalar(s T) Vector[T, A] {
	v.DivScalarAssign(s)
	return v
}

// Add returns a + b.
func Add[T conv.Number, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	return a.Add(b)
}

// Sub returns a - b.
func Sub[T conv.Number, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	return a.Sub(b)
}

// Mul returns the element-wise product of a and b.
func Mul[T conv.Number, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	return a.Mul(b)
}

// Div returns the element-wise quotient of a and b.
func Div[T conv.Number, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	return a.Div(b)
}

// Scale returns a * s.
func Scale[T conv.Number, A Array[T]](a Vector[T, A], s T) Vector[T, A] {
	return a.Scale(s)
}

// DivScalar returns a / s.
func DivScalar[T conv.Number, A Array[T]](a Vector[T, A], s T) Vector[T, A] {
	return a.DivScalar(s)
}

// Normalize returns a normalized copy of v.
func Normalize[T conv.Number, A Array[T]](v Vector[T, A]) Vector[T, A] {
	v.Normalize()
	return v
}

// Dot returns the inner product of a and b.
func Dot[T conv.Number, A Array[T]](a, b Vector[T, A]) T {
	return a.Dot(b)
}

// Cross returns the cross product a × b.
// It is only defined for three-dimensional vectors.
func Cross[T conv.Number](a, b Vector[T, [3]T]) Vector[T, [3]T] {
	return Vector[T, [3]T]{p: [3]T{
		a.p[1]*b.p[2] - a.p[2]*b.p[1],
		a.p[2]*b.p[0] - a.p[0]*b.p[2],
		a.p[0]*b.p[1] - a.p[1]*b.p[0],
	}}
}
