package vec3

import "github.com/hupe1980/libv/internal/conv"

// AddAssign adds o to v element-wise and returns v.
func (v *Vector[T]) AddAssign(o Vector[T]) *Vector[T] {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
	return v
}

// SubAssign subtracts o from v element-wise and returns v.
func (v *Vector[T]) SubAssign(o Vector[T]) *Vector[T] {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
	return v
}

// MulAssign multiplies v by o element-wise and returns v.
func (v *Vector[T]) MulAssign(o Vector[T]) *Vector[T] {
	v[0] *= o[0]
	v[1] *= o[1]
	v[2] *= o[2]
	return v
}

// DivAssign divides v by o element-wise and returns v.
func (v *Vector[T]) DivAssign(o Vector[T]) *Vector[T] {
	v[0] /= o[0]
	v[1] /= o[1]
	v[2] /= o[2]
	return v
}

// ScaleAssign multiplies every element of v by s and returns v.
func (v *Vector[T]) ScaleAssign(s T) *Vector[T] {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	return v
}

// DivScalarAssign divides every element of v by s and returns v.
func (v *Vector[T]) DivScalarAssign(s T) *Vector[T] {
	v[0] /= s
	v[1] /= s
	v[2] /= s
	return v
}

// Normalize divides v by its magnitude in place and returns v.
// A zero vector is not special-cased: float elements become NaN and
// integer elements panic.
func (v *Vector[T]) Normalize() *Vector[T] {
	return v.DivScalarAssign(v.Magnitude())
}

func (v Vector[T]) Add(o Vector[T]) Vector[T]   { return *v.AddAssign(o) }
func (v Vector[T]) Sub(o Vector[T]) Vector[T]   { return *v.SubAssign(o) }
func (v Vector[T]) Mul(o Vector[T]) Vector[T]   { return *v.MulAssign(o) }
func (v Vector[T]) Div(o Vector[T]) Vector[T]   { return *v.DivAssign(o) }
func (v Vector[T]) Scale(s T) Vector[T]         { return *v.ScaleAssign(s) }
func (v Vector[T]) DivScalar(s T) Vector[T]     { return *v.DivScalarAssign(s) }
func (v Vector[T]) Cross(o Vector[T]) Vector[T] { return Cross(v, o) }

// Add returns a + b.
func Add[T conv.Number](a, b Vector[T]) Vector[T] { return a.Add(b) }

// Sub returns a - b.
func Sub[T conv.Number](a, b Vector[T]) Vector[T] { return a.Sub(b) }

// Mul returns the element-wise product of a and b.
func Mul[T conv.Number](a, b Vector[T]) Vector[T] { return a.Mul(b) }

// Div returns the element-wise quotient of a and b.
func Div[T conv.Number](a, b Vector[T]) Vector[T] { return a.Div(b) }

// Scale returns a * s.
func Scale[T conv.Number](a Vector[T], s T) Vector[T] { return a.Scale(s) }

// DivScalar returns a / s.
func DivScalar[T conv.Number](a Vector[T], s T) Vector[T] { return a.DivScalar(s) }

// Normalize returns a normalized copy of v.
func Normalize[T conv.Number](v Vector[T]) Vector[T] {
	v.Normalize()
	return v
}

// Dot returns the inner product of a and b.
func Dot[T conv.Number](a, b Vector[T]) T { return a.Dot(b) }

// Cross returns the cross product a × b.
func Cross[T conv.Number](a, b Vector[T]) Vector[T] {
	return Vector[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
