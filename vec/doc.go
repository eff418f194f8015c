// Package vec provides a fixed-size N-dimensional vector generic over its
// element type.
//
// The dimension is part of the type: Vector[T, A] is backed by the array type
// A, so Vector[float64, [3]float64] and Vector[float64, [4]float64] are
// distinct types and mixing them is a compile error. Dimensions 1 through 16
// are supported; the aliases Vec2, Vec3 and Vec4 name the common shapes.
//
// # Usage
//
//	a := vec.From[float64]([3]float64{1, 0, 0})
//	b := vec.From[float64]([3]float64{0, 1, 0})
//	c := vec.Cross(a, b)            // (0, 0, 1)
//	d := vec.Dot(a, b)              // 0
//	a.AddAssign(b).ScaleAssign(2)   // in place: (2, 2, 0)
//	n := vec.Normalize(a)           // copy, a untouched
//
// # Semantics
//
// Vectors are plain values. Assigning or passing a vector copies it.
//
// Compound-assignment methods (AddAssign, ScaleAssign, Normalize, ...) mutate
// the receiver and return it. Value methods (Add, Scale, ...) and the package
// functions of the same name return a new vector and leave the operands
// untouched.
//
// Index, SetIndex and Ref are unchecked in the sense that they report no
// error: an index outside [0, N) panics like any Go array access.
//
// Arithmetic follows the element type. Normalizing a zero vector divides by
// zero magnitude, which yields NaN for floating-point T and panics for
// integral T.
//
// Comparison is structural and lexicographic, element 0 most significant,
// using T's own == and < operators.
package vec
