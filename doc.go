// Package libv provides fixed-size mathematical vectors for Go.
//
// The module ships two independent vector types that implement the same
// contract:
//
//   - vec.Vector[T, A]: N-dimensional, where N is the length of the backing
//     array type A (1 through 16). vec.Cross only accepts three-dimensional
//     vectors.
//   - vec3.Vector[T]: a named [3]T with X/Y/Z accessors and the
//     bounds-checked At/SetAt.
//
// # Quick Start
//
//	a := vec3.New(1.0, 0.0, 0.0)
//	b := vec3.New(0.0, 1.0, 0.0)
//	c := a.Cross(b)                      // (0, 0, 1)
//
//	v := vec.From[float64]([4]float64{2, 2, 2, 2})
//	v.Magnitude()                        // 4
//	v.Normalize()                        // in place
//
// # Element Types
//
// Any integer or floating-point type, including named types over them, can
// be an element. Arithmetic inherits the element type's behavior: integer
// division truncates and panics on zero, float division yields Inf or NaN.
//
// # Value Semantics
//
// Both vector types are arrays underneath. Assignment copies, and no two
// vectors ever share storage.
package libv
