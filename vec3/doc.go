// Package vec3 provides a three-dimensional vector with named axis accessors.
//
// Vector[T] is a named [3]T, so v[0], v[1] and v[2] index it directly. X, Y
// and Z are the same slots by name. At and SetAt are the bounds-checked
// counterparts: they return an *ErrOutOfRange instead of panicking.
//
// The operation set matches package vec at three dimensions: compound
// assignment (AddAssign, ScaleAssign, Normalize, ...) mutates the receiver,
// value methods and package functions return new vectors. Arithmetic is
// written out per slot.
package vec3
