package vec

import (
	"fmt"
	"strings"

	"github.com/hupe1980/libv/internal/conv"
)

// Array is the set of backing array types a Vector can use.
// The array length is the vector's dimension.
type Array[T conv.Number] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
}

// Vector is a fixed-size vector of len(A) elements of type T.
// The zero value is the zero vector.
type Vector[T conv.Number, A Array[T]] struct {
	p A
}

// Vec2 is a two-dimensional Vector.
type Vec2[T conv.Number] = Vector[T, [2]T]

// Vec3 is a three-dimensional Vector.
type Vec3[T conv.Number] = Vector[T, [3]T]

// Vec4 is a four-dimensional Vector.
type Vec4[T conv.Number] = Vector[T, [4]T]

// From creates a vector holding the elements of a.
func From[T conv.Number, A Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{p: a}
}

// Filled creates a vector with every element set to x.
func Filled[T conv.Number, A Array[T]](x T) Vector[T, A] {
	var v Vector[T, A]
	v.Fill(x)
	return v
}

// Len returns the dimension of the vector.
func (v Vector[T, A]) Len() int {
	return len(v.p)
}

// Array returns a copy of the elements.
func (v Vector[T, A]) Array() A {
	return v.p
}

// Index returns element i. It panics if i is out of range.
func (v Vector[T, A]) Index(i int) T {
	return v.p[i]
}

// SetIndex sets element i to x. It panics if i is out of range.
func (v *Vector[T, A]) SetIndex(i int, x T) {
	v.p[i] = x
}

// Ref returns a pointer to element i. It panics if i is out of range.
func (v *Vector[T, A]) Ref(i int) *T {
	return &v.p[i]
}

// Fill sets every element to x.
func (v *Vector[T, A]) Fill(x T) {
	for i := range len(v.p) {
		v.p[i] = x
	}
}

// Swap exchanges the contents of v and o.
func (v *Vector[T, A]) Swap(o *Vector[T, A]) {
	v.p, o.p = o.p, v.p
}

// String formats the vector as (e0, e1, ...).
func (v Vector[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range len(v.p) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v.p[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
