package vec

import "github.com/hupe1980/libv/internal/conv"

// Equal reports whether every element of v equals the corresponding
// element of o.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	for i := range len(v.p) {
		if v.p[i] != o.p[i] {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func (v Vector[T, A]) NotEqual(o Vector[T, A]) bool {
	return !v.Equal(o)
}

// Compare compares v and o lexicographically and returns -1, 0 or +1.
func (v Vector[T, A]) Compare(o Vector[T, A]) int {
	for i := range len(v.p) {
		if c := conv.Compare(v.p[i], o.p[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether v sorts before o lexicographically.
func (v Vector[T, A]) Less(o Vector[T, A]) bool {
	for i := range len(v.p) {
		if v.p[i] < o.p[i] {
			return true
		}
		if o.p[i] < v.p[i] {
			return false
		}
	}
	return false
}

// Greater reports whether o sorts before v.
func (v Vector[T, A]) Greater(o Vector[T, A]) bool {
	return o.Less(v)
}

// LessEqual reports whether v does not sort after o.
func (v Vector[T, A]) LessEqual(o Vector[T, A]) bool {
	return !v.Greater(o)
}

// GreaterEqual reports whether v does not sort before o.
func (v Vector[T, A]) GreaterEqual(o Vector[T, A]) bool {
	return !v.Less(o)
}

// Equal reports whether a and b are structurally equal.
func Equal[T conv.Number, A Array[T]](a, b Vector[T, A]) bool {
	return a.Equal(b)
}

// Compare compares a and b lexicographically.
// It can be passed to slices.SortFunc.
func Compare[T conv.Number, A Array[T]](a, b Vector[T, A]) int {
	return a.Compare(b)
}
