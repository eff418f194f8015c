package vec3

import "github.com/hupe1980/libv/internal/conv"

// Equal reports whether every element of v equals the corresponding
// element of o.
func (v Vector[T]) Equal(o Vector[T]) bool {
	return v[0] == o[0] && v[1] == o[1] && v[2] == o[2]
}

// NotEqual is the negation of Equal.
func (v Vector[T]) NotEqual(o Vector[T]) bool {
	return !v.Equal(o)
}

// Compare compares v and o lexicographically and returns -1, 0 or +1.
func (v Vector[T]) Compare(o Vector[T]) int {
	if c := conv.Compare(v[0], o[0]); c != 0 {
		return c
	}
	if c := conv.Compare(v[1], o[1]); c != 0 {
		return c
	}
	return conv.Compare(v[2], o[2])
}

// Less reports whether v sorts before o lexicographically.
func (v Vector[T]) Less(o Vector[T]) bool {
	for i := range 3 {
		if v[i] < o[i] {
			return true
		}
		if o[i] < v[i] {
			return false
		}
	}
	return false
}

func (v Vector[T]) Greater(o Vector[T]) bool      { return o.Less(v) }
func (v Vector[T]) LessEqual(o Vector[T]) bool    { return !v.Greater(o) }
func (v Vector[T]) GreaterEqual(o Vector[T]) bool { return !v.Less(o) }

// Equal reports whether a and b are structurally equal.
func Equal[T conv.Number](a, b Vector[T]) bool { return a.Equal(b) }

// Compare compares a and b lexicographically.
// It can be passed to slices.SortFunc.
func Compare[T conv.Number](a, b Vector[T]) int { return a.Compare(b) }
