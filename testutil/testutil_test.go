package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float64, 64)
	rng.FillUniformRange(v, -1, 1)

	for _, x := range v {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}
}

func TestTriple(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		xyz := rng.Triple(-10, 10)
		for _, x := range xyz {
			assert.GreaterOrEqual(t, x, -10.0)
			assert.Less(t, x, 10.0)
		}
	}
}

func TestNonZeroTriple(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		for _, x := range rng.NonZeroTriple(-1, 1) {
			assert.NotZero(t, x)
		}
	}
}

func TestIntTriple(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		for _, x := range rng.IntTriple(-5, 5) {
			assert.GreaterOrEqual(t, x, -5)
			assert.Less(t, x, 5)
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	assert.Equal(t, int64(42), rng.Seed())

	first := rng.Triple(0, 1)
	rng.Reset()
	assert.Equal(t, first, rng.Triple(0, 1))
}
