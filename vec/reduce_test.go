package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReductions(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		v := From[int]([3]int{1, 2, 3})
		assert.Equal(t, 6, v.Sum())
		assert.Equal(t, 6, v.Prod())
		assert.Equal(t, 2, v.Mean())
		assert.Equal(t, 1, v.Min())
		assert.Equal(t, 3, v.Max())
		assert.Equal(t, 14, v.Magnitude2())
		assert.Equal(t, 3, v.Magnitude())
	})

	t.Run("integer mean truncates", func(t *testing.T) {
		v := From[int]([3]int{1, 2, 4})
		assert.Equal(t, 2, v.Mean())
	})

	t.Run("float", func(t *testing.T) {
		v := From[float64]([4]float64{-1.5, 4, 0.5, 2})
		assert.Equal(t, 5.0, v.Sum())
		assert.Equal(t, -6.0, v.Prod())
		assert.Equal(t, 1.25, v.Mean())
		assert.Equal(t, -1.5, v.Min())
		assert.Equal(t, 4.0, v.Max())
	})

	t.Run("filled vec4", func(t *testing.T) {
		v := Filled[float64, [4]float64](2.0)
		assert.Equal(t, 16.0, v.Magnitude2())
		assert.Equal(t, 4.0, v.Magnitude())
	})

	t.Run("prod with zero", func(t *testing.T) {
		v := From[float64]([3]float64{0, 5, 7})
		assert.Equal(t, 0.0, v.Prod())
	})

	t.Run("min max first occurrence", func(t *testing.T) {
		v := From[int]([5]int{3, 1, 4, 1, 5})
		assert.Equal(t, 1, v.Min())
		assert.Equal(t, 5, v.Max())
	})

	t.Run("unsigned", func(t *testing.T) {
		v := From[uint]([3]uint{3, 4, 12})
		assert.Equal(t, uint(169), v.Magnitude2())
		assert.Equal(t, uint(13), v.Magnitude())
	})
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3[float64]
		expected float64
	}{
		{"Simple", From[float64]([3]float64{1, 2, 3}), From[float64]([3]float64{4, 5, 6}), 32},
		{"Zero", Vec3[float64]{}, Vec3[float64]{}, 0},
		{"Mixed", From[float64]([3]float64{1, -1, 2}), From[float64]([3]float64{1, 1, -2}), -4},
		{"Orthogonal", From[float64]([3]float64{1, 0, 0}), From[float64]([3]float64{0, 1, 0}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.a.Dot(tt.b), 1e-12)
			assert.InDelta(t, tt.expected, Dot(tt.b, tt.a), 1e-12)
		})
	}
}
