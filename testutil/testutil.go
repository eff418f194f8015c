package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Triple returns three random values in range [minVal, maxVal).
func (r *RNG) Triple(minVal, maxVal float64) [3]float64 {
	var out [3]float64
	r.FillUniformRange(out[:], minVal, maxVal)
	return out
}

// NonZeroTriple returns three values in range [minVal, maxVal), none of
// which is zero. Useful as a divisor.
func (r *RNG) NonZeroTriple(minVal, maxVal float64) [3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out [3]float64
	span := maxVal - minVal
	for i := range out {
		for out[i] == 0 {
			out[i] = minVal + r.rand.Float64()*span
		}
	}
	return out
}

// IntTriple returns three random ints in range [minVal, maxVal).
func (r *RNG) IntTriple(minVal, maxVal int) [3]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out [3]int
	for i := range out {
		out[i] = minVal + r.rand.Intn(maxVal-minVal)
	}
	return out
}
