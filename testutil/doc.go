// Package testutil provides testing utilities for libv.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating vector
// components, so property tests are reproducible.
//
// # Random Components
//
//	rng := testutil.NewRNG(seed)
//	xyz := rng.Triple(-10, 10)      // three values in [-10, 10)
//	dst := make([]float64, 4)
//	rng.FillUniformRange(dst, 0, 1) // uniform [0, 1)
//	ints := rng.IntTriple(-5, 5)    // three ints in [-5, 5)
package testutil
