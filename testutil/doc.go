// Package testutil provides testing utilities for fisika.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for property tests over quantities.
//
// # Random Magnitudes
//
//	rng := testutil.NewRNG(seed)
//	m := rng.Magnitude(-6, 6)        // log-uniform in [1e-6, 1e6)
//	ms := rng.Magnitudes(100, -3, 3)
//
// # Random Directions
//
//	u := rng.UnitDirection()   // |u| = 1
//	d := rng.Direction(-3, 3)  // random orientation, log-uniform length
package testutil
