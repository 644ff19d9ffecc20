package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/fisika/vector"
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

// Magnitude returns a positive magnitude whose decimal exponent is uniform in
// [minExp, maxExp), so every scale in the range is sampled alike.
func (r *RNG) Magnitude(minExp, maxExp int) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.magnitudeLocked(minExp, maxExp)
}

func (r *RNG) magnitudeLocked(minExp, maxExp int) float64 {
	e := float64(minExp) + r.rand.Float64()*float64(maxExp-minExp)
	return math.Pow(10, e)
}

// SignedMagnitude is Magnitude with a random sign.
func (r *RNG) SignedMagnitude(minExp, maxExp int) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.magnitudeLocked(minExp, maxExp)
	if r.rand.Intn(2) == 0 {
		return -m
	}
	return m
}

// Magnitudes returns n values drawn by Magnitude.
// Locks only once per call (preferred over calling Magnitude in a loop).
func (r *RNG) Magnitudes(n, minExp, maxExp int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.magnitudeLocked(minExp, maxExp)
	}
	return out
}

// UnitDirection returns a random direction of length one.
// Uses a Gaussian distribution for uniform distribution on the sphere.
func (r *RNG) UnitDirection() vector.Direction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unitDirectionLocked()
}

func (r *RNG) unitDirectionLocked() vector.Direction {
	for {
		d := vector.New(r.rand.NormFloat64(), r.rand.NormFloat64(), r.rand.NormFloat64())
		if !d.IsZero() {
			return d.Normalize()
		}
	}
}

// Direction returns a random direction whose length is drawn by Magnitude.
func (r *RNG) Direction(minExp, maxExp int) vector.Direction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unitDirectionLocked().Scale(r.magnitudeLocked(minExp, maxExp))
}
