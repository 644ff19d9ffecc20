package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitude(t *testing.T) {
	rng := NewRNG(4711)

	for _, m := range rng.Magnitudes(1000, -3, 6) {
		assert.GreaterOrEqual(t, m, 1e-3)
		assert.Less(t, m, 1e6)
	}
}

func TestSignedMagnitude(t *testing.T) {
	rng := NewRNG(4711)

	var neg, pos int
	for range 1000 {
		m := rng.SignedMagnitude(0, 3)
		if m < 0 {
			neg++
		} else {
			pos++
		}
		assert.GreaterOrEqual(t, math.Abs(m), 1.0)
	}

	assert.Positive(t, neg)
	assert.Positive(t, pos)
}

func TestUnitDirection(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		assert.InDelta(t, 1.0, rng.UnitDirection().Magnitude(), 1e-12)
	}
}

func TestDirection(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		m := rng.Direction(-2, 2).Magnitude()
		assert.GreaterOrEqual(t, m, 1e-2*(1-1e-12))
		assert.Less(t, m, 1e2*(1+1e-12))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Magnitudes(10, 0, 1)

	rng.Reset()
	v2 := rng.Magnitudes(10, 0, 1)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}
