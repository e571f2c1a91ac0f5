package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Between returns a random int in [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

const unitSteps = 1 << 53

// Range returns a random float in [lo, hi]; both bounds are reachable.
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	u := float64(r.r.Uint64N(unitSteps+1)) / unitSteps
	return lo + u*(hi-lo)
}

// Jitter returns a symmetric random offset in [-amp, amp).
func (r *RNG) Jitter(amp float64) float64 {
	if amp <= 0 {
		return 0
	}
	return (r.r.Float64()*2 - 1) * amp
}

// Phase returns a random angle in [0, 2π).
func (r *RNG) Phase() float64 { return r.r.Float64() * 2 * math.Pi }
