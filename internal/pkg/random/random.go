package random

import (
	"math/rand/v2"
	"time"
)

// Random provides the randomness the engine needs and can be replaced in tests.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Chance reports true with probability p. p <= 0 never fires and p >= 1 always does.
func Chance(r Random, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	return r.Float64() < p
}

// Source is a PCG-backed Random. It is not safe for concurrent use; give each session its own.
type Source struct {
	rnd *rand.Rand
}

// New returns a Source for seed. Seed 0 derives a seed from the clock.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // not security sensitive
	}

	return &Source{rnd: rand.New(rand.NewPCG(seed, seed>>1|1))} //nolint: gosec // it's ok
}

func (that *Source) Float64() float64 {
	return that.rnd.Float64()
}

// Fixed always returns the same value.
type Fixed float64

func (that Fixed) Float64() float64 {
	return float64(that)
}
