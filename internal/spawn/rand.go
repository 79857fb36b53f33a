package spawn

import "math/rand"

// Rand is the random source used by schedulers and pattern generators.
// *math/rand.Rand satisfies it, so tests can seed a generator and replay.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded generator.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rangeF draws uniformly from [lo, hi). An inverted range yields values in
// (hi, lo].
func rangeF(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// rangeInt draws uniformly from [lo, hi] inclusive.
func rangeInt(rng Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
