package generator

import (
	"math/rand/v2"
	"strings"
)

// Random is the random source of one population run. It is seeded once
// and never re-seeded during the run. Random is not safe for concurrent use.
type Random struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandom creates a Random from a seed.
func NewRandom(seed uint64) *Random {
	return &Random{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// Uint64 returns a pseudo-random 64-bit value.
func (r *Random) Uint64() uint64 {
	return r.rng.Uint64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *Random) IntN(n int) int {
	return r.rng.IntN(n)
}

// IntRange returns a value in [lo, hi]. The bounds are swapped when lo > hi.
func (r *Random) IntRange(lo, hi int64) int64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	span := uint64(hi - lo)
	if span == ^uint64(0) {
		return int64(r.rng.Uint64())
	}

	return lo + int64(r.rng.Uint64N(span+1))
}

// FloatRange returns a value in [lo, hi).
func (r *Random) FloatRange(lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo + r.rng.Float64()*(hi-lo)
}

// Bool returns a pseudo-random boolean.
func (r *Random) Bool() bool {
	return r.rng.Uint64()&1 == 1
}

// Pick returns a random index below n, or -1 when n is 0.
func (r *Random) Pick(n int) int {
	if n <= 0 {
		return -1
	}

	return r.rng.IntN(n)
}

const upperAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphaString returns an upper-case string with a length in [minLen, maxLen].
func (r *Random) AlphaString(minLen, maxLen int) string {
	n := int(r.IntRange(int64(minLen), int64(maxLen)))

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(upperAlpha[r.rng.IntN(len(upperAlpha))])
	}

	return sb.String()
}

// Read fills p with pseudo-random bytes. It implements io.Reader so the
// source can feed deterministic UUIDs.
func (r *Random) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint64())
	}

	return len(p), nil
}
