package world

import (
	"math"
	"math/rand/v2"
)

// Rand is a deterministic random number generator. It holds its whole state
// by value, so copying a Rand produces an identical, independent generator.
// This is what lets a World be copied and replayed.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random number in [min, max].
func (r *Rand) RInt(min, max int64) int64 {
	if max < min {
		panic("RInt: max < min")
	}
	n := uint64(max-min) + 1
	if n == 0 {
		// [math.MinInt64, math.MaxInt64], every value is valid.
		return int64(r.pcg.Uint64())
	}
	// Values at or above limit would make the low results more likely than
	// the high ones, so they are drawn again. limit is a multiple of n.
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v := r.pcg.Uint64()
		if v < limit {
			return min + int64(v%n)
		}
	}
}
