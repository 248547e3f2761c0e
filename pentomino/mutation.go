package pentomino

import (
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

// Mutate flips exactly one uniformly chosen bit of bits with probability rate.
// It reports whether a bit was flipped.
func Mutate(rng *rand.Rand, bits *bitset.BitSet, rate float64) bool {
	if bits.Len() == 0 || rng.Float64() >= rate {
		return false
	}
	bits.Flip(uint(rng.IntN(int(bits.Len()))))
	return true
}
