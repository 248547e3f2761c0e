package pentomino

import (
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

// Crossover performs single-point crossover at a split k drawn uniformly from [1, L-1].
// childA is a[0,k) + b[k,L) and childB is b[0,k) + a[k,L). The parents are not modified.
// Sequences shorter than two bits have no split point and are cloned.
func Crossover(rng *rand.Rand, a, b *bitset.BitSet) (*bitset.BitSet, *bitset.BitSet) {
	length := min(a.Len(), b.Len())
	if length < 2 {
		return a.Clone(), b.Clone()
	}
	k := 1 + uint(rng.IntN(int(length-1)))
	return crossoverAt(a, b, k)
}

func crossoverAt(a, b *bitset.BitSet, k uint) (*bitset.BitSet, *bitset.BitSet) {
	length := min(a.Len(), b.Len())
	childA := bitset.New(length)
	childB := bitset.New(length)
	for i := uint(0); i < length; i++ {
		if i < k {
			childA.SetTo(i, a.Test(i))
			childB.SetTo(i, b.Test(i))
		} else {
			childA.SetTo(i, b.Test(i))
			childB.SetTo(i, a.Test(i))
		}
	}
	return childA, childB
}
