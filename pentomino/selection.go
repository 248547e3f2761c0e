package pentomino

import (
	"math/rand/v2"
	"sort"
)

// RouletteWheel implements fitness-proportional selection.
// Weights are clamped to a floor before summing so cumulative weights never decrease.
type RouletteWheel struct {
	cumulative []float64
	total      float64
}

// NewRouletteWheel builds the cumulative weight array for fitnesses.
func NewRouletteWheel(fitnesses []float64, floor float64) *RouletteWheel {
	w := &RouletteWheel{cumulative: make([]float64, len(fitnesses))}
	for i, f := range fitnesses {
		w.total += max(f, floor)
		w.cumulative[i] = w.total
	}
	return w
}

// Total returns the sum of clamped weights.
func (w *RouletteWheel) Total() float64 {
	return w.total
}

// Spin returns the index of the first slot whose cumulative weight exceeds a
// uniform draw in [0, total). With zero total weight every slot is equally likely.
func (w *RouletteWheel) Spin(rng *rand.Rand) int {
	n := len(w.cumulative)
	if w.total <= 0 {
		return rng.IntN(n)
	}
	x := rng.Float64() * w.total
	i := sort.Search(n, func(i int) bool { return w.cumulative[i] > x })
	if i == n {
		// Float rounding can leave x == total.
		i = n - 1
	}
	return i
}

// SelectParentPair spins the wheel twice independently; both parents may be the same member.
func SelectParentPair(rng *rand.Rand, members []*Chromosome, wheel *RouletteWheel) (*Chromosome, *Chromosome) {
	return members[wheel.Spin(rng)], members[wheel.Spin(rng)]
}
