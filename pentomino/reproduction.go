package pentomino

import (
	"math/rand/v2"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Reproduction creates chromosomes, either at random or by crossover and mutation,
// and keeps the key counter and parent links.
type Reproduction struct {
	Config        *EvolutionConfig
	NextKey       int           // Key for the next chromosome created.
	Ancestors     map[int][]int // Chromosome key -> parent keys for the current generation.
	MutationCount int           // Mutations applied while producing the current generation.
}

// NewReproduction creates a new reproduction manager.
func NewReproduction(config *EvolutionConfig) *Reproduction {
	return &Reproduction{
		Config:    config,
		NextKey:   1,
		Ancestors: make(map[int][]int),
	}
}

// getNextKey returns the next chromosome key and advances the counter.
func (r *Reproduction) getNextKey() int {
	key := r.NextKey
	r.NextKey++
	return key
}

// CreateNewPopulation creates size random chromosomes.
func (r *Reproduction) CreateNewPopulation(board Board, size int, rng *rand.Rand) []*Chromosome {
	members := make([]*Chromosome, size)
	for i := range members {
		members[i] = NewChromosome(r.getNextKey(), RandomChromosome(board, rng))
		r.Ancestors[members[i].Key] = []int{}
	}
	return members
}

// Reproduce builds the next generation from evaluated members.
//
// The top Elitism members are carried over unchanged. The rest is filled by
// pairs: select two parents on the roulette wheel, cross them over, mutate each
// child. With an odd number of open slots the second child of the last pair is
// dropped, so the result always has exactly size members.
func (r *Reproduction) Reproduce(members []*Chromosome, size int, rng *rand.Rand) []*Chromosome {
	next := make([]*Chromosome, 0, size)
	ancestors := make(map[int][]int, size)
	r.MutationCount = 0

	if r.Config.Elitism > 0 {
		ranked := make([]*Chromosome, len(members))
		copy(ranked, members)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Fitness > ranked[j].Fitness
		})
		for _, elite := range ranked[:min(r.Config.Elitism, len(ranked), size)] {
			next = append(next, elite)
			ancestors[elite.Key] = []int{elite.Key}
		}
	}

	fitnesses := make([]float64, len(members))
	for i, m := range members {
		fitnesses[i] = m.Fitness
	}
	wheel := NewRouletteWheel(fitnesses, r.Config.FitnessFloor)

	for len(next) < size {
		mom, dad := SelectParentPair(rng, members, wheel)
		bitsA, bitsB := Crossover(rng, mom.Bits, dad.Bits)

		for _, bits := range [2]*bitset.BitSet{bitsA, bitsB} {
			if len(next) == size {
				break
			}
			if Mutate(rng, bits, r.Config.MutationRate) {
				r.MutationCount++
			}
			child := NewChromosome(r.getNextKey(), bits)
			next = append(next, child)
			ancestors[child.Key] = []int{mom.Key, dad.Key}
		}
	}

	r.Ancestors = ancestors
	return next
}
