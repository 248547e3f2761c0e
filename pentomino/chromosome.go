package pentomino

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Chromosome represents one candidate tiling in the population.
type Chromosome struct {
	Key     int            // Unique identifier for this chromosome.
	Bits    *bitset.BitSet // Genotype: LabelWidth bits per cell, row-major.
	Fitness float64        // Fitness from the most recent evaluation.
}

// NewChromosome wraps bits in a chromosome with zero fitness.
func NewChromosome(key int, bits *bitset.BitSet) *Chromosome {
	return &Chromosome{
		Key:  key,
		Bits: bits,
	}
}

// Len returns the number of bits in the genotype.
func (c *Chromosome) Len() int {
	return int(c.Bits.Len())
}

// Clone returns a deep copy that keeps the key and fitness.
func (c *Chromosome) Clone() *Chromosome {
	return &Chromosome{
		Key:     c.Key,
		Bits:    c.Bits.Clone(),
		Fitness: c.Fitness,
	}
}

// Distance returns the fraction of bit positions where c and other differ.
func (c *Chromosome) Distance(other *Chromosome) float64 {
	n := max(c.Bits.Len(), other.Bits.Len())
	if n == 0 {
		return 0
	}
	return float64(c.Bits.SymmetricDifference(other.Bits).Count()) / float64(n)
}

// String returns the genotype as a string of 0s and 1s.
func (c *Chromosome) String() string {
	return bitString(c.Bits)
}

func bitString(bits *bitset.BitSet) string {
	buf := make([]byte, bits.Len())
	for i := range buf {
		if bits.Test(uint(i)) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// ParseBits builds a bit set from a string of 0s and 1s.
func ParseBits(s string) (*bitset.BitSet, error) {
	bits := bitset.New(uint(len(s)))
	for i, ch := range s {
		switch ch {
		case '0':
		case '1':
			bits.Set(uint(i))
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", ch, i)
		}
	}
	return bits, nil
}
