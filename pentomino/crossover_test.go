package pentomino

import (
	"strings"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossoverAt(t *testing.T) {
	a, err := ParseBits("11111111")
	require.NoError(t, err)
	b, err := ParseBits("00000000")
	require.NoError(t, err)

	childA, childB := crossoverAt(a, b, 3)
	assert.Equal(t, "11100000", bitString(childA))
	assert.Equal(t, "00011111", bitString(childB))
}

func TestCrossoverPreservesLength(t *testing.T) {
	rng := newTestRNG(21)
	for length := uint(2); length <= 64; length++ {
		a := bitset.New(length)
		b := bitset.New(length)
		for i := uint(0); i < length; i++ {
			a.SetTo(i, rng.IntN(2) == 1)
			b.SetTo(i, rng.IntN(2) == 1)
		}
		childA, childB := Crossover(rng, a, b)
		assert.Equal(t, length, childA.Len())
		assert.Equal(t, length, childB.Len())
	}
}

func TestCrossoverSplitsInsideSequence(t *testing.T) {
	const length = 12
	a, err := ParseBits(strings.Repeat("1", length))
	require.NoError(t, err)
	b := bitset.New(length)
	rng := newTestRNG(8)

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		childA, childB := Crossover(rng, a, b)
		sA := bitString(childA)
		k := strings.Index(sA, "0")
		require.GreaterOrEqual(t, k, 1, "split must leave a bit from parent A: %s", sA)
		require.LessOrEqual(t, k, length-1)
		assert.Equal(t, strings.Repeat("1", k)+strings.Repeat("0", length-k), sA)
		assert.Equal(t, strings.Repeat("0", k)+strings.Repeat("1", length-k), bitString(childB))
		seen[k] = true
	}
	assert.Len(t, seen, length-1, "every split point in [1, L-1] should occur")

	assert.Equal(t, strings.Repeat("1", length), bitString(a), "parent A modified")
	assert.Equal(t, uint(0), b.Count(), "parent B modified")
}

func TestCrossoverShortSequencesAreCloned(t *testing.T) {
	a, err := ParseBits("1")
	require.NoError(t, err)
	b, err := ParseBits("0")
	require.NoError(t, err)

	childA, childB := Crossover(newTestRNG(1), a, b)
	assert.True(t, childA.Equal(a))
	assert.True(t, childB.Equal(b))
	assert.NotSame(t, a, childA)
}
