package pentomino

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluatedPopulation(t *testing.T, board Board, r *Reproduction, size int, seed uint64) []*Chromosome {
	t.Helper()
	members := r.CreateNewPopulation(board, size, newTestRNG(seed))
	NewEvaluator(board, 0.2).EvaluateAll(members, 2)
	return members
}

func TestCreateNewPopulation(t *testing.T) {
	board := mustBoard(t, 3, 5)
	r := NewReproduction(&EvolutionConfig{})

	members := r.CreateNewPopulation(board, 10, newTestRNG(1))
	require.Len(t, members, 10)
	keys := make(map[int]bool)
	for _, m := range members {
		assert.Equal(t, board.ChromosomeLength(), m.Len())
		keys[m.Key] = true
		assert.Empty(t, r.Ancestors[m.Key])
	}
	assert.Len(t, keys, 10)
	assert.Equal(t, 11, r.NextKey)
}

func TestReproduceKeepsPopulationSize(t *testing.T) {
	board := mustBoard(t, 3, 5)
	for _, size := range []int{1, 2, 7, 10} {
		r := NewReproduction(&EvolutionConfig{MutationRate: 0.5})
		members := evaluatedPopulation(t, board, r, size, uint64(size))

		next := r.Reproduce(members, size, newTestRNG(99))
		require.Len(t, next, size, "size %d", size)
		assert.Len(t, r.Ancestors, size)
		assert.Equal(t, 2*size+1, r.NextKey, "one key per created chromosome")
		for _, child := range next {
			assert.Equal(t, board.ChromosomeLength(), child.Len())
			assert.Len(t, r.Ancestors[child.Key], 2)
			assert.Greater(t, child.Key, size)
		}
	}
}

func TestReproduceDoesNotModifyParents(t *testing.T) {
	board := mustBoard(t, 3, 5)
	r := NewReproduction(&EvolutionConfig{MutationRate: 1})
	members := evaluatedPopulation(t, board, r, 8, 3)

	before := make([]string, len(members))
	for i, m := range members {
		before[i] = m.String()
	}
	r.Reproduce(members, 8, newTestRNG(4))
	for i, m := range members {
		assert.Equal(t, before[i], m.String())
	}
	assert.Equal(t, 8, r.MutationCount)
}

func TestReproduceCarriesElites(t *testing.T) {
	board := mustBoard(t, 3, 5)
	r := NewReproduction(&EvolutionConfig{Elitism: 2, MutationRate: 1})
	members := evaluatedPopulation(t, board, r, 6, 5)
	members[4].Bits = mustEncode(t, exampleGrid(), board)
	members[4].Fitness = 1.2

	ranked := fitnessesOf(members)
	sort.Sort(sort.Reverse(sort.Float64Slice(ranked)))

	next := r.Reproduce(members, 6, newTestRNG(6))
	require.Len(t, next, 6)
	assert.Same(t, members[4], next[0])
	assert.Equal(t, ranked[1], next[1].Fitness)
	assert.Equal(t, []int{members[4].Key}, r.Ancestors[members[4].Key])
	assert.Equal(t, "000001010100000101100010101010", next[0].String(), "elites are not mutated")
	assert.Equal(t, 4, r.MutationCount)
}
