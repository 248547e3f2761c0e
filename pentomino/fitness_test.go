package pentomino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestScoreValidTiling(t *testing.T) {
	board := mustBoard(t, 3, 5)
	e := NewEvaluator(board, 0.2)

	s := e.Score(exampleGrid())
	assert.InDelta(t, 1.0, s.Connectivity, tolerance)
	assert.InDelta(t, 0.2, s.Balance, tolerance)
	assert.InDelta(t, 1.2, s.Total(), tolerance)
	assert.InDelta(t, e.MaxFitness(), s.Total(), tolerance)
	assert.True(t, e.IsSolution(s.Total()))

	bits := mustEncode(t, exampleGrid(), board)
	assert.InDelta(t, 1.2, e.Evaluate(bits), tolerance)
}

func TestScoreFollowsPenaltyWeight(t *testing.T) {
	board := mustBoard(t, 3, 5)
	for _, penalty := range []float64{0, 0.2, 0.5, 1} {
		e := NewEvaluator(board, penalty)
		assert.InDelta(t, 1+penalty, e.Score(exampleGrid()).Total(), tolerance)
	}
}

func TestScoreScatteredCellsIsLower(t *testing.T) {
	board := mustBoard(t, 3, 5)
	e := NewEvaluator(board, 0.2)

	// Label (r+c)%3: no two neighbours share a label, every label still has 5 cells.
	grid := NewGrid(board)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = (r + c) % 3
		}
	}

	s := e.Score(grid)
	assert.InDelta(t, 0.2, s.Connectivity, tolerance)
	assert.InDelta(t, 0.2, s.Balance, tolerance)
	assert.Less(t, s.Total(), e.Score(exampleGrid()).Total())
	assert.False(t, e.IsSolution(s.Total()))
}

func TestScoreCountsComponentOfFirstMemberOnly(t *testing.T) {
	board := mustBoard(t, 1, 5)
	e := NewEvaluator(board, 0.2)

	// Label 0 occupies cells 0, 2, 3, 4; the component holding cell 0 has one cell.
	s := e.Score(Grid{{0, 1, 0, 0, 0}})
	// label 0: (1-4/5) = 0.2, label 1: (1-4/5) = 0.2
	assert.InDelta(t, 0.4, s.Connectivity, tolerance)
	// label 0: 0.2*(1-1/5) = 0.16, label 1: 0.2*(1-4/5) = 0.04
	assert.InDelta(t, 0.2, s.Balance, tolerance)
}

func TestScoreSkipsAbsentLabels(t *testing.T) {
	board := mustBoard(t, 2, 5)
	e := NewEvaluator(board, 0.2)

	// Only label 0 is used: its component and total are both 10 cells.
	grid := Grid{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	s := e.Score(grid)
	assert.InDelta(t, 0.0, s.Connectivity, tolerance)
	assert.InDelta(t, 0.0, s.Balance, tolerance)
}

func TestScoreLargeComponentGoesNegative(t *testing.T) {
	board := mustBoard(t, 5, 5)
	e := NewEvaluator(board, 0.2)

	s := e.Score(NewGrid(board))
	assert.InDelta(t, -0.6, s.Connectivity, tolerance)
	assert.InDelta(t, -0.12, s.Balance, tolerance)
}

func TestEvaluateMatchesScoreOfDecodedGrid(t *testing.T) {
	board := mustBoard(t, 4, 5)
	e := NewEvaluator(board, 0.2)
	rng := newTestRNG(5)
	for i := 0; i < 30; i++ {
		bits := RandomChromosome(board, rng)
		assert.InDelta(t, e.Score(Decode(bits, board)).Total(), e.Evaluate(bits), tolerance)
	}
}

func TestEvaluateAllMatchesSequential(t *testing.T) {
	board := mustBoard(t, 5, 6)
	e := NewEvaluator(board, 0.2)
	rng := newTestRNG(9)

	members := make([]*Chromosome, 64)
	for i := range members {
		members[i] = NewChromosome(i, RandomChromosome(board, rng))
	}
	e.EvaluateAll(members, 8)

	for _, m := range members {
		require.Equal(t, e.Evaluate(m.Bits), m.Fitness, "chromosome %d", m.Key)
	}
}

func TestEvaluateAllDefaultWorkers(t *testing.T) {
	board := mustBoard(t, 3, 5)
	e := NewEvaluator(board, 0.2)
	members := []*Chromosome{NewChromosome(1, mustEncode(t, exampleGrid(), board))}

	e.EvaluateAll(members, 0)
	assert.InDelta(t, 1.2, members[0].Fitness, tolerance)
}
