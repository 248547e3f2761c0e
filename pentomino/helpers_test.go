package pentomino

import (
	"math/rand/v2"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

func newTestRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func mustBoard(t *testing.T, rows, cols int) Board {
	t.Helper()
	board, err := NewBoard(rows, cols)
	require.NoError(t, err)
	return board
}

// exampleGrid is a valid tiling of the 3x5 board:
//
//	a a b b b
//	a a b b c
//	a c c c c
func exampleGrid() Grid {
	return Grid{
		{0, 0, 1, 1, 1},
		{0, 0, 1, 1, 2},
		{0, 2, 2, 2, 2},
	}
}

func mustEncode(t *testing.T, grid Grid, board Board) *bitset.BitSet {
	t.Helper()
	bits, err := Encode(grid, board)
	require.NoError(t, err)
	return bits
}

func testConfig(rows, cols, popSize int, seed uint64) *Config {
	cfg := DefaultConfig()
	cfg.Board.Rows = rows
	cfg.Board.Cols = cols
	cfg.Evolution.PopSize = popSize
	cfg.Evolution.MaxGenerations = 10
	cfg.Evolution.Seed = seed
	cfg.Evolution.Workers = 4
	return cfg
}
