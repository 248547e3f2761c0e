package pentomino

import (
	"fmt"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"
)

// Grid is the decoded phenotype: Grid[row][col] is the piece label of that cell.
type Grid [][]int

// NewGrid allocates a zero-labelled grid for board.
func NewGrid(board Board) Grid {
	g := make(Grid, board.Rows)
	for r := range g {
		g[r] = make([]int, board.Cols)
	}
	return g
}

// Decode splits bits into one LabelWidth group per cell and places the labels
// row-major. Every bit string decodes to some grid; bits past the end read as 0.
func Decode(bits *bitset.BitSet, board Board) Grid {
	labels := decodeCells(bits, board)
	grid := NewGrid(board)
	for cell, label := range labels {
		grid[cell/board.Cols][cell%board.Cols] = label
	}
	return grid
}

// decodeCells returns the label of every cell in row-major order.
func decodeCells(bits *bitset.BitSet, board Board) []int {
	width := board.LabelWidth()
	labels := make([]int, board.Cells())
	for cell := range labels {
		label := 0
		base := uint(cell * width)
		for j := 0; j < width; j++ {
			label <<= 1
			if bits.Test(base + uint(j)) {
				label |= 1
			}
		}
		labels[cell] = label
	}
	return labels
}

// Encode is the inverse of Decode. The most significant bit of each label comes first.
func Encode(grid Grid, board Board) (*bitset.BitSet, error) {
	if len(grid) != board.Rows {
		return nil, fmt.Errorf("grid has %d rows, board %s expects %d", len(grid), board, board.Rows)
	}
	width := board.LabelWidth()
	bits := bitset.New(uint(board.ChromosomeLength()))
	for r, row := range grid {
		if len(row) != board.Cols {
			return nil, fmt.Errorf("grid row %d has %d cells, board %s expects %d", r, len(row), board, board.Cols)
		}
		for c, label := range row {
			if label < 0 || label >= 1<<width {
				return nil, fmt.Errorf("label %d at (%d,%d) does not fit in %d bits", label, r, c, width)
			}
			putLabel(bits, (r*board.Cols+c)*width, width, label)
		}
	}
	return bits, nil
}

// RandomChromosome draws a uniform label in [0, NumPieces) for every cell.
func RandomChromosome(board Board, rng *rand.Rand) *bitset.BitSet {
	width := board.LabelWidth()
	bits := bitset.New(uint(board.ChromosomeLength()))
	for cell := 0; cell < board.Cells(); cell++ {
		putLabel(bits, cell*width, width, rng.IntN(board.NumPieces()))
	}
	return bits
}

func putLabel(bits *bitset.BitSet, offset, width, label int) {
	for j := 0; j < width; j++ {
		bit := (label >> (width - 1 - j)) & 1
		bits.SetTo(uint(offset+j), bit == 1)
	}
}
