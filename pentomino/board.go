package pentomino

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
)

// PieceSize is the number of cells in every piece.
const PieceSize = 5

// Board describes the rows x cols grid being tiled.
// Cells are numbered in row-major order: cell = row*Cols + col.
type Board struct {
	Rows int
	Cols int

	// adjacency holds one node per cell and an edge between every pair of
	// 4-neighbours. Built once in NewBoard and only read afterwards.
	adjacency *simple.UndirectedGraph
}

// NewBoard validates the dimensions and builds the cell adjacency graph.
func NewBoard(rows, cols int) (Board, error) {
	if rows <= 0 || cols <= 0 {
		return Board{}, fmt.Errorf("%w: board dimensions must be positive, got %dx%d", ErrConfiguration, rows, cols)
	}
	if (rows*cols)%PieceSize != 0 {
		return Board{}, fmt.Errorf("%w: board area %d (%dx%d) is not divisible by %d", ErrConfiguration, rows*cols, rows, cols, PieceSize)
	}

	g := simple.NewUndirectedGraph()
	for cell := 0; cell < rows*cols; cell++ {
		g.AddNode(simple.Node(cell))
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := r*cols + c
			if c+1 < cols {
				g.SetEdge(simple.Edge{F: simple.Node(cell), T: simple.Node(cell + 1)})
			}
			if r+1 < rows {
				g.SetEdge(simple.Edge{F: simple.Node(cell), T: simple.Node(cell + cols)})
			}
		}
	}

	return Board{Rows: rows, Cols: cols, adjacency: g}, nil
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.Rows * b.Cols
}

// NumPieces returns how many pieces a complete tiling uses.
func (b Board) NumPieces() int {
	return b.Cells() / PieceSize
}

// LabelWidth returns the number of bits used to encode one cell's piece label:
// the smallest w >= 1 with 2^w >= NumPieces.
func (b Board) LabelWidth() int {
	w := 1
	for 1<<w < b.NumPieces() {
		w++
	}
	return w
}

// ChromosomeLength returns the number of bits in a chromosome for this board.
func (b Board) ChromosomeLength() int {
	return b.LabelWidth() * b.Cells()
}

// Neighbors returns the cells sharing an edge with cell.
func (b Board) Neighbors(cell int) []int {
	it := b.adjacency.From(int64(cell))
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	return out
}

// String implements fmt.Stringer.
func (b Board) String() string {
	return fmt.Sprintf("%dx%d", b.Rows, b.Cols)
}
