package pentomino

import (
	"math"
	"runtime"

	"github.com/bits-and-blooms/bitset"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Score is the breakdown of a fitness value.
type Score struct {
	Connectivity float64 // Sum over labels of (1 - |5 - component size|/5) / numPieces.
	Balance      float64 // Sum over labels of penalty * (1 - |5 - total cells|/5) / numPieces.
}

// Total returns the fitness value.
func (s Score) Total() float64 {
	return s.Connectivity + s.Balance
}

// Evaluator scores chromosomes for a fixed board and penalty weight.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	Board         Board
	PenaltyWeight float64
}

// NewEvaluator creates an evaluator for board.
func NewEvaluator(board Board, penaltyWeight float64) *Evaluator {
	return &Evaluator{Board: board, PenaltyWeight: penaltyWeight}
}

// MaxFitness is the score of a valid tiling.
func (e *Evaluator) MaxFitness() float64 {
	return 1 + e.PenaltyWeight
}

// IsSolution reports whether fitness is that of a valid tiling.
func (e *Evaluator) IsSolution(fitness float64) bool {
	return math.Abs(fitness-e.MaxFitness()) < 1e-9
}

// Evaluate decodes bits and returns the fitness value.
func (e *Evaluator) Evaluate(bits *bitset.BitSet) float64 {
	return e.scoreCells(decodeCells(bits, e.Board)).Total()
}

// Score returns the fitness breakdown for an already decoded grid.
func (e *Evaluator) Score(grid Grid) Score {
	labels := make([]int, 0, e.Board.Cells())
	for _, row := range grid {
		labels = append(labels, row...)
	}
	return e.scoreCells(labels)
}

func (e *Evaluator) scoreCells(labels []int) Score {
	// Labels in order of first appearance so the float sums are reproducible.
	var order []int
	first := make(map[int]int)
	total := make(map[int]int)
	for cell, label := range labels {
		if _, seen := first[label]; !seen {
			first[label] = cell
			order = append(order, label)
		}
		total[label]++
	}

	n := float64(e.Board.NumPieces())
	var s Score
	for _, label := range order {
		component := e.componentSize(labels, first[label])
		s.Connectivity += (1 - math.Abs(PieceSize-float64(component))/PieceSize) / n
		s.Balance += e.PenaltyWeight * (1 - math.Abs(PieceSize-float64(total[label]))/PieceSize) / n
	}
	return s
}

// componentSize counts the cells reachable from start through neighbours
// carrying the same label.
func (e *Evaluator) componentSize(labels []int, start int) int {
	count := 0
	bf := traverse.BreadthFirst{
		Traverse: func(edge graph.Edge) bool {
			return labels[edge.From().ID()] == labels[edge.To().ID()]
		},
		Visit: func(graph.Node) { count++ },
	}
	bf.Walk(e.Board.adjacency, simple.Node(start), nil)
	return count
}

// EvaluateAll sets Fitness on every member using up to workers goroutines.
// It returns once all members have been scored. workers <= 0 means GOMAXPROCS.
func (e *Evaluator) EvaluateAll(members []*Chromosome, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := pool.New().WithMaxGoroutines(workers)
	for _, m := range members {
		p.Go(func() {
			m.Fitness = e.Evaluate(m.Bits)
		})
	}
	p.Wait()
}
