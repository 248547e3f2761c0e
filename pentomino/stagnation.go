package pentomino

import "math"

// Stagnation tracks the best fitness of each generation and how long the search
// has gone without improving on it.
type Stagnation struct {
	History      []float64 // Best fitness of every evaluated generation.
	BestFitness  float64   // Highest fitness seen so far.
	LastImproved int       // Generation in which BestFitness was reached.
}

// NewStagnation creates an empty tracker.
func NewStagnation() *Stagnation {
	return &Stagnation{BestFitness: math.Inf(-1)}
}

// Update records best as the best fitness of generation and returns the number
// of generations since the last improvement.
func (s *Stagnation) Update(generation int, best float64) int {
	s.History = append(s.History, best)
	if best > s.BestFitness {
		s.BestFitness = best
		s.LastImproved = generation
	}
	return generation - s.LastImproved
}
