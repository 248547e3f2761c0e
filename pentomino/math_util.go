package pentomino

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// FitnessStats summarises the fitness values of one generation.
type FitnessStats struct {
	Mean  float64
	Stdev float64
	Best  float64
	Worst float64
}

// ComputeFitnessStats returns mean, sample standard deviation, best and worst of values.
func ComputeFitnessStats(values []float64) FitnessStats {
	if len(values) == 0 {
		return FitnessStats{}
	}
	fs := FitnessStats{Best: math.Inf(-1), Worst: math.Inf(1)}
	if len(values) > 1 {
		fs.Mean, fs.Stdev = stat.MeanStdDev(values, nil)
	} else {
		fs.Mean = values[0]
	}
	for _, v := range values {
		fs.Best = math.Max(fs.Best, v)
		fs.Worst = math.Min(fs.Worst, v)
	}
	return fs
}

// fitnessesOf collects the Fitness field of every member.
func fitnessesOf(members []*Chromosome) []float64 {
	out := make([]float64, len(members))
	for i, m := range members {
		out[i] = m.Fitness
	}
	return out
}

// fittest returns the member with the highest fitness; ties go to the earliest.
func fittest(members []*Chromosome) *Chromosome {
	var best *Chromosome
	for _, m := range members {
		if best == nil || m.Fitness > best.Fitness {
			best = m
		}
	}
	return best
}

// Diversity returns the mean pairwise bit distance between members, sampling at
// most sampleSize members from the front of the slice.
func Diversity(members []*Chromosome, sampleSize int) float64 {
	n := min(len(members), sampleSize)
	if n < 2 {
		return 0
	}
	var sum float64
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += members[i].Distance(members[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}
