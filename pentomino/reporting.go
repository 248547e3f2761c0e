package pentomino

import (
	"fmt"
	"io"
	"time"
)

// Reporter receives progress events from a Population.
type Reporter interface {
	StartGeneration(generation int)
	PostEvaluate(p *Population, stats FitnessStats, best *Chromosome)
	FoundSolution(p *Population, best *Chromosome)
	EndGeneration(p *Population)
}

// ReporterSet fans events out to every registered reporter.
type ReporterSet struct {
	reporters []Reporter
}

// Add registers a reporter.
func (rs *ReporterSet) Add(r Reporter) {
	rs.reporters = append(rs.reporters, r)
}

// Len returns the number of registered reporters.
func (rs *ReporterSet) Len() int {
	return len(rs.reporters)
}

func (rs *ReporterSet) StartGeneration(generation int) {
	for _, r := range rs.reporters {
		r.StartGeneration(generation)
	}
}

func (rs *ReporterSet) PostEvaluate(p *Population, stats FitnessStats, best *Chromosome) {
	for _, r := range rs.reporters {
		r.PostEvaluate(p, stats, best)
	}
}

func (rs *ReporterSet) FoundSolution(p *Population, best *Chromosome) {
	for _, r := range rs.reporters {
		r.FoundSolution(p, best)
	}
}

func (rs *ReporterSet) EndGeneration(p *Population) {
	for _, r := range rs.reporters {
		r.EndGeneration(p)
	}
}

// StdOutReporter prints generation statistics, and every Interval generations
// the best grid of the generation.
type StdOutReporter struct {
	Out      io.Writer
	Interval int

	generation int
	started    time.Time
}

// NewStdOutReporter creates a reporter writing to out.
func NewStdOutReporter(out io.Writer, interval int) *StdOutReporter {
	return &StdOutReporter{Out: out, Interval: interval}
}

func (r *StdOutReporter) StartGeneration(generation int) {
	r.generation = generation
	r.started = time.Now()
	fmt.Fprintf(r.Out, "****** Running generation %d ******\n", generation)
}

func (r *StdOutReporter) PostEvaluate(p *Population, stats FitnessStats, best *Chromosome) {
	fmt.Fprintf(r.Out, " Average fitness: %.5f stdev: %.5f\n", stats.Mean, stats.Stdev)
	fmt.Fprintf(r.Out, " Best fitness: %.5f (key %d)\n", best.Fitness, best.Key)
	if stagnant := r.generation - p.Stagnation.LastImproved; stagnant > 0 {
		fmt.Fprintf(r.Out, " No improvement for %d generations\n", stagnant)
	}
	if r.Interval > 0 && r.generation%r.Interval == 0 {
		fmt.Fprint(r.Out, Decode(best.Bits, p.Board).Format())
	}
}

func (r *StdOutReporter) FoundSolution(p *Population, best *Chromosome) {
	fmt.Fprintf(r.Out, "\nTiling found in generation %d (key %d):\n", p.Generation, best.Key)
	fmt.Fprint(r.Out, Decode(best.Bits, p.Board).Format())
}

func (r *StdOutReporter) EndGeneration(p *Population) {
	fmt.Fprintf(r.Out, " %d mutations, generation time: %s\n\n", p.Reproduction.MutationCount, time.Since(r.started).Round(time.Millisecond))
}
