package pentomino

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Population holds the state of a search run.
type Population struct {
	Config       *Config
	Board        Board
	Evaluator    *Evaluator
	Reproduction *Reproduction
	Stagnation   *Stagnation
	Reporters    ReporterSet

	Members        []*Chromosome // Current generation.
	Generation     int           // Number of completed generation transitions.
	BestChromosome *Chromosome   // Best chromosome found so far.
	LastBest       *Chromosome   // Best chromosome of the most recent evaluation.
	Solved         bool          // A valid tiling has been evaluated.
	Seed           uint64        // Seed of the random source.

	source *rand.PCG
	rng    *rand.Rand
}

// Result is what a run reports once it stops.
type Result struct {
	Best        *Chromosome // Fittest member of the final evaluation.
	Score       Score       // Breakdown of Best's fitness.
	Grid        Grid        // Best decoded.
	BestEver    *Chromosome // Fittest chromosome over the whole run.
	Generations int
	Solved      bool
}

// NewPopulation validates config and creates a random first generation.
func NewPopulation(config *Config) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(config.Board.Rows, config.Board.Cols)
	if err != nil {
		return nil, err
	}

	seed := config.Evolution.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	source := rand.NewPCG(seed, seed)
	rng := rand.New(source)

	reproduction := NewReproduction(&config.Evolution)

	p := &Population{
		Config:       config,
		Board:        board,
		Evaluator:    NewEvaluator(board, config.Evolution.PenaltyWeight),
		Reproduction: reproduction,
		Stagnation:   NewStagnation(),
		Members:      reproduction.CreateNewPopulation(board, config.Evolution.PopSize, rng),
		Seed:         seed,
		source:       source,
		rng:          rng,
	}
	return p, nil
}

// RunGeneration evaluates the current members and replaces them with their offspring.
// When StopOnSolution is set and a valid tiling is evaluated, the tiling is returned and
// the population is left as evaluated; otherwise the returned chromosome is nil.
func (p *Population) RunGeneration() (*Chromosome, error) {
	if len(p.Members) == 0 {
		return nil, fmt.Errorf("population is empty in generation %d", p.Generation)
	}
	p.Reporters.StartGeneration(p.Generation)

	// 1. Evaluate fitness. Breeding starts only after every member is scored.
	p.Evaluator.EvaluateAll(p.Members, p.Config.Evolution.Workers)

	// 2. Track best chromosomes.
	best := fittest(p.Members)
	p.LastBest = best
	if p.BestChromosome == nil || best.Fitness > p.BestChromosome.Fitness {
		p.BestChromosome = best
	}
	p.Stagnation.Update(p.Generation, best.Fitness)
	p.Reporters.PostEvaluate(p, ComputeFitnessStats(fitnessesOf(p.Members)), best)

	if p.Evaluator.IsSolution(best.Fitness) {
		if !p.Solved {
			p.Solved = true
			p.Reporters.FoundSolution(p, best)
		}
		if p.Config.Evolution.StopOnSolution {
			return best, nil
		}
	}

	// 3. Reproduce and replace.
	p.Members = p.Reproduction.Reproduce(p.Members, p.Config.Evolution.PopSize, p.rng)
	p.Generation++

	p.Reporters.EndGeneration(p)
	return nil, nil
}

// Run performs generations generation transitions, stopping early only when
// StopOnSolution is set and a tiling is found, or when ctx is cancelled between
// generations.
func (p *Population) Run(ctx context.Context, generations int) (*Result, error) {
	if generations <= 0 {
		return nil, fmt.Errorf("%w: generations must be positive, got %d", ErrConfiguration, generations)
	}
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return p.Result(), err
		}
		winner, err := p.RunGeneration()
		if err != nil {
			return p.Result(), fmt.Errorf("generation %d failed: %w", p.Generation, err)
		}
		if winner != nil {
			break
		}
	}
	return p.Result(), nil
}

// Result reports the current state. Best is nil before the first evaluation.
func (p *Population) Result() *Result {
	r := &Result{
		Best:        p.LastBest,
		BestEver:    p.BestChromosome,
		Generations: p.Generation,
		Solved:      p.Solved,
	}
	if r.Best != nil {
		r.Grid = Decode(r.Best.Bits, p.Board)
		r.Score = p.Evaluator.Score(r.Grid)
	}
	return r
}
