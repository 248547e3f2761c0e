package pentomino

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
	"os"
)

// PopulationSaveData holds the parts of a Population needed to resume a run.
// The Config is not saved; the caller supplies it again on load.
type PopulationSaveData struct {
	Rows           int
	Cols           int
	Members        []*Chromosome
	Generation     int
	BestChromosome *Chromosome
	LastBest       *Chromosome
	Solved         bool
	Seed           uint64
	NextKey        int
	Ancestors      map[int][]int
	Stagnation     *Stagnation
	RandState      []byte // Marshaled PCG state.
}

// SaveCheckpoint writes the population to filePath as gzip-compressed gob.
func (p *Population) SaveCheckpoint(filePath string) error {
	randState, err := p.source.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to marshal random state: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)

	saveData := PopulationSaveData{
		Rows:           p.Board.Rows,
		Cols:           p.Board.Cols,
		Members:        p.Members,
		Generation:     p.Generation,
		BestChromosome: p.BestChromosome,
		LastBest:       p.LastBest,
		Solved:         p.Solved,
		Seed:           p.Seed,
		NextKey:        p.Reproduction.NextKey,
		Ancestors:      p.Reproduction.Ancestors,
		Stagnation:     p.Stagnation,
		RandState:      randState,
	}
	if err := gob.NewEncoder(gzWriter).Encode(saveData); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode population data: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush checkpoint '%s': %w", filePath, err)
	}
	return nil
}

// LoadCheckpoint restores a Population saved by SaveCheckpoint. config must
// describe the same board; evolution parameters may differ from the saved run.
func LoadCheckpoint(checkpointPath string, config *Config) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(checkpointPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", checkpointPath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	saveData := PopulationSaveData{}
	if err := gob.NewDecoder(gzReader).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode population data from checkpoint: %w", err)
	}

	if saveData.Rows != config.Board.Rows || saveData.Cols != config.Board.Cols {
		return nil, fmt.Errorf("%w: checkpoint board %dx%d does not match configured board %dx%d",
			ErrConfiguration, saveData.Rows, saveData.Cols, config.Board.Rows, config.Board.Cols)
	}
	board, err := NewBoard(config.Board.Rows, config.Board.Cols)
	if err != nil {
		return nil, err
	}

	source := &rand.PCG{}
	if err := source.UnmarshalBinary(saveData.RandState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal random state: %w", err)
	}

	reproduction := NewReproduction(&config.Evolution)
	reproduction.NextKey = saveData.NextKey
	if saveData.Ancestors != nil {
		reproduction.Ancestors = saveData.Ancestors
	}
	stagnation := saveData.Stagnation
	if stagnation == nil {
		stagnation = NewStagnation()
	}

	p := &Population{
		Config:         config,
		Board:          board,
		Evaluator:      NewEvaluator(board, config.Evolution.PenaltyWeight),
		Reproduction:   reproduction,
		Stagnation:     stagnation,
		Members:        saveData.Members,
		Generation:     saveData.Generation,
		BestChromosome: saveData.BestChromosome,
		LastBest:       saveData.LastBest,
		Solved:         saveData.Solved,
		Seed:           saveData.Seed,
		source:         source,
		rng:            rand.New(source),
	}
	return p, nil
}
