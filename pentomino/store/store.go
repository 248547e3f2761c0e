// Package store persists summaries and fitness histories of search runs.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run summarises one finished search run.
type Run struct {
	ID            string    `json:"id"`
	Rows          int       `json:"rows"`
	Cols          int       `json:"cols"`
	PopSize       int       `json:"pop_size"`
	Generations   int       `json:"generations"`
	Seed          uint64    `json:"seed"`
	PenaltyWeight float64   `json:"penalty_weight"`
	MutationRate  float64   `json:"mutation_rate"`
	BestFitness   float64   `json:"best_fitness"`
	Solved        bool      `json:"solved"`
	Grid          []string  `json:"grid"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store defines persistence operations for run records.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []float64) error
	GetFitnessHistory(ctx context.Context, runID string) ([]float64, bool, error)
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// NewStore returns the backend named by kind.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes store when the backend holds resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
