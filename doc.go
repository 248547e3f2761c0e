// Package pentomino searches for tilings of a rectangular board by five-cell pieces
// (pentominoes) with a genetic algorithm instead of exact backtracking.
//
// A candidate tiling is encoded as a bit string holding one fixed-width piece label per
// cell. Fitness rewards labels whose connected region has exactly five cells and labels
// used by exactly five cells overall; a valid tiling scores 1 + penalty weight. The search
// is not guaranteed to find a tiling.
//
// Basic usage:
//
//	cfg := pentomino.DefaultConfig()
//	cfg.Board.Rows, cfg.Board.Cols = 3, 5
//	cfg.Evolution.PopSize = 200
//
//	pop, err := pentomino.NewPopulation(cfg)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	result, err := pop.Run(context.Background(), 300)
//	if err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//	fmt.Printf("Fitness %.4f\n%s", result.Best.Fitness, result.Grid)
package pentomino
