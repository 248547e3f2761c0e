package pentomino

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// ErrConfiguration is wrapped by every configuration validation failure.
var ErrConfiguration = errors.New("configuration error")

// Config stores the parameters of a search run.
type Config struct {
	Board     BoardConfig     `toml:"board"`
	Evolution EvolutionConfig `toml:"evolution"`
	Report    ReportConfig    `toml:"report"`
}

// BoardConfig holds the board dimensions.
type BoardConfig struct {
	Rows int `ini:"rows" toml:"rows"`
	Cols int `ini:"cols" toml:"cols"`
}

// EvolutionConfig holds parameters of the genetic search.
type EvolutionConfig struct {
	PopSize        int     `ini:"pop_size" toml:"pop_size"`
	MaxGenerations int     `ini:"max_generations" toml:"max_generations"`
	PenaltyWeight  float64 `ini:"penalty_weight" toml:"penalty_weight"`
	MutationRate   float64 `ini:"mutation_rate" toml:"mutation_rate"` // Per individual, not per bit.
	FitnessFloor   float64 `ini:"fitness_floor" toml:"fitness_floor"` // Selection weights are clamped to this.
	Elitism        int     `ini:"elitism" toml:"elitism"`
	StopOnSolution bool    `ini:"stop_on_solution" toml:"stop_on_solution"`
	Seed           uint64  `ini:"seed" toml:"seed"`       // 0 picks a random seed.
	Workers        int     `ini:"workers" toml:"workers"` // 0 means GOMAXPROCS.
}

// ReportConfig controls progress output.
type ReportConfig struct {
	Interval int  `ini:"interval" toml:"interval"` // Print the best grid every Interval generations; 0 disables.
	Quiet    bool `ini:"quiet" toml:"quiet"`
}

// DefaultConfig returns the parameters of the classic 10x3 run.
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			Rows: 3,
			Cols: 10,
		},
		Evolution: EvolutionConfig{
			PopSize:        500,
			MaxGenerations: 300,
			PenaltyWeight:  0.2,
			MutationRate:   0.05,
		},
		Report: ReportConfig{
			Interval: 10,
		},
	}
}

// LoadConfig loads a configuration file on top of DefaultConfig. Files ending in
// .toml are read as TOML, anything else as INI. Keys missing from the file keep
// their default values.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		md, err := toml.DecodeFile(filePath, config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key '%s' in '%s'", ErrConfiguration, undecoded[0], filePath)
		}
	} else {
		cfg, err := ini.LoadSources(ini.LoadOptions{
			AllowBooleanKeys: true, // A bare "stop_on_solution" line means true.
		}, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
		}

		if err := cfg.Section("Board").MapTo(&config.Board); err != nil {
			return nil, fmt.Errorf("failed to map [Board] section: %w", err)
		}
		if err := cfg.Section("Evolution").MapTo(&config.Evolution); err != nil {
			return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
		}
		if err := cfg.Section("Report").MapTo(&config.Report); err != nil {
			return nil, fmt.Errorf("failed to map [Report] section: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration. Every returned error wraps ErrConfiguration.
func (c *Config) Validate() error {
	if _, err := NewBoard(c.Board.Rows, c.Board.Cols); err != nil {
		return err
	}

	ev := c.Evolution
	if ev.PopSize <= 0 {
		return fmt.Errorf("%w: pop_size must be positive", ErrConfiguration)
	}
	if ev.MaxGenerations <= 0 {
		return fmt.Errorf("%w: max_generations must be positive", ErrConfiguration)
	}
	if ev.PenaltyWeight < 0 {
		return fmt.Errorf("%w: penalty_weight cannot be negative", ErrConfiguration)
	}
	if ev.MutationRate < 0 || ev.MutationRate > 1 {
		return fmt.Errorf("%w: mutation_rate must be between 0 and 1", ErrConfiguration)
	}
	if ev.FitnessFloor < 0 {
		return fmt.Errorf("%w: fitness_floor cannot be negative", ErrConfiguration)
	}
	if ev.Elitism < 0 || ev.Elitism >= ev.PopSize {
		return fmt.Errorf("%w: elitism must be in [0, pop_size)", ErrConfiguration)
	}
	if ev.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative", ErrConfiguration)
	}
	if c.Report.Interval < 0 {
		return fmt.Errorf("%w: report interval cannot be negative", ErrConfiguration)
	}
	return nil
}
