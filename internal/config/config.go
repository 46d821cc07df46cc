package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gprimeca/GenALib/internal/ga"
	"github.com/gprimeca/GenALib/internal/tsp"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	Problem ProblemConfig `yaml:"problem"`
	GA      GAConfig      `yaml:"ga"`
	Logging LogConfig     `yaml:"logging"`
}

// ProblemConfig defines the TSP instance
type ProblemConfig struct {
	Instance string `yaml:"instance"` // YAML waypoint file; empty generates a random instance
	Cities   int    `yaml:"cities"`
	Extent   int    `yaml:"extent"` // random coordinates are drawn from [0, extent)
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population         int     `yaml:"population"`
	Generations        int     `yaml:"generations"`
	TerminateCondition string  `yaml:"terminate_condition"` // upon-generation|upon-convergence
	Scaling            string  `yaml:"scaling"`             // none|rank|difference
	Selection          string  `yaml:"selection"`           // rank|roulette|tournament
	HighLow            string  `yaml:"high_low"`            // low-is-best|high-is-best
	SortOrder          string  `yaml:"sort_order"`          // asc|desc
	SortType           string  `yaml:"sort_type"`           // score|fitness
	Crossover          string  `yaml:"crossover"`           // partially-mapped|order-based
	CrossoverRate      float64 `yaml:"crossover_rate"`
	MutationRate       float64 `yaml:"mutation_rate"`
	ReplacePercentage  float64 `yaml:"replace_percentage"` // fraction kept unchanged each generation
	TournamentSize     int     `yaml:"tournament_size"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	Level           string `yaml:"level"`
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
	BestTourPath    string `yaml:"best_tour_path"`
}

// Default returns the stock configuration
func Default() *Config {
	cfg := &Config{}
	cfg.GA.Generations = 200
	cfg.GA.CrossoverRate = 0.9
	cfg.GA.MutationRate = 0.01
	cfg.GA.ReplacePercentage = 0.50
	cfg.Logging.EveryGenSummary = true
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and returns a Config.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Apply defaults
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Problem.Cities == 0 {
		cfg.Problem.Cities = 200
	}
	if cfg.Problem.Extent == 0 {
		cfg.Problem.Extent = 1000
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 1000
	}
	if cfg.GA.TerminateCondition == "" {
		cfg.GA.TerminateCondition = ga.UponGeneration.String()
	}
	if cfg.GA.Scaling == "" {
		cfg.GA.Scaling = ga.DifferenceScaling.String()
	}
	if cfg.GA.Selection == "" {
		cfg.GA.Selection = ga.RouletteWheel.String()
	}
	if cfg.GA.HighLow == "" {
		cfg.GA.HighLow = ga.LowIsBest.String()
	}
	if cfg.GA.SortOrder == "" {
		cfg.GA.SortOrder = ga.Descending.String()
	}
	if cfg.GA.SortType == "" {
		cfg.GA.SortType = ga.ByFitness.String()
	}
	if cfg.GA.Crossover == "" {
		cfg.GA.Crossover = tsp.PartiallyMapped.String()
	}
	if cfg.GA.TournamentSize == 0 {
		cfg.GA.TournamentSize = 500
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks ranges and enum names
func (c *Config) Validate() error {
	var errs []error

	if c.Problem.Instance == "" && c.Problem.Cities < 1 {
		errs = append(errs, fmt.Errorf("problem.cities must be positive, got %d", c.Problem.Cities))
	}
	if c.Problem.Extent < 1 {
		errs = append(errs, fmt.Errorf("problem.extent must be positive, got %d", c.Problem.Extent))
	}
	if c.GA.Population < 1 {
		errs = append(errs, fmt.Errorf("ga.population must be positive, got %d", c.GA.Population))
	}
	if c.GA.Generations < 0 {
		errs = append(errs, fmt.Errorf("ga.generations must not be negative, got %d", c.GA.Generations))
	}
	if c.GA.TournamentSize < 0 {
		errs = append(errs, fmt.Errorf("ga.tournament_size must not be negative, got %d", c.GA.TournamentSize))
	}
	for name, v := range map[string]float64{
		"ga.crossover_rate":     c.GA.CrossoverRate,
		"ga.mutation_rate":      c.GA.MutationRate,
		"ga.replace_percentage": c.GA.ReplacePercentage,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %g", name, v))
		}
	}

	if _, err := c.Options(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Operator(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Options converts the GA section into engine options
func (c *Config) Options() (ga.Options, error) {
	opts := ga.Options{
		TournamentSize:   c.GA.TournamentSize,
		TotalGenerations: uint(max(c.GA.Generations, 0)),
		KeepFraction:     c.GA.ReplacePercentage,
		CrossoverRate:    c.GA.CrossoverRate,
		MutationRate:     c.GA.MutationRate,
	}

	var err error
	if opts.Terminate, err = ga.ParseTermination(c.GA.TerminateCondition); err != nil {
		return opts, err
	}
	if opts.Scaling, err = ga.ParseScaling(c.GA.Scaling); err != nil {
		return opts, err
	}
	if opts.Selection, err = ga.ParseSelection(c.GA.Selection); err != nil {
		return opts, err
	}
	if opts.Objective, err = ga.ParseObjective(c.GA.HighLow); err != nil {
		return opts, err
	}
	if opts.SortOrder, err = ga.ParseSortOrder(c.GA.SortOrder); err != nil {
		return opts, err
	}
	if opts.SortKey, err = ga.ParseSortKey(c.GA.SortType); err != nil {
		return opts, err
	}
	return opts, nil
}

// Operator returns the configured crossover operator
func (c *Config) Operator() (tsp.Operator, error) {
	return tsp.ParseOperator(c.GA.Crossover)
}
