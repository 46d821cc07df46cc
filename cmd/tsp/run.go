package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gprimeca/GenALib/internal/config"
	"github.com/gprimeca/GenALib/internal/ga"
	"github.com/gprimeca/GenALib/internal/logging"
	"github.com/gprimeca/GenALib/internal/rng"
	"github.com/gprimeca/GenALib/internal/stats"
	"github.com/gprimeca/GenALib/internal/tsp"
)

var runFlags struct {
	instance      string
	cities        int
	popSize       int
	generations   int
	seed          int64
	scaling       string
	selection     string
	crossover     string
	crossoverRate float64
	mutationRate  float64
	csvPath       string
	jsonPath      string
	bestPath      string
	quiet         bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the genetic algorithm on a TSP instance",
	Long: `Builds an instance (random or loaded from YAML), seeds a population of
permuted tours and evolves it. Flags override values from --config.`,
	RunE: runEvolution,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.instance, "instance", "", "YAML waypoint file (default: random instance)")
	f.IntVar(&runFlags.cities, "cities", 0, "Number of random waypoints")
	f.IntVar(&runFlags.popSize, "pop", 0, "Population size")
	f.IntVar(&runFlags.generations, "generations", 0, "Number of generations")
	f.Int64Var(&runFlags.seed, "seed", 0, "Random seed")
	f.StringVar(&runFlags.scaling, "scaling", "", "Scaling scheme: none, rank, difference")
	f.StringVar(&runFlags.selection, "selection", "", "Selection scheme: rank, roulette, tournament")
	f.StringVar(&runFlags.crossover, "crossover", "", "Crossover operator: partially-mapped, order-based")
	f.Float64Var(&runFlags.crossoverRate, "crossover-rate", -1, "Crossover probability")
	f.Float64Var(&runFlags.mutationRate, "mutation-rate", -1, "Mutation probability")
	f.StringVar(&runFlags.csvPath, "csv", "", "CSV generation log path")
	f.StringVar(&runFlags.jsonPath, "jsonl", "", "JSONL generation log path")
	f.StringVar(&runFlags.bestPath, "best-out", "", "Write the best tour as JSON to this path")
	f.BoolVar(&runFlags.quiet, "quiet", false, "Suppress per-generation console lines")

	rootCmd.AddCommand(runCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	f := cmd.Flags()
	if f.Changed("instance") {
		cfg.Problem.Instance = runFlags.instance
	}
	if f.Changed("cities") {
		cfg.Problem.Cities = runFlags.cities
	}
	if f.Changed("pop") {
		cfg.GA.Population = runFlags.popSize
	}
	if f.Changed("generations") {
		cfg.GA.Generations = runFlags.generations
	}
	if f.Changed("seed") {
		cfg.Seed = runFlags.seed
	}
	if f.Changed("scaling") {
		cfg.GA.Scaling = runFlags.scaling
	}
	if f.Changed("selection") {
		cfg.GA.Selection = runFlags.selection
	}
	if f.Changed("crossover") {
		cfg.GA.Crossover = runFlags.crossover
	}
	if f.Changed("crossover-rate") {
		cfg.GA.CrossoverRate = runFlags.crossoverRate
	}
	if f.Changed("mutation-rate") {
		cfg.GA.MutationRate = runFlags.mutationRate
	}
	if f.Changed("csv") {
		cfg.Logging.CSVPath = runFlags.csvPath
	}
	if f.Changed("jsonl") {
		cfg.Logging.JSONPath = runFlags.jsonPath
	}
	if f.Changed("best-out") {
		cfg.Logging.BestTourPath = runFlags.bestPath
	}
	if runFlags.quiet {
		cfg.Logging.EveryGenSummary = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runEvolution(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-level") {
		logger = newLogger(cfg.Logging.Level)
	}
	opts, _ := cfg.Options()
	op, _ := cfg.Operator()

	runID := uuid.New().String()
	log := logger.With("run_id", runID)
	src := rng.New(cfg.Seed)

	// Build the problem instance
	var inst *tsp.Instance
	if cfg.Problem.Instance != "" {
		if inst, err = tsp.LoadInstance(cfg.Problem.Instance); err != nil {
			return err
		}
	} else {
		inst = tsp.RandomInstance(cfg.Problem.Cities, cfg.Problem.Extent, src)
	}
	log.Info("Loaded instance", "name", inst.Name, "waypoints", len(inst.Waypoints))

	// Seed the population with permutations of the instance order
	base := inst.Tour(op, src)
	base.Initialize()
	pop := tsp.SeedPopulation(base, cfg.GA.Population, opts, src)

	runLog, err := logging.NewLogger(runID, cfg.Logging.CSVPath, cfg.Logging.JSONPath,
		cmd.OutOrStdout(), cfg.Logging.EveryGenSummary)
	if err != nil {
		return err
	}
	if err := runLog.Init(); err != nil {
		return err
	}
	defer runLog.Close()

	recorder := stats.New()
	engine := ga.NewSteadyStateGA(pop, src, recorder,
		ga.WithObserver(runLog),
		ga.WithLogger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := engine.Evolve(ctx); err != nil {
		return fmt.Errorf("evolution failed: %w", err)
	}
	if err := runLog.Err(); err != nil {
		log.Warn("Generation log incomplete", "error", err)
	}

	if cfg.Logging.BestTourPath != "" {
		best, ok := recorder.BestOf(engine.Population()).(*tsp.Tour)
		if ok {
			if err := logging.SaveBestTour(cfg.Logging.BestTourPath, runID, best, engine.Generation()); err != nil {
				return fmt.Errorf("failed to save best tour: %w", err)
			}
			log.Info("Wrote best tour", "path", cfg.Logging.BestTourPath, "score", best.Score())
		}
	}

	return nil
}
