package ga

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Recorder collects statistics across generations
type Recorder interface {
	// Init is called once with the initialized first population
	Init(pop *Population)
	// Update is called once per generation before it is replaced
	Update(pop *Population)
}

// Observer receives generation snapshots and the final statistics
type Observer interface {
	Generation(generation uint, pop *Population)
	Finished(generation uint, rec Recorder)
}

// Policy builds the genome collection of the next generation
type Policy interface {
	Breed(pop *Population) ([]Genome, error)
}

// ConvergenceFunc reports whether the population has converged
type ConvergenceFunc func(generation uint, pop *Population) bool

// Engine drives the generation loop over one population
type Engine struct {
	pop        *Population
	policy     Policy
	recorder   Recorder
	observer   Observer
	logger     *slog.Logger
	converged  ConvergenceFunc
	generation uint
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver sets the receiver of per-generation snapshots
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithConvergence sets the predicate used by the upon-convergence
// termination condition
func WithConvergence(fn ConvergenceFunc) Option {
	return func(e *Engine) { e.converged = fn }
}

// NewEngine creates an engine that owns pop and rec
func NewEngine(pop *Population, policy Policy, rec Recorder, opts ...Option) *Engine {
	e := &Engine{
		pop:      pop,
		policy:   policy,
		recorder: rec,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.recorder == nil {
		e.recorder = nopRecorder{}
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	return e
}

// Population returns the population owned by the engine
func (e *Engine) Population() *Population {
	return e.pop
}

// Recorder returns the statistics collaborator
func (e *Engine) Recorder() Recorder {
	return e.recorder
}

// Generation returns the number of generations produced so far
func (e *Engine) Generation() uint {
	return e.generation
}

// Init evaluates scores, refreshes best and worst, and scales fitness
func (e *Engine) Init() error {
	if err := e.pop.Initialize(); err != nil {
		return err
	}
	e.pop.Scale()
	return nil
}

// IsFinished checks the configured termination condition
func (e *Engine) IsFinished() bool {
	opts := e.pop.Options()
	switch opts.Terminate {
	case UponConvergence:
		// Without a predicate convergence is reported immediately
		if e.converged == nil {
			return true
		}
		return e.converged(e.generation, e.pop)
	default:
		return e.generation >= opts.TotalGenerations
	}
}

// NextGeneration replaces the population with the policy's offspring and
// re-initializes it
func (e *Engine) NextGeneration() error {
	next, err := e.policy.Breed(e.pop)
	if err != nil {
		return fmt.Errorf("breed generation %d: %w", e.generation+1, err)
	}

	e.generation++
	e.pop.SetGenomes(next)
	return e.Init()
}

// Evolve runs generations until the termination condition holds or ctx is
// done
func (e *Engine) Evolve(ctx context.Context) error {
	if e.pop.Len() == 0 {
		return ErrEmptyPopulation
	}

	// Scores and best/worst must exist before the recorder sees the population
	if err := e.Init(); err != nil {
		return err
	}
	e.recorder.Init(e.pop)

	opts := e.pop.Options()
	e.logger.Info("evolution started",
		"population", e.pop.Len(),
		"generations", opts.TotalGenerations,
		"terminate", opts.Terminate.String(),
		"scaling", opts.Scaling.String(),
		"selection", opts.Selection.String(),
	)

	for !e.IsFinished() {
		if err := ctx.Err(); err != nil {
			e.logger.Warn("evolution cancelled", "generation", e.generation, "error", err)
			return err
		}

		if err := e.Init(); err != nil {
			return err
		}

		e.observer.Generation(e.generation, e.pop)
		e.recorder.Update(e.pop)

		e.logger.Debug("generation",
			"generation", e.generation,
			"best_score", e.pop.Best().Score(),
			"average_score", e.pop.AverageScore(),
		)

		if err := e.NextGeneration(); err != nil {
			return err
		}
	}

	e.observer.Finished(e.generation, e.recorder)
	if best := e.pop.Best(); best != nil {
		e.logger.Info("evolution finished", "generation", e.generation, "best_score", best.Score())
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Init(*Population)   {}
func (nopRecorder) Update(*Population) {}

type nopObserver struct{}

func (nopObserver) Generation(uint, *Population) {}
func (nopObserver) Finished(uint, Recorder)      {}
