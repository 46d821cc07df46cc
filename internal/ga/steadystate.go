package ga

import (
	"fmt"

	"github.com/gprimeca/GenALib/internal/rng"
)

// SteadyState keeps the best KeepFraction of the sorted population and
// refills the rest with offspring of selected parents
type SteadyState struct {
	KeepFraction  float64
	CrossoverRate float64
	MutationRate  float64
	rng           rng.Source
}

// NewSteadyState creates the replacement policy from the given options
func NewSteadyState(opts Options, src rng.Source) *SteadyState {
	return &SteadyState{
		KeepFraction:  opts.KeepFraction,
		CrossoverRate: opts.CrossoverRate,
		MutationRate:  opts.MutationRate,
		rng:           src,
	}
}

// NewSteadyStateGA creates an engine over pop using steady-state replacement
func NewSteadyStateGA(pop *Population, src rng.Source, rec Recorder, opts ...Option) *Engine {
	return NewEngine(pop, NewSteadyState(pop.Options(), src), rec, opts...)
}

// Breed sorts pop and returns the next generation: clones of the leading
// genomes followed by children produced by selection, crossover and mutation
func (s *SteadyState) Breed(pop *Population) ([]Genome, error) {
	size := pop.Len()
	if size == 0 {
		return nil, ErrEmptyPopulation
	}

	// 1. Sort so the genomes to keep lead the population
	pop.Sort()

	// 2. Keep the leading fraction
	kept := int(float64(size) * s.KeepFraction)
	if kept > size {
		kept = size
	}
	next := make([]Genome, 0, size)
	for i := 0; i < kept; i++ {
		next = append(next, pop.At(i).Clone())
	}

	// 3. Fill the remainder with offspring
	for i := 0; i < size-kept; i++ {
		dad, err := pop.Select()
		if err != nil {
			return nil, err
		}
		mom, err := pop.Select()
		if err != nil {
			return nil, err
		}

		var child Genome
		if s.rng.UniformPercentage() < s.CrossoverRate {
			child, err = dad.Crossover(mom)
			if err != nil {
				return nil, fmt.Errorf("crossover: %w", err)
			}
		} else {
			child = dad.Clone()
		}

		if s.rng.UniformPercentage() < s.MutationRate {
			if err := child.Mutate(); err != nil {
				return nil, fmt.Errorf("mutate: %w", err)
			}
		}

		if len(next) < size {
			next = append(next, child)
		}
	}

	return next, nil
}
