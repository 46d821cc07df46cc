package ga

import (
	"fmt"
	"strings"

	"github.com/gprimeca/GenALib/internal/rng"
)

// Population owns an ordered collection of genomes and tracks the current
// best and worst of them
type Population struct {
	genomes []Genome
	best    Genome
	worst   Genome
	opts    Options
	src     rng.Source
}

// NewPopulation creates a population from the given genomes.
// The population takes ownership of them.
func NewPopulation(opts Options, src rng.Source, genomes ...Genome) *Population {
	p := &Population{
		genomes: append([]Genome(nil), genomes...),
		opts:    opts,
		src:     src,
	}
	p.UpdateBestWorst()
	return p
}

// Len returns the population size
func (p *Population) Len() int {
	return len(p.genomes)
}

// At returns the genome at index i
func (p *Population) At(i int) Genome {
	return p.genomes[i]
}

// Genomes returns the underlying genome slice in population order
func (p *Population) Genomes() []Genome {
	return p.genomes
}

// Options returns the configuration the population was built with
func (p *Population) Options() Options {
	return p.opts
}

// Best returns the best genome by score, or nil for an empty population
func (p *Population) Best() Genome {
	return p.best
}

// Worst returns the worst genome by score, or nil for an empty population
func (p *Population) Worst() Genome {
	return p.worst
}

// Add appends a genome and takes ownership of it
func (p *Population) Add(g Genome) {
	p.genomes = append(p.genomes, g)
	p.UpdateBestWorst()
}

// SetGenomes discards the current genomes and takes ownership of gs
func (p *Population) SetGenomes(gs []Genome) {
	for i := range p.genomes {
		p.genomes[i] = nil
	}
	p.genomes = gs
	p.UpdateBestWorst()
}

// Clone returns a deep copy of the population and its genomes
func (p *Population) Clone() *Population {
	c := &Population{
		genomes: make([]Genome, len(p.genomes)),
		opts:    p.opts,
		src:     p.src,
	}
	for i, g := range p.genomes {
		c.genomes[i] = g.Clone()
	}
	c.UpdateBestWorst()
	return c
}

// Initialize evaluates every genome and refreshes best and worst
func (p *Population) Initialize() error {
	if err := p.EvaluateScores(); err != nil {
		return err
	}
	p.UpdateBestWorst()
	return nil
}

// EvaluateScores calls Evaluate on every genome
func (p *Population) EvaluateScores() error {
	for i, g := range p.genomes {
		if err := g.Evaluate(); err != nil {
			return fmt.Errorf("evaluate genome %d: %w", i, err)
		}
	}
	return nil
}

// UpdateBestWorst recomputes the best and worst genome in a single pass.
// Ties keep the earliest genome.
func (p *Population) UpdateBestWorst() {
	if len(p.genomes) == 0 {
		p.best, p.worst = nil, nil
		return
	}

	best, worst := p.genomes[0], p.genomes[0]
	for _, g := range p.genomes[1:] {
		if p.opts.Objective == HighIsBest {
			if g.Score() > best.Score() {
				best = g
			}
			if g.Score() < worst.Score() {
				worst = g
			}
		} else {
			if g.Score() < best.Score() {
				best = g
			}
			if g.Score() > worst.Score() {
				worst = g
			}
		}
	}
	p.best, p.worst = best, worst
}

// TotalScore sums all genome scores
func (p *Population) TotalScore() float64 {
	var total float64
	for _, g := range p.genomes {
		total += g.Score()
	}
	return total
}

// TotalFitness sums all genome fitnesses
func (p *Population) TotalFitness() float64 {
	var total float64
	for _, g := range p.genomes {
		total += g.Fitness()
	}
	return total
}

// AverageScore returns the mean score, or 0 for an empty population
func (p *Population) AverageScore() float64 {
	if len(p.genomes) == 0 {
		return 0
	}
	return p.TotalScore() / float64(len(p.genomes))
}

// AverageFitness returns the mean fitness, or 0 for an empty population
func (p *Population) AverageFitness() float64 {
	if len(p.genomes) == 0 {
		return 0
	}
	return p.TotalFitness() / float64(len(p.genomes))
}

// MaxScore returns the largest score, or 0 for an empty population
func (p *Population) MaxScore() float64 {
	if len(p.genomes) == 0 {
		return 0
	}
	max := p.genomes[0].Score()
	for _, g := range p.genomes[1:] {
		if g.Score() > max {
			max = g.Score()
		}
	}
	return max
}

// MinScore returns the smallest score, or 0 for an empty population
func (p *Population) MinScore() float64 {
	if len(p.genomes) == 0 {
		return 0
	}
	min := p.genomes[0].Score()
	for _, g := range p.genomes[1:] {
		if g.Score() < min {
			min = g.Score()
		}
	}
	return min
}

// Scores returns the genome scores in population order
func (p *Population) Scores() []float64 {
	scores := make([]float64, len(p.genomes))
	for i, g := range p.genomes {
		scores[i] = g.Score()
	}
	return scores
}

func (p *Population) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Score: %g\n", p.TotalScore())
	fmt.Fprintf(&b, "Total Fitness: %g\n", p.TotalFitness())
	fmt.Fprintf(&b, "Average Score: %g\n", p.AverageScore())
	fmt.Fprintf(&b, "Average Fitness: %g\n", p.AverageFitness())
	b.WriteString(">> Best Genome <<\n")
	if p.best != nil {
		b.WriteString(p.best.String())
		b.WriteString("\n")
	}
	b.WriteString(">> Worst Genome <<\n")
	if p.worst != nil {
		b.WriteString(p.worst.String())
		b.WriteString("\n")
	}
	return b.String()
}
