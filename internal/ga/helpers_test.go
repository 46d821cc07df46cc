package ga

import "fmt"

// scriptedRNG replays fixed draws. UniformInt reduces each queued value
// modulo max so a script never leaves the requested range.
type scriptedRNG struct {
	ints  []int
	pcts  []float64
	i, p  int
	calls int
}

func (s *scriptedRNG) UniformInt(max int) int {
	s.calls++
	if max <= 0 || len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)]
	s.i++
	return v % max
}

func (s *scriptedRNG) UniformDouble(max int) float64 {
	return 0
}

func (s *scriptedRNG) UniformPercentage() float64 {
	if len(s.pcts) == 0 {
		return 0
	}
	v := s.pcts[s.p%len(s.pcts)]
	s.p++
	return v
}

// fixedGenome scores itself with a preset value
type fixedGenome struct {
	Base
	id    int
	value float64
}

func newFixed(id int, value float64) *fixedGenome {
	g := &fixedGenome{id: id, value: value}
	g.SetScore(value)
	return g
}

func (g *fixedGenome) Initialize() {}

func (g *fixedGenome) Evaluate() error {
	g.SetScore(g.value)
	return nil
}

func (g *fixedGenome) Mutate() error { return nil }

func (g *fixedGenome) Crossover(other Genome) (Genome, error) {
	return g.Clone(), nil
}

func (g *fixedGenome) Clone() Genome {
	c := &fixedGenome{id: g.id, value: g.value}
	c.SetScore(g.Score())
	c.SetFitness(g.Fitness())
	return c
}

func (g *fixedGenome) String() string {
	return fmt.Sprintf("fixed#%d score=%g fitness=%g", g.id, g.Score(), g.Fitness())
}

func fixedPopulation(opts Options, src *scriptedRNG, values ...float64) *Population {
	gs := make([]Genome, len(values))
	for i, v := range values {
		gs[i] = newFixed(i, v)
	}
	return NewPopulation(opts, src, gs...)
}

func ids(gs []Genome) []int {
	out := make([]int, len(gs))
	for i, g := range gs {
		out[i] = g.(*fixedGenome).id
	}
	return out
}
