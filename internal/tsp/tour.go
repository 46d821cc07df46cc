package tsp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gprimeca/GenALib/internal/ga"
	"github.com/gprimeca/GenALib/internal/rng"
)

// Operator selects the crossover used by Tour
type Operator int

const (
	PartiallyMapped Operator = iota
	OrderBased
)

func (o Operator) String() string {
	switch o {
	case PartiallyMapped:
		return "partially-mapped"
	case OrderBased:
		return "order-based"
	default:
		return "unknown"
	}
}

// ParseOperator maps a configuration name to an Operator
func ParseOperator(s string) (Operator, error) {
	for _, o := range []Operator{PartiallyMapped, OrderBased} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown crossover operator %q", s)
}

// Tour is a permutation genome over waypoints, scored by closed-tour length
type Tour struct {
	ga.Base
	waypoints []Waypoint
	op        Operator
	rng       rng.Source
}

// NewTour creates a tour visiting waypoints in the given order.
// The slice is copied.
func NewTour(waypoints []Waypoint, op Operator, src rng.Source) *Tour {
	return &Tour{
		waypoints: slices.Clone(waypoints),
		op:        op,
		rng:       src,
	}
}

// Len returns the number of waypoints
func (t *Tour) Len() int {
	return len(t.waypoints)
}

// Waypoints returns a copy of the visiting order
func (t *Tour) Waypoints() []Waypoint {
	return slices.Clone(t.waypoints)
}

// Operator returns the crossover operator
func (t *Tour) Operator() Operator {
	return t.op
}

// Initialize shuffles the waypoints into a random permutation
func (t *Tour) Initialize() {
	for i := len(t.waypoints) - 1; i > 0; i-- {
		ga.Swap(t.waypoints, i, t.rng.UniformInt(i+1))
	}
}

// Evaluate stores the closed-tour length as the score
func (t *Tour) Evaluate() error {
	if len(t.waypoints) == 0 {
		return ga.ErrEmptyGenome
	}
	t.SetScore(Length(t.waypoints))
	return nil
}

// Length returns the closed-tour length of the given order. Tours of at
// most one waypoint have length 0.
func Length(waypoints []Waypoint) float64 {
	if len(waypoints) < 2 {
		return 0
	}

	var total float64
	for i := 0; i < len(waypoints)-1; i++ {
		total += waypoints[i].Distance(waypoints[i+1])
	}
	// Back to the start
	total += waypoints[len(waypoints)-1].Distance(waypoints[0])
	return total
}

// Mutate swaps two distinct waypoints
func (t *Tour) Mutate() error {
	return ga.SwapMutate(t.waypoints, t.rng)
}

// Crossover combines t with other using the tour's operator
func (t *Tour) Crossover(other ga.Genome) (ga.Genome, error) {
	mate, ok := other.(*Tour)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ga.ErrIncompatibleGenome, other)
	}

	var (
		seq []Waypoint
		err error
	)
	switch t.op {
	case OrderBased:
		seq, err = ga.OrderBased(t.waypoints, mate.waypoints, t.rng)
	default:
		seq, err = ga.PartiallyMapped(t.waypoints, mate.waypoints, t.rng)
	}
	if err != nil {
		return nil, err
	}

	return &Tour{waypoints: seq, op: t.op, rng: t.rng}, nil
}

// Clone returns a deep copy including score and fitness
func (t *Tour) Clone() ga.Genome {
	return t.clone()
}

func (t *Tour) clone() *Tour {
	c := &Tour{
		waypoints: slices.Clone(t.waypoints),
		op:        t.op,
		rng:       t.rng,
	}
	c.SetScore(t.Score())
	c.SetFitness(t.Fitness())
	return c
}

// Permuted returns a clone whose waypoints have been shuffled by Len
// random swaps of distinct positions
func (t *Tour) Permuted() *Tour {
	c := t.clone()
	for i := 0; i < len(c.waypoints); i++ {
		if err := c.Mutate(); err != nil {
			break
		}
	}
	return c
}

func (t *Tour) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Genome Score: %g\n", t.Score())
	fmt.Fprintf(&b, "Genome Fitness: %g\n", t.Fitness())
	for i, w := range t.waypoints {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(w.String())
	}
	return b.String()
}
