package rng

import (
	"math/rand"
	"time"
)

// Source is the random provider consumed by the genetic algorithm
type Source interface {
	// UniformInt returns an int in [0, max). A non-positive max yields 0.
	UniformInt(max int) int
	// UniformDouble returns a value in [0, max) with three-decimal granularity
	UniformDouble(max int) float64
	// UniformPercentage returns a value in [0, 1) with four-decimal granularity
	UniformPercentage() float64
}

// Rand implements Source on top of math/rand
type Rand struct {
	r *rand.Rand
}

// New creates a seeded random provider. A zero seed uses the current time.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// UniformInt returns an int in [0, max)
func (g *Rand) UniformInt(max int) int {
	if max <= 0 {
		return 0
	}
	return g.r.Intn(max)
}

// UniformDouble returns a value in [0, max) rounded down to 0.001
func (g *Rand) UniformDouble(max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(g.r.Intn(max*1000)) / 1000.0
}

// UniformPercentage returns a value in [0, 1) rounded down to 0.0001
func (g *Rand) UniformPercentage() float64 {
	return float64(g.r.Intn(10000)) / 10000.0
}
