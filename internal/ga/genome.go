package ga

import "errors"

var (
	// ErrEmptyGenome is returned when an operation needs at least one gene
	ErrEmptyGenome = errors.New("ga: empty genome")
	// ErrLengthMismatch is returned when crossover parents differ in length
	ErrLengthMismatch = errors.New("ga: parent length mismatch")
	// ErrIncompatibleGenome is returned when crossover parents have different representations
	ErrIncompatibleGenome = errors.New("ga: incompatible genome types")
	// ErrEmptyPopulation is returned when selecting or breeding from an empty population
	ErrEmptyPopulation = errors.New("ga: empty population")
)

// Genome is one candidate solution. Any representation that satisfies this
// contract can be evolved by the Engine.
type Genome interface {
	// Initialize fills the representation from the problem parameters
	Initialize()
	// Evaluate computes and stores the score from the current representation
	Evaluate() error
	// Mutate applies a small representation-preserving change in place
	Mutate() error
	// Crossover returns a new child built from the receiver and other.
	// Neither parent is modified.
	Crossover(other Genome) (Genome, error)
	// Clone returns an independently owned deep copy, score and fitness included
	Clone() Genome

	Score() float64
	Fitness() float64
	SetScore(score float64)
	SetFitness(fitness float64)

	String() string
}

// Base carries the score and fitness fields shared by every genome type.
// Embed it to get the accessor half of Genome.
type Base struct {
	score   float64
	fitness float64
}

// Score returns the raw objective value
func (b *Base) Score() float64 { return b.score }

// Fitness returns the selection weight set by the last scaling pass
func (b *Base) Fitness() float64 { return b.fitness }

// SetScore stores the raw objective value
func (b *Base) SetScore(score float64) { b.score = score }

// SetFitness stores the selection weight
func (b *Base) SetFitness(fitness float64) { b.fitness = fitness }
