package ga

import "fmt"

// Termination selects the predicate used by Engine.IsFinished
type Termination int

const (
	UponGeneration Termination = iota
	UponConvergence
)

func (t Termination) String() string {
	switch t {
	case UponGeneration:
		return "upon-generation"
	case UponConvergence:
		return "upon-convergence"
	default:
		return "unknown"
	}
}

// Scaling selects how fitness is derived from score
type Scaling int

const (
	NoScaling Scaling = iota
	RankScaling
	DifferenceScaling
)

func (s Scaling) String() string {
	switch s {
	case NoScaling:
		return "none"
	case RankScaling:
		return "rank"
	case DifferenceScaling:
		return "difference"
	default:
		return "unknown"
	}
}

// Selection selects the parent selection strategy
type Selection int

const (
	RankSelection Selection = iota
	RouletteWheel
	Tournament
)

func (s Selection) String() string {
	switch s {
	case RankSelection:
		return "rank"
	case RouletteWheel:
		return "roulette"
	case Tournament:
		return "tournament"
	default:
		return "unknown"
	}
}

// Objective tells whether lower or higher scores are better
type Objective int

const (
	LowIsBest Objective = iota
	HighIsBest
)

func (o Objective) String() string {
	switch o {
	case LowIsBest:
		return "low-is-best"
	case HighIsBest:
		return "high-is-best"
	default:
		return "unknown"
	}
}

// SortOrder is the direction of Population.Sort
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "unknown"
	}
}

// SortKey is the genome value Population.Sort orders by
type SortKey int

const (
	ByScore SortKey = iota
	ByFitness
)

func (k SortKey) String() string {
	switch k {
	case ByScore:
		return "score"
	case ByFitness:
		return "fitness"
	default:
		return "unknown"
	}
}

// Options holds every tunable of the population and the engine
type Options struct {
	Terminate      Termination
	Scaling        Scaling
	Selection      Selection
	Objective      Objective
	SortOrder      SortOrder
	SortKey        SortKey
	TournamentSize int

	TotalGenerations uint
	// KeepFraction is the share of the sorted population cloned unchanged
	// into the next generation
	KeepFraction  float64
	CrossoverRate float64
	MutationRate  float64
}

// DefaultOptions returns the stock configuration: difference scaling,
// roulette selection, lower score wins, best-fitness-first sort.
func DefaultOptions() Options {
	return Options{
		Terminate:        UponGeneration,
		Scaling:          DifferenceScaling,
		Selection:        RouletteWheel,
		Objective:        LowIsBest,
		SortOrder:        Descending,
		SortKey:          ByFitness,
		TournamentSize:   500,
		TotalGenerations: 200,
		KeepFraction:     0.50,
		CrossoverRate:    0.9,
		MutationRate:     0.01,
	}
}

// ParseTermination maps a configuration name to a Termination
func ParseTermination(s string) (Termination, error) {
	for _, t := range []Termination{UponGeneration, UponConvergence} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown terminate condition %q", s)
}

// ParseScaling maps a configuration name to a Scaling
func ParseScaling(s string) (Scaling, error) {
	for _, v := range []Scaling{NoScaling, RankScaling, DifferenceScaling} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown scaling scheme %q", s)
}

// ParseSelection maps a configuration name to a Selection
func ParseSelection(s string) (Selection, error) {
	for _, v := range []Selection{RankSelection, RouletteWheel, Tournament} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown selection scheme %q", s)
}

// ParseObjective maps a configuration name to an Objective
func ParseObjective(s string) (Objective, error) {
	for _, v := range []Objective{LowIsBest, HighIsBest} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown objective %q", s)
}

// ParseSortOrder maps a configuration name to a SortOrder
func ParseSortOrder(s string) (SortOrder, error) {
	for _, v := range []SortOrder{Ascending, Descending} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown sort order %q", s)
}

// ParseSortKey maps a configuration name to a SortKey
func ParseSortKey(s string) (SortKey, error) {
	for _, v := range []SortKey{ByScore, ByFitness} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown sort type %q", s)
}
