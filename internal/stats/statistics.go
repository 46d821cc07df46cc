package stats

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"

	"github.com/gprimeca/GenALib/internal/ga"
)

// Snapshot summarizes the scores and fitnesses of one population
type Snapshot struct {
	Size           int     `json:"size"`
	BestScore      float64 `json:"best_score"`
	WorstScore     float64 `json:"worst_score"`
	TotalScore     float64 `json:"total_score"`
	AverageScore   float64 `json:"average_score"`
	StdDevScore    float64 `json:"stddev_score"`
	TotalFitness   float64 `json:"total_fitness"`
	AverageFitness float64 `json:"average_fitness"`
}

// Summarize computes a Snapshot of pop
func Summarize(pop *ga.Population) Snapshot {
	s := Snapshot{
		Size:           pop.Len(),
		TotalScore:     pop.TotalScore(),
		AverageScore:   pop.AverageScore(),
		TotalFitness:   pop.TotalFitness(),
		AverageFitness: pop.AverageFitness(),
	}
	if best := pop.Best(); best != nil {
		s.BestScore = best.Score()
	}
	if worst := pop.Worst(); worst != nil {
		s.WorstScore = worst.Score()
	}
	if pop.Len() > 1 {
		s.StdDevScore = stat.PopStdDev(pop.Scores(), nil)
	}
	return s
}

// Statistics tracks the first, current, best and worst populations and the
// best and worst genomes seen over a run. Every retained population and
// genome is a deep copy.
type Statistics struct {
	objective  ga.Objective
	generation int

	current    *ga.Population
	first      *ga.Population
	bestPop    *ga.Population
	worstPop   *ga.Population
	bestEver   ga.Genome
	worstEver  ga.Genome
	scoreTrace []float64
}

// New creates an empty recorder
func New() *Statistics {
	return &Statistics{}
}

// Init records pop as the first, best and worst population
func (s *Statistics) Init(pop *ga.Population) {
	s.objective = pop.Options().Objective
	s.generation = 0
	s.current = pop
	s.first = pop.Clone()
	s.bestPop = pop.Clone()
	s.worstPop = pop.Clone()
	s.bestEver = cloneOrNil(pop.Best())
	s.worstEver = cloneOrNil(pop.Worst())
	s.scoreTrace = s.scoreTrace[:0]
	if best := pop.Best(); best != nil {
		s.scoreTrace = append(s.scoreTrace, best.Score())
	}
}

// Update folds one more generation into the records.
// Populations compare by total score, genomes by score.
func (s *Statistics) Update(pop *ga.Population) {
	if s.first == nil {
		s.Init(pop)
		s.generation++
		return
	}
	s.generation++
	s.current = pop

	if best := pop.Best(); best != nil {
		s.scoreTrace = append(s.scoreTrace, best.Score())
	}

	if s.better(pop.TotalScore(), s.bestPop.TotalScore()) {
		s.bestPop = pop.Clone()
	}
	if s.better(s.worstPop.TotalScore(), pop.TotalScore()) {
		s.worstPop = pop.Clone()
	}

	if best := pop.Best(); best != nil && (s.bestEver == nil || s.better(best.Score(), s.bestEver.Score())) {
		s.bestEver = best.Clone()
	}
	if worst := pop.Worst(); worst != nil && (s.worstEver == nil || s.better(s.worstEver.Score(), worst.Score())) {
		s.worstEver = worst.Clone()
	}
}

// BestOf returns the better of the best genome ever recorded and the best
// genome of pop, which may hold offspring bred after the last Update
func (s *Statistics) BestOf(pop *ga.Population) ga.Genome {
	var cur ga.Genome
	if pop != nil {
		cur = pop.Best()
	}
	switch {
	case cur == nil:
		return s.bestEver
	case s.bestEver == nil:
		return cur
	}
	if s.better(cur.Score(), s.bestEver.Score()) {
		return cur
	}
	return s.bestEver
}

// better reports whether score a strictly beats score b
func (s *Statistics) better(a, b float64) bool {
	if s.objective == ga.HighIsBest {
		return a > b
	}
	return a < b
}

// Generations returns the number of Update calls since Init
func (s *Statistics) Generations() int { return s.generation }

// First returns the copy of the initial population
func (s *Statistics) First() *ga.Population { return s.first }

// Current returns the most recently recorded population
func (s *Statistics) Current() *ga.Population { return s.current }

// BestPopulation returns the copy of the best population by total score
func (s *Statistics) BestPopulation() *ga.Population { return s.bestPop }

// WorstPopulation returns the copy of the worst population by total score
func (s *Statistics) WorstPopulation() *ga.Population { return s.worstPop }

// BestEver returns the copy of the best genome seen
func (s *Statistics) BestEver() ga.Genome { return s.bestEver }

// WorstEver returns the copy of the worst genome seen
func (s *Statistics) WorstEver() ga.Genome { return s.worstEver }

// BestScoreTrace returns the best score of every recorded generation
func (s *Statistics) BestScoreTrace() []float64 { return s.scoreTrace }

func (s *Statistics) String() string {
	var b strings.Builder
	rule := strings.Repeat("*", 62)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "              STATISTICS after %s Generations\n", humanize.Comma(int64(s.generation)))
	fmt.Fprintln(&b, rule)

	writePopulation(&b, "First Population", s.first)
	writePopulation(&b, "Last Population", s.current)
	writePopulation(&b, "Best Population", s.bestPop)
	writePopulation(&b, "Worst Population", s.worstPop)
	writeGenome(&b, "Best Genome Ever", s.bestEver)
	writeGenome(&b, "Worst Genome Ever", s.worstEver)

	if len(s.scoreTrace) > 1 {
		first, last := s.scoreTrace[0], s.scoreTrace[len(s.scoreTrace)-1]
		fmt.Fprintf(&b, "Best score moved from %s to %s\n",
			humanize.CommafWithDigits(first, 2), humanize.CommafWithDigits(last, 2))
	}
	return b.String()
}

func writePopulation(b *strings.Builder, title string, pop *ga.Population) {
	fmt.Fprintf(b, "%s\n", banner(title))
	if pop == nil {
		b.WriteString("(none)\n")
		return
	}
	snap := Summarize(pop)
	fmt.Fprintf(b, "Size: %s\n", humanize.Comma(int64(snap.Size)))
	fmt.Fprintf(b, "Total Score: %s\n", humanize.CommafWithDigits(snap.TotalScore, 2))
	fmt.Fprintf(b, "Total Fitness: %s\n", humanize.CommafWithDigits(snap.TotalFitness, 2))
	fmt.Fprintf(b, "Average Score: %s (stddev %s)\n",
		humanize.CommafWithDigits(snap.AverageScore, 2), humanize.CommafWithDigits(snap.StdDevScore, 2))
	fmt.Fprintf(b, "Average Fitness: %s\n", humanize.CommafWithDigits(snap.AverageFitness, 2))
	fmt.Fprintf(b, "Best Score: %s\n", humanize.CommafWithDigits(snap.BestScore, 2))
	fmt.Fprintf(b, "Worst Score: %s\n", humanize.CommafWithDigits(snap.WorstScore, 2))
}

func writeGenome(b *strings.Builder, title string, g ga.Genome) {
	fmt.Fprintf(b, "%s\n", banner(title))
	if g == nil {
		b.WriteString("(none)\n")
		return
	}
	b.WriteString(g.String())
	b.WriteString("\n")
}

func banner(title string) string {
	pad := 62 - len(title)
	if pad < 2 {
		return title
	}
	left := pad / 2
	return strings.Repeat("*", left) + title + strings.Repeat("*", pad-left)
}

func cloneOrNil(g ga.Genome) ga.Genome {
	if g == nil {
		return nil
	}
	return g.Clone()
}
