package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gprimeca/GenALib/internal/rng"
)

func TestUpdateBestWorst(t *testing.T) {
	opts := DefaultOptions()

	low := fixedPopulation(opts, &scriptedRNG{}, 5, 2, 9, 2, 7)
	assert.Equal(t, 1, low.Best().(*fixedGenome).id, "ties keep the first")
	assert.Equal(t, 2, low.Worst().(*fixedGenome).id)

	opts.Objective = HighIsBest
	high := fixedPopulation(opts, &scriptedRNG{}, 5, 2, 9, 2, 7)
	assert.Equal(t, 2, high.Best().(*fixedGenome).id)
	assert.Equal(t, 1, high.Worst().(*fixedGenome).id)
}

func TestEmptyPopulation(t *testing.T) {
	pop := NewPopulation(DefaultOptions(), &scriptedRNG{})
	assert.Nil(t, pop.Best())
	assert.Nil(t, pop.Worst())
	assert.Zero(t, pop.AverageScore())
	assert.Zero(t, pop.AverageFitness())

	_, err := pop.Select()
	assert.ErrorIs(t, err, ErrEmptyPopulation)
}

func TestAggregates(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 1, 2, 3, 6)
	pop.NoScale()

	assert.Equal(t, 12.0, pop.TotalScore())
	assert.Equal(t, 3.0, pop.AverageScore())
	assert.Equal(t, 12.0, pop.TotalFitness())
	assert.Equal(t, 6.0, pop.MaxScore())
	assert.Equal(t, 1.0, pop.MinScore())
	assert.Equal(t, []float64{1, 2, 3, 6}, pop.Scores())
}

func TestAddAndSetGenomes(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 4, 8)
	pop.Add(newFixed(7, 1))
	assert.Equal(t, 3, pop.Len())
	assert.Equal(t, 7, pop.Best().(*fixedGenome).id)

	pop.SetGenomes([]Genome{newFixed(10, 3), newFixed(11, 30)})
	assert.Equal(t, 2, pop.Len())
	assert.Equal(t, 10, pop.Best().(*fixedGenome).id)
	assert.Equal(t, 11, pop.Worst().(*fixedGenome).id)
}

func TestCloneIsDeep(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 3, 1, 2)
	c := pop.Clone()

	require.Equal(t, pop.Len(), c.Len())
	for i := 0; i < pop.Len(); i++ {
		assert.NotSame(t, pop.At(i), c.At(i))
		assert.Equal(t, pop.At(i).Score(), c.At(i).Score())
	}
	assert.Equal(t, pop.Best().Score(), c.Best().Score())

	c.At(0).SetScore(-5)
	c.UpdateBestWorst()
	assert.Equal(t, 3.0, pop.At(0).Score())
	assert.Equal(t, 1, pop.Best().(*fixedGenome).id)
}

func TestInitializeEvaluates(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 4, 5)
	pop.At(0).SetScore(100)
	require.NoError(t, pop.Initialize())
	assert.Equal(t, 4.0, pop.At(0).Score())
	assert.Equal(t, 0, pop.Best().(*fixedGenome).id)
}

func TestNoScaling(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 3, 8, 1)
	pop.NoScale()
	for _, g := range pop.Genomes() {
		assert.Equal(t, g.Score(), g.Fitness())
	}
}

func TestRankScaling(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 1000, 0.5, 42, -7, 3)
	SortAscendingScores(pop.Genomes())
	pop.RankScale()

	var fitness []float64
	for _, g := range pop.Genomes() {
		fitness = append(fitness, g.Fitness())
	}
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, fitness)
}

func TestDifferenceScaling(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 10, 4, 7)
	pop.DifferenceScale()

	assert.Equal(t, 0.0, pop.At(0).Fitness())
	assert.Equal(t, 6.0, pop.At(1).Fitness())
	assert.Equal(t, 3.0, pop.At(2).Fitness())
}

func TestScaleDispatch(t *testing.T) {
	opts := DefaultOptions()
	opts.Scaling = RankScaling
	pop := fixedPopulation(opts, &scriptedRNG{}, 10, 4, 7)
	pop.Scale()
	assert.Equal(t, 3.0, pop.At(0).Fitness())
	assert.Equal(t, 1.0, pop.At(2).Fitness())
}

func TestRouletteWheelSingleGenome(t *testing.T) {
	for _, pct := range []float64{0, 0.5, 0.9999} {
		pop := fixedPopulation(DefaultOptions(), &scriptedRNG{pcts: []float64{pct}}, 12)
		pop.NoScale()
		assert.Same(t, pop.At(0), pop.RouletteWheelSelect())
	}
}

func TestRouletteWheelRunningTotal(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{pcts: []float64{0.5, 0.1, 0.99}}, 1, 2, 3)
	pop.NoScale()

	assert.Same(t, pop.At(2), pop.RouletteWheelSelect(), "running total must exceed the slice")
	assert.Same(t, pop.At(0), pop.RouletteWheelSelect())
	assert.Same(t, pop.At(2), pop.RouletteWheelSelect())
}

func TestRouletteWheelZeroFitnessFallsBackToFirst(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{pcts: []float64{0.7}}, 5, 5, 5)
	pop.DifferenceScale()
	assert.Same(t, pop.At(0), pop.RouletteWheelSelect())
}

func TestRankSelection(t *testing.T) {
	opts := DefaultOptions()
	opts.Selection = RankSelection
	// fitness becomes 3, 2, 1; a slice of 0 lands on the first genome
	pop := fixedPopulation(opts, &scriptedRNG{pcts: []float64{0, 0.99}}, 9, 8, 7)

	g, err := pop.Select()
	require.NoError(t, err)
	assert.Same(t, pop.At(0), g)
	assert.Equal(t, 3.0, pop.At(0).Fitness())

	g, err = pop.Select()
	require.NoError(t, err)
	assert.Same(t, pop.At(2), g)
}

func TestTournamentClampsPlayers(t *testing.T) {
	opts := DefaultOptions()
	opts.TournamentSize = 100
	src := &scriptedRNG{ints: []int{0}}
	pop := fixedPopulation(opts, src, 1, 2, 3, 4, 5, 6)
	pop.NoScale()

	pop.TournamentSelect()
	assert.Equal(t, 3, src.calls, "min(100, 6/2) draws")
}

func TestTournamentPicksFittest(t *testing.T) {
	opts := DefaultOptions()
	opts.TournamentSize = 3
	pop := fixedPopulation(opts, &scriptedRNG{ints: []int{1, 2, 0}}, 1, 5, 3, 9, 2, 2)
	pop.NoScale()

	assert.Same(t, pop.At(1), pop.TournamentSelect())
}

func TestTournamentNeverDrawsLastIndex(t *testing.T) {
	opts := DefaultOptions()
	opts.TournamentSize = 2
	pop := NewPopulation(opts, rng.New(9))
	for i := 0; i < 4; i++ {
		pop.Add(newFixed(i, 1))
	}
	pop.At(3).SetScore(1000)
	pop.NoScale()

	for i := 0; i < 500; i++ {
		assert.NotSame(t, pop.At(3), pop.TournamentSelect())
	}
}

func TestTournamentNonPositiveFitnessReturnsFirst(t *testing.T) {
	opts := DefaultOptions()
	opts.TournamentSize = 10
	pop := fixedPopulation(opts, &scriptedRNG{ints: []int{1, 2, 3}}, -4, -1, -2, -3, -8, -6, -5, -9)
	pop.NoScale()

	assert.Same(t, pop.At(0), pop.TournamentSelect())
}

func TestTournamentSingleGenome(t *testing.T) {
	opts := DefaultOptions()
	opts.Selection = Tournament
	pop := fixedPopulation(opts, &scriptedRNG{}, 3)
	pop.NoScale()

	g, err := pop.Select()
	require.NoError(t, err)
	assert.Same(t, pop.At(0), g)
}

func TestPopulationString(t *testing.T) {
	pop := fixedPopulation(DefaultOptions(), &scriptedRNG{}, 2, 4)
	out := pop.String()
	assert.Contains(t, out, "Total Score: 6")
	assert.Contains(t, out, "Average Score: 3")
	assert.Contains(t, out, ">> Best Genome <<\nfixed#0")
	assert.Contains(t, out, ">> Worst Genome <<\nfixed#1")
}
