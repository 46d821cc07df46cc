package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gprimeca/GenALib/internal/rng"
)

func sequence(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}

func shuffled(n int, src rng.Source) []int {
	seq := sequence(n)
	for i := n - 1; i > 0; i-- {
		Swap(seq, i, src.UniformInt(i+1))
	}
	return seq
}

func TestIndexOf(t *testing.T) {
	seq := []int{4, 7, 7, 1}
	assert.Equal(t, 1, IndexOf(seq, 7))
	assert.Equal(t, 3, IndexOf(seq, 1))
	assert.Equal(t, len(seq), IndexOf(seq, 9), "missing value returns the length sentinel")
	assert.Equal(t, 0, IndexOf([]int{}, 9))
}

func TestSameMultiset(t *testing.T) {
	assert.True(t, SameMultiset([]int{1, 2, 2, 3}, []int{2, 3, 1, 2}))
	assert.False(t, SameMultiset([]int{1, 2, 2}, []int{1, 2, 3}))
	assert.False(t, SameMultiset([]int{1, 2}, []int{1, 2, 2}))
}

func TestSwapMutateShortSequences(t *testing.T) {
	src := rng.New(1)

	require.ErrorIs(t, SwapMutate([]int{}, src), ErrEmptyGenome)

	one := []int{5}
	require.NoError(t, SwapMutate(one, src))
	assert.Equal(t, []int{5}, one)

	two := []int{5, 6}
	require.NoError(t, SwapMutate(two, src))
	assert.Equal(t, []int{5, 6}, two)
}

func TestSwapMutateRejectsIdenticalDraw(t *testing.T) {
	src := &scriptedRNG{ints: []int{1, 1, 0}}
	seq := []int{10, 20, 30, 40}

	require.NoError(t, SwapMutate(seq, src))
	assert.Equal(t, []int{20, 10, 30, 40}, seq)
	assert.Equal(t, 3, src.calls)
}

func TestSwapMutateNeverTouchesLastPosition(t *testing.T) {
	src := rng.New(3)
	seq := sequence(6)
	for i := 0; i < 1000; i++ {
		require.NoError(t, SwapMutate(seq, src))
		assert.Equal(t, 5, seq[5])
	}
}

func TestSwapMutatePreservesPermutation(t *testing.T) {
	src := rng.New(5)
	seq := sequence(20)
	for i := 0; i < 5000; i++ {
		require.NoError(t, SwapMutate(seq, src))
	}
	assert.True(t, SameMultiset(sequence(20), seq))
}

func TestPartiallyMappedIdenticalParents(t *testing.T) {
	src := &scriptedRNG{}
	parent := []int{3, 1, 4, 0, 2}

	child, err := PartiallyMapped(parent, parent, src)
	require.NoError(t, err)
	assert.Equal(t, parent, child)
	assert.Zero(t, src.calls, "no draws for identical parents")

	child[0] = 99
	assert.Equal(t, 3, parent[0], "child must not alias the parent")
}

func TestPartiallyMappedSegment(t *testing.T) {
	self := []int{1, 2, 3, 4, 5}
	other := []int{5, 4, 3, 2, 1}

	child, err := PartiallyMapped(self, other, &scriptedRNG{ints: []int{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, child)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, other, "parent unchanged")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, self, "parent unchanged")
}

func TestPartiallyMappedEmptySegmentWhenBeginAfterEnd(t *testing.T) {
	self := []int{0, 1, 2, 3, 4, 5}
	other := []int{5, 4, 3, 2, 1, 0}

	child, err := PartiallyMapped(self, other, &scriptedRNG{ints: []int{3, 1}})
	require.NoError(t, err)
	assert.Equal(t, other, child)
}

func TestPartiallyMappedPreservesPermutation(t *testing.T) {
	src := rng.New(11)
	for i := 0; i < 2000; i++ {
		a, b := shuffled(15, src), shuffled(15, src)
		child, err := PartiallyMapped(a, b, src)
		require.NoError(t, err)
		require.True(t, SameMultiset(a, child), "iteration %d: %v", i, child)
	}
}

func TestPartiallyMappedWithDuplicates(t *testing.T) {
	src := rng.New(17)
	base := []int{1, 1, 2, 2, 3, 4, 4, 4}
	for i := 0; i < 1000; i++ {
		a := append([]int(nil), base...)
		b := append([]int(nil), base...)
		for j := 0; j < 5; j++ {
			require.NoError(t, SwapMutate(a, src))
			require.NoError(t, SwapMutate(b, src))
		}
		child, err := PartiallyMapped(a, b, src)
		require.NoError(t, err)
		require.True(t, SameMultiset(base, child))
	}
}

func TestCrossoverLengthMismatch(t *testing.T) {
	src := rng.New(1)
	_, err := PartiallyMapped([]int{1, 2, 3}, []int{1, 2}, src)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = OrderBased([]int{1, 2, 3}, []int{1, 2}, src)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestOrderBasedIdenticalParents(t *testing.T) {
	src := &scriptedRNG{}
	parent := []int{2, 0, 1, 3}

	child, err := OrderBased(parent, parent, src)
	require.NoError(t, err)
	assert.Equal(t, parent, child)
	assert.Zero(t, src.calls)
}

func TestOrderBasedImposesSampledOrder(t *testing.T) {
	self := []int{1, 2, 3, 4, 5}
	other := []int{5, 4, 3, 2, 1}

	// start 0, then steps of 2, 2 and a final step past the end: samples 1, 3, 5
	child, err := OrderBased(self, other, &scriptedRNG{ints: []int{0, 1, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 2, 5}, child)
}

func TestOrderBasedPreservesPermutation(t *testing.T) {
	src := rng.New(23)
	for i := 0; i < 2000; i++ {
		a, b := shuffled(12, src), shuffled(12, src)
		child, err := OrderBased(a, b, src)
		require.NoError(t, err)
		require.True(t, SameMultiset(a, child), "iteration %d: %v", i, child)
	}
}

func TestOrderBasedTwoGenesScripted(t *testing.T) {
	// start 0, step 1: both genes sampled, child takes self's order
	child, err := OrderBased([]int{0, 1}, []int{1, 0}, &scriptedRNG{ints: []int{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, child)

	// start 0, step 2: only gene 0 sampled, it rewrites itself
	child, err = OrderBased([]int{0, 1}, []int{1, 0}, &scriptedRNG{ints: []int{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, child)
}

func TestOrderBasedSingleGene(t *testing.T) {
	src := &scriptedRNG{ints: []int{0}}
	child, err := OrderBased([]int{7}, []int{7}, src)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, child)
	assert.Zero(t, src.calls)
}

func TestOrderBasedTwoGenes(t *testing.T) {
	src := rng.New(29)
	for i := 0; i < 100; i++ {
		child, err := OrderBased([]int{0, 1}, []int{1, 0}, src)
		require.NoError(t, err)
		assert.True(t, SameMultiset([]int{0, 1}, child))
	}
}
