package ga

import (
	"fmt"
	"slices"

	"github.com/gprimeca/GenALib/internal/rng"
)

// PartiallyMapped performs partially-mapped crossover (PMX).
// The child starts as a copy of other. For every position in the drawn
// segment where the parents disagree, the two genes are located in the
// child and exchanged, which keeps the child a valid permutation.
// Returns the child; neither parent is modified.
func PartiallyMapped[T comparable](self, other []T, src rng.Source) ([]T, error) {
	if len(self) != len(other) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(self), len(other))
	}

	child := slices.Clone(other)
	size := len(self)
	if size < 2 || slices.Equal(self, other) {
		return child, nil
	}

	// begin > end leaves the segment empty
	begin := src.UniformInt(size - 1)
	end := src.UniformInt(size - 1)

	for pos := begin; pos <= end; pos++ {
		gene1 := self[pos]
		gene2 := other[pos]
		if gene1 == gene2 {
			continue
		}

		pos1 := IndexOf(child, gene1)
		pos2 := IndexOf(child, gene2)
		if pos1 == size || pos2 == size {
			continue
		}
		Swap(child, pos1, pos2)
	}

	return child, nil
}

// OrderBased performs order-based crossover (OBX).
// A random increasing-index subsequence of self is sampled, then the
// positions of the child (a copy of other) holding those genes are
// rewritten with them in self's relative order.
func OrderBased[T comparable](self, other []T, src rng.Source) ([]T, error) {
	if len(self) != len(other) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(self), len(other))
	}

	child := slices.Clone(other)
	size := len(self)
	if size < 2 || slices.Equal(self, other) {
		return child, nil
	}

	// Sample genes from self at strictly increasing positions
	var sampled []T
	remaining := make(map[T]int)
	for pos := src.UniformInt(size - 1); pos < size; pos += 1 + src.UniformInt(size-pos) {
		sampled = append(sampled, self[pos])
		remaining[self[pos]]++
	}

	// Overwrite matching child positions, consuming the sample in order
	next := 0
	for i := 0; i < size && next < len(sampled); i++ {
		if remaining[child[i]] == 0 {
			continue
		}
		remaining[child[i]]--
		child[i] = sampled[next]
		next++
	}

	return child, nil
}
