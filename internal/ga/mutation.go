package ga

import "github.com/gprimeca/GenALib/internal/rng"

// SwapMutate exchanges two distinct positions drawn uniformly from
// [0, len-1). Sequences shorter than three have no such pair and are left
// unchanged. An empty sequence is an error.
func SwapMutate[T any](seq []T, src rng.Source) error {
	size := len(seq)
	if size == 0 {
		return ErrEmptyGenome
	}
	if size < 3 {
		return nil
	}

	pos1 := src.UniformInt(size - 1)
	pos2 := pos1
	for pos1 == pos2 {
		pos2 = src.UniformInt(size - 1)
	}

	Swap(seq, pos1, pos2)
	return nil
}
