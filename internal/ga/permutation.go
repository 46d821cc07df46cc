package ga

// IndexOf returns the position of the first element equal to v, or
// len(seq) when v is absent. Callers must treat len(seq) as not found.
func IndexOf[T comparable](seq []T, v T) int {
	for i, x := range seq {
		if x == v {
			return i
		}
	}
	return len(seq)
}

// Swap exchanges the elements at positions i and j
func Swap[T any](seq []T, i, j int) {
	seq[i], seq[j] = seq[j], seq[i]
}

// SameMultiset reports whether a and b hold the same elements with the same
// multiplicities, in any order
func SameMultiset[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
