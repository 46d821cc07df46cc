package ga

// Sort orders the population in place by the configured key and direction
func (p *Population) Sort() {
	switch {
	case p.opts.SortOrder == Ascending && p.opts.SortKey == ByScore:
		SortAscendingScores(p.genomes)
	case p.opts.SortOrder == Ascending && p.opts.SortKey == ByFitness:
		SortAscendingFitness(p.genomes)
	case p.opts.SortOrder == Descending && p.opts.SortKey == ByScore:
		SortDescendingScores(p.genomes)
	default:
		SortDescendingFitness(p.genomes)
	}
}

// SortAscendingScores sorts genomes by increasing score
func SortAscendingScores(gs []Genome) {
	quickSort(gs, func(a, b Genome) bool { return a.Score() < b.Score() })
}

// SortDescendingScores sorts genomes by decreasing score
func SortDescendingScores(gs []Genome) {
	quickSort(gs, func(a, b Genome) bool { return a.Score() > b.Score() })
}

// SortAscendingFitness sorts genomes by increasing fitness
func SortAscendingFitness(gs []Genome) {
	quickSort(gs, func(a, b Genome) bool { return a.Fitness() < b.Fitness() })
}

// SortDescendingFitness sorts genomes by decreasing fitness
func SortDescendingFitness(gs []Genome) {
	quickSort(gs, func(a, b Genome) bool { return a.Fitness() > b.Fitness() })
}

// quickSort is a deterministic quicksort with Hoare partitioning
func quickSort(gs []Genome, less func(a, b Genome) bool) {
	for len(gs) > 1 {
		p := hoarePartition(gs, less)
		// Recurse into the smaller half to bound stack depth
		if p+1 < len(gs)-p-1 {
			quickSort(gs[:p+1], less)
			gs = gs[p+1:]
		} else {
			quickSort(gs[p+1:], less)
			gs = gs[:p+1]
		}
	}
}

// hoarePartition splits gs around its middle element and returns j such
// that every element of gs[:j+1] is not after every element of gs[j+1:].
// j is always less than len(gs)-1.
func hoarePartition(gs []Genome, less func(a, b Genome) bool) int {
	pivot := gs[(len(gs)-1)/2]
	i, j := -1, len(gs)
	for {
		for {
			i++
			if !less(gs[i], pivot) {
				break
			}
		}
		for {
			j--
			if !less(pivot, gs[j]) {
				break
			}
		}
		if i >= j {
			return j
		}
		// Equal keys both match the pivot and stay where they are
		if less(gs[j], gs[i]) {
			gs[i], gs[j] = gs[j], gs[i]
		}
	}
}
