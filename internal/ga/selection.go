package ga

// Select picks a parent with the configured selection scheme.
// The returned genome is still owned by the population; clone it before
// keeping it elsewhere.
func (p *Population) Select() (Genome, error) {
	if len(p.genomes) == 0 {
		return nil, ErrEmptyPopulation
	}

	switch p.opts.Selection {
	case RankSelection:
		return p.RankSelect(), nil
	case Tournament:
		return p.TournamentSelect(), nil
	default:
		return p.RouletteWheelSelect(), nil
	}
}

// RankSelect applies rank scaling and spins the roulette wheel
func (p *Population) RankSelect() Genome {
	p.RankScale()
	return p.RouletteWheelSelect()
}

// RouletteWheelSelect picks the first genome whose running fitness total
// exceeds a random slice of the total fitness. When no genome crosses the
// slice (all-zero fitness) the first genome is returned.
func (p *Population) RouletteWheelSelect() Genome {
	slice := p.src.UniformPercentage() * p.TotalFitness()

	var total float64
	for _, g := range p.genomes {
		total += g.Fitness()
		if total > slice {
			return g
		}
	}
	return p.genomes[0]
}

// TournamentSelect draws min(TournamentSize, size/2) random contenders with
// replacement from [0, size-1) and returns the fittest. The running best
// starts at zero fitness, so when no contender has positive fitness the
// first genome wins.
func (p *Population) TournamentSelect() Genome {
	size := len(p.genomes)
	players := p.opts.TournamentSize
	if players > size/2 {
		players = size / 2
	}

	bestFitness := 0.0
	chosen := 0
	for i := 0; i < players; i++ {
		idx := p.src.UniformInt(size - 1)
		if p.genomes[idx].Fitness() > bestFitness {
			bestFitness = p.genomes[idx].Fitness()
			chosen = idx
		}
	}

	return p.genomes[chosen]
}
