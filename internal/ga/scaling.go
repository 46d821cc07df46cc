package ga

import "math"

// Scale derives fitness from score with the configured scaling scheme
func (p *Population) Scale() {
	switch p.opts.Scaling {
	case RankScaling:
		p.RankScale()
	case DifferenceScaling:
		p.DifferenceScale()
	default:
		p.NoScale()
	}
}

// NoScale copies each score into the fitness
func (p *Population) NoScale() {
	for _, g := range p.genomes {
		g.SetFitness(g.Score())
	}
}

// RankScale assigns fitness N, N-1, ..., 1 in population order.
// The rank reflects position only, so sort first for it to mean anything.
func (p *Population) RankScale() {
	p.NoScale()

	rank := len(p.genomes)
	for _, g := range p.genomes {
		g.SetFitness(float64(rank))
		rank--
	}
}

// DifferenceScale sets fitness to the distance between each score and the
// worst score. The worst genome must be current.
func (p *Population) DifferenceScale() {
	if p.worst == nil {
		return
	}
	worst := p.worst.Score()
	for _, g := range p.genomes {
		g.SetFitness(math.Abs(worst - g.Score()))
	}
}
