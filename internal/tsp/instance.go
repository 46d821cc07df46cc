package tsp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gprimeca/GenALib/internal/ga"
	"github.com/gprimeca/GenALib/internal/rng"
)

// Instance is a named set of waypoints to tour
type Instance struct {
	Name      string     `yaml:"name"`
	Waypoints []Waypoint `yaml:"waypoints"`
}

// LoadInstance reads a YAML instance file
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance: %w", err)
	}

	inst := &Instance{}
	if err := yaml.Unmarshal(data, inst); err != nil {
		return nil, fmt.Errorf("failed to parse instance %s: %w", path, err)
	}
	if len(inst.Waypoints) == 0 {
		return nil, fmt.Errorf("instance %s has no waypoints", path)
	}
	if inst.Name == "" {
		inst.Name = path
	}
	return inst, nil
}

// RandomInstance generates n waypoints with integer coordinates in [0, extent)
func RandomInstance(n, extent int, src rng.Source) *Instance {
	inst := &Instance{
		Name:      fmt.Sprintf("random-%d", n),
		Waypoints: make([]Waypoint, n),
	}
	for i := range inst.Waypoints {
		inst.Waypoints[i] = RandomWaypoint(src, extent)
	}
	return inst
}

// Tour returns a tour over the instance's waypoints in file order
func (in *Instance) Tour(op Operator, src rng.Source) *Tour {
	return NewTour(in.Waypoints, op, src)
}

// SeedPopulation builds a population of size permuted clones of base
func SeedPopulation(base *Tour, size int, opts ga.Options, src rng.Source) *ga.Population {
	pop := ga.NewPopulation(opts, src)
	genomes := make([]ga.Genome, size)
	for i := range genomes {
		genomes[i] = base.Permuted()
	}
	pop.SetGenomes(genomes)
	return pop
}
