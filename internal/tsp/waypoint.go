package tsp

import (
	"fmt"
	"math"

	"github.com/gprimeca/GenALib/internal/rng"
)

// Waypoint is an immutable point in 3-D space
type Waypoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// RandomWaypoint returns a waypoint with integer coordinates in [0, extent)
func RandomWaypoint(src rng.Source, extent int) Waypoint {
	return Waypoint{
		X: float64(src.UniformInt(extent)),
		Y: float64(src.UniformInt(extent)),
		Z: float64(src.UniformInt(extent)),
	}
}

// Distance returns the Euclidean distance between a and b
func (a Waypoint) Distance(b Waypoint) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (a Waypoint) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z)
}
