package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color carried back along a primary camera ray
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}

// PathStats counts what happened to rays traced by an integrator
type PathStats struct {
	Scatters int // Surface interactions that produced a new ray
	Absorbed int // Surface interactions that terminated the path
	Escaped  int // Rays that left the scene and picked up the background
	Cutoff   int // Paths terminated by the bounce limit
}

// Add returns the sum of two stat sets
func (s PathStats) Add(other PathStats) PathStats {
	return PathStats{
		Scatters: s.Scatters + other.Scatters,
		Absorbed: s.Absorbed + other.Absorbed,
		Escaped:  s.Escaped + other.Escaped,
		Cutoff:   s.Cutoff + other.Cutoff,
	}
}
