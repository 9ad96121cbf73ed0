package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// PathTracingIntegrator implements recursive unidirectional path tracing
// with the scene background as the only light source.
// It is not safe for concurrent use because it keeps running counters.
type PathTracingIntegrator struct {
	MaxDepth int // Maximum number of bounces per camera ray
	stats    PathStats
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a camera ray using the configured bounce limit
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.ComputeRayColor(ray, pt.MaxDepth, sc, sampler)
}

// ComputeRayColor returns the light arriving along ray with remainingBounces left.
// A path that runs out of bounces, or is absorbed, contributes black.
func (pt *PathTracingIntegrator) ComputeRayColor(ray core.Ray, remainingBounces int, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if remainingBounces <= 0 {
		pt.stats.Cutoff++
		return core.Vec3{}
	}

	hit, isHit := sc.Hit(ray, scene.HitRange())
	if !isHit {
		pt.stats.Escaped++
		return sc.Background.Color(ray.Direction)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		pt.stats.Absorbed++
		return core.Vec3{}
	}
	pt.stats.Scatters++

	incoming := pt.ComputeRayColor(scatter.Scattered, remainingBounces-1, sc, sampler)
	return scatter.Attenuation.MultiplyVec(incoming)
}

// Stats returns the counters accumulated since the last reset
func (pt *PathTracingIntegrator) Stats() PathStats {
	return pt.stats
}

// ResetStats clears the accumulated counters
func (pt *PathTracingIntegrator) ResetStats() {
	pt.stats = PathStats{}
}
