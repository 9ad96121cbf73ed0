package scene

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// HitEpsilon is the smallest ray parameter accepted as a hit.
// It keeps scattered rays from re-hitting the surface they leave (shadow acne).
const HitEpsilon = 0.001

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	TopColor    core.Vec3 // Color straight up
	BottomColor core.Vec3 // Color straight down
}

// DefaultBackground returns a white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}
}

// Color returns the gradient color for a ray direction.
// The weight is 0.5*(y+1) of the normalized direction, so horizontal rays get the midpoint.
func (b Background) Color(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.BottomColor.Lerp(b.TopColor, t)
}

// Scene contains all the elements needed for rendering.
// It must not be mutated while a render is in progress.
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Shapes       []geometry.Shape // Objects in the scene, scanned linearly
	Background   Background
}

// New creates an empty scene with the default background and the fixed camera
func New(aspectRatio float64) *Scene {
	return &Scene{
		Camera:       geometry.NewCamera(aspectRatio),
		CameraConfig: geometry.DefaultCameraConfig(aspectRatio),
		Shapes:       make([]geometry.Shape, 0),
		Background:   DefaultBackground(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the nearest intersection within rayT across all shapes.
// The upper bound shrinks to the closest hit so far, so a farther shape never
// replaces a nearer one regardless of scan order.
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, rayT.WithMax(closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// HitRange returns the default interval for scene queries: [HitEpsilon, +Inf]
func HitRange() core.Interval {
	return core.NewInterval(HitEpsilon, math.Inf(1))
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
