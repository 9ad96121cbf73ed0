package scene

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

func TestScene_Hit_NearestWinsRegardlessOfOrder(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	nearSphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, near)
	farSphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, far)

	tests := []struct {
		name   string
		shapes []geometry.Shape
	}{
		{"Near first", []geometry.Shape{nearSphere, farSphere}},
		{"Far first", []geometry.Shape{farSphere, nearSphere}},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(1.0)
			s.Add(tt.shapes...)

			hit, isHit := s.Hit(ray, HitRange())
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest hit at t=1.5, got t=%f", hit.T)
			}
			if hit.Material != near {
				t.Error("Expected the nearer sphere's material")
			}
		})
	}
}

func TestScene_Hit_Empty(t *testing.T) {
	s := New(1.0)
	hit, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), HitRange())
	if isHit || hit != nil {
		t.Errorf("Empty scene should never report a hit, got %+v", hit)
	}
}

func TestScene_Hit_RespectsCallerBounds(t *testing.T) {
	s := NewDiffuseScene(1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := s.Hit(ray, core.NewInterval(HitEpsilon, 0.4)); isHit {
		t.Error("Hit beyond the interval maximum should be ignored")
	}
	if _, isHit := s.Hit(ray, core.EmptyInterval()); isHit {
		t.Error("Empty interval should never hit")
	}
}

// recordingShape records the interval each query was given
type recordingShape struct {
	inner     geometry.Shape
	intervals []core.Interval
}

func (r *recordingShape) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	r.intervals = append(r.intervals, rayT)
	return r.inner.Hit(ray, rayT)
}

func TestScene_Hit_ShrinksUpperBound(t *testing.T) {
	first := &recordingShape{inner: geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)}
	second := &recordingShape{inner: geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)}

	s := New(1.0)
	s.Add(first, second)
	s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), HitRange())

	if !math.IsInf(first.intervals[0].Max, 1) {
		t.Errorf("First query should use the caller's bound, got %v", first.intervals[0])
	}
	if math.Abs(second.intervals[0].Max-1.5) > 1e-9 {
		t.Errorf("Second query should be bounded by the nearest hit so far, got %v", second.intervals[0])
	}
	if second.intervals[0].Min != HitEpsilon {
		t.Errorf("Lower bound should stay at epsilon, got %v", second.intervals[0].Min)
	}
}

func TestBackground_Color(t *testing.T) {
	bg := DefaultBackground()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"Straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"Straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"Horizontal", core.NewVec3(0, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
		{"Horizontal sideways", core.NewVec3(5, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
		{"Unnormalized up", core.NewVec3(0, 10, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := bg.Color(tt.direction)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestBuiltinScenes_ShareMaterials(t *testing.T) {
	s := NewGlassScene(16.0 / 9.0)

	glassCount := 0
	var shared material.Material
	for _, shape := range s.Shapes {
		sphere := shape.(*geometry.Sphere)
		if _, ok := sphere.Material.(*material.Dielectric); ok {
			if shared == nil {
				shared = sphere.Material
			}
			if sphere.Material != shared {
				t.Error("Glass spheres should share one material instance")
			}
			glassCount++
		}
	}
	if glassCount != 3 {
		t.Errorf("Expected 3 glass spheres, got %d", glassCount)
	}
}
