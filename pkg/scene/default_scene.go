package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewMetalScene creates the default scene: a diffuse sphere flanked by a fuzzy gold
// and a brushed silver metal sphere, resting on a large diffuse ground sphere.
func NewMetalScene(aspectRatio float64) *Scene {
	s := New(aspectRatio)
	s.Name = "metal"

	lambertianRed := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver),
	)

	return s
}

// NewDiffuseScene creates a single diffuse sphere on a diffuse ground sphere
func NewDiffuseScene(aspectRatio float64) *Scene {
	s := New(aspectRatio)
	s.Name = "diffuse"

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
			material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)

	return s
}

// NewGlassScene creates a scene with a solid glass sphere, a hollow glass sphere and
// a mirror, viewed through a positioned camera with a shallow depth of field.
func NewGlassScene(aspectRatio float64, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(aspectRatio)
	s.Name = "glass"
	s.CameraConfig = cameraConfig
	s.Camera = geometry.NewCameraFromConfig(cameraConfig)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	// The glass material is shared by the solid sphere and both hollow shells
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(0.3, -0.35, -0.4), 0.15, glass),
	)

	return s
}
