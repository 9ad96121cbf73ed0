package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// ErrInvalidSceneFile is wrapped by every scene file validation error
var ErrInvalidSceneFile = errors.New("invalid scene file")

// Vec3JSON is a vector written as a JSON array [x, y, z]
type Vec3JSON [3]float64

// Vec3 converts to a core.Vec3
func (v Vec3JSON) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraJSON describes a positioned camera in a scene file
type CameraJSON struct {
	Center        Vec3JSON  `json:"center"`
	LookAt        Vec3JSON  `json:"lookAt"`
	Up            *Vec3JSON `json:"up,omitempty"`
	VFov          float64   `json:"vfov,omitempty"`
	Aperture      float64   `json:"aperture,omitempty"`
	FocusDistance float64   `json:"focusDistance,omitempty"`
}

// BackgroundJSON describes the sky gradient in a scene file
type BackgroundJSON struct {
	Top    Vec3JSON `json:"top"`
	Bottom Vec3JSON `json:"bottom"`
}

// MaterialJSON describes one named material.
// Type is one of "lambertian", "metal" or "dielectric".
type MaterialJSON struct {
	Type   string   `json:"type"`
	Albedo Vec3JSON `json:"albedo,omitempty"`
	Fuzz   float64  `json:"fuzz,omitempty"`
	IOR    float64  `json:"ior,omitempty"`
}

// SphereJSON places a sphere that references a material by name
type SphereJSON struct {
	Center   Vec3JSON `json:"center"`
	Radius   float64  `json:"radius"`
	Material string   `json:"material"`
}

// FileJSON is the top-level scene file document
type FileJSON struct {
	Name        string                  `json:"name,omitempty"`
	Description string                  `json:"description,omitempty"`
	Camera      *CameraJSON             `json:"camera,omitempty"`
	Background  *BackgroundJSON         `json:"background,omitempty"`
	Materials   map[string]MaterialJSON `json:"materials"`
	Spheres     []SphereJSON            `json:"spheres"`
}

// LoadFile reads a JSON scene file
func LoadFile(path string, aspectRatio float64) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := Parse(file, aspectRatio)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a JSON scene document and builds the scene.
// Materials are built once and shared by every sphere that names them.
func Parse(r io.Reader, aspectRatio float64) (*Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var doc FileJSON
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSceneFile, err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after the scene document", ErrInvalidSceneFile)
	}

	return doc.Build(aspectRatio)
}

// Build converts the document into a Scene
func (doc *FileJSON) Build(aspectRatio float64) (*Scene, error) {
	s := New(aspectRatio)
	s.Name = doc.Name

	if doc.Camera != nil {
		config := geometry.CameraConfig{
			Center:        doc.Camera.Center.Vec3(),
			LookAt:        doc.Camera.LookAt.Vec3(),
			Up:            core.NewVec3(0, 1, 0),
			AspectRatio:   aspectRatio,
			VFov:          doc.Camera.VFov,
			Aperture:      doc.Camera.Aperture,
			FocusDistance: doc.Camera.FocusDistance,
		}
		if doc.Camera.Up != nil {
			config.Up = doc.Camera.Up.Vec3()
		}
		s.CameraConfig = config
		s.Camera = geometry.NewCameraFromConfig(config)
	}

	if doc.Background != nil {
		s.Background = Background{
			TopColor:    doc.Background.Top.Vec3(),
			BottomColor: doc.Background.Bottom.Vec3(),
		}
	}

	// Build materials in name order so errors are reported deterministically
	names := make([]string, 0, len(doc.Materials))
	for name := range doc.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]material.Material, len(doc.Materials))
	for _, name := range names {
		mat, err := doc.Materials[name].build()
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %v", ErrInvalidSceneFile, name, err)
		}
		materials[name] = mat
	}

	for i, sphere := range doc.Spheres {
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d references unknown material %q",
				ErrInvalidSceneFile, i, sphere.Material)
		}
		if sphere.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere %d has zero radius", ErrInvalidSceneFile, i)
		}
		s.Add(geometry.NewSphere(sphere.Center.Vec3(), sphere.Radius, mat))
	}

	return s, nil
}

func (m MaterialJSON) build() (material.Material, error) {
	switch m.Type {
	case "lambertian", "lambert":
		return material.NewLambertian(m.Albedo.Vec3()), nil
	case "metal":
		return material.NewMetal(m.Albedo.Vec3(), m.Fuzz), nil
	case "dielectric", "glass":
		if m.IOR <= 0 {
			return nil, fmt.Errorf("dielectric needs a positive ior, got %g", m.IOR)
		}
		return material.NewDielectric(m.IOR), nil
	case "":
		return nil, errors.New("missing material type")
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}
