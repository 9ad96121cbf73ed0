package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig describes a positionable camera with optional defocus blur
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	AspectRatio   float64   // Viewport width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter; 0 disables defocus blur
	FocusDistance float64   // Distance to the plane in focus; 0 uses |LookAt - Center|
}

// DefaultCameraConfig returns a camera at the origin looking down -z with a 90° field of view
func DefaultCameraConfig(aspectRatio float64) CameraConfig {
	return CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          90.0,
		FocusDistance: 1.0,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.Aperture > 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance > 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Camera generates rays for rendering. It is immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Lens plane basis
	lensRadius      float64
}

// NewCamera creates the fixed camera: eye at the origin facing -z, a viewport of
// height 2 at focal distance 1 whose width is 2 × aspectRatio.
func NewCamera(aspectRatio float64) *Camera {
	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		u:               core.NewVec3(1, 0, 0),
		v:               core.NewVec3(0, 1, 0),
	}
}

// NewCameraFromConfig creates a look-at camera with optional defocus blur
func NewCameraFromConfig(config CameraConfig) *Camera {
	aspectRatio := config.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 1.0
	}
	vfov := config.VFov
	if vfov <= 0 {
		vfov = 90.0
	}

	u, v, w := cameraBasis(config.Center, config.LookAt, config.Up)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
		if focusDistance == 0 {
			focusDistance = 1.0
		}
	}

	theta := vfov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h * focusDistance
	viewportWidth := aspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      math.Max(0, config.Aperture) / 2,
	}
}

// cameraBasis builds an orthonormal frame with w pointing away from the view direction
func cameraBasis(center, lookAt, up core.Vec3) (u, v, w core.Vec3) {
	eye := toMgl(center)
	back := eye.Sub(toMgl(lookAt))
	if back.Len() == 0 {
		back = mgl64.Vec3{0, 0, 1}
	}
	wm := back.Normalize()

	upm := toMgl(up)
	side := upm.Cross(wm)
	if side.Len() < 1e-12 {
		// Up is parallel to the view direction; pick any perpendicular
		side = mgl64.Vec3{0, 0, 1}.Cross(wm)
		if side.Len() < 1e-12 {
			side = mgl64.Vec3{1, 0, 0}.Cross(wm)
		}
	}
	um := side.Normalize()
	vm := wm.Cross(um)

	return fromMgl(um), fromMgl(vm), fromMgl(wm)
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v.X(), v.Y(), v.Z())
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The sampler is only drawn from when the camera has a lens aperture.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 && sampler != nil {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
