package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Gamma applied to averaged pixel colors before storage
const Gamma = 2.0

// pixelJitter is the range of the random offset added to a pixel coordinate.
// Samples are drawn in [0,1), so the upper bound is never reached.
var pixelJitter = core.NewInterval(0, 1)

// pathStatsReporter is implemented by integrators that count path events
type pathStatsReporter interface {
	Stats() integrator.PathStats
	ResetStats()
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer validates the configuration and creates a raytracer for the scene.
// A nil logger discards log output.
func NewRaytracer(sc *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if sc == nil || sc.Camera == nil {
		return nil, fmt.Errorf("%w: scene has no camera", ErrInvalidConfig)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      sc,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}, nil
}

// pixelSampler returns the random stream owned by pixel (i, j).
// Streams depend only on the seed and the pixel, never on traversal order.
func (rt *Raytracer) pixelSampler(i, j int) core.Sampler {
	return core.NewSeededSampler(rt.config.Seed, uint64(j*rt.config.Width+i))
}

// sampleJitter draws the sub-pixel offset for one sample
func sampleJitter(sampler core.Sampler) core.Vec2 {
	u := sampler.Get2D()
	return core.NewVec2(core.SampleInterval(pixelJitter, u.X), core.SampleInterval(pixelJitter, u.Y))
}

// renderPixel accumulates samples for the pixel in column i, counted from the bottom row j
func (rt *Raytracer) renderPixel(i, j int) PixelStats {
	var stats PixelStats
	sampler := rt.pixelSampler(i, j)
	camera := rt.scene.Camera
	width, height := float64(rt.config.Width), float64(rt.config.Height)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		jitter := sampleJitter(sampler)
		s := (float64(i) + jitter.X) / width
		t := (float64(j) + jitter.Y) / height

		ray := camera.GetRay(s, t, sampler)
		ray.Direction = ray.Direction.Normalize()

		stats.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler))
	}

	return stats
}

// RenderPass renders every pixel with multi-sampling and returns the finished image
func (rt *Raytracer) RenderPass() (*ImageBuffer, RenderStats) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height
	img := NewImageBuffer(width, height)
	reporter, hasStats := rt.integrator.(pathStatsReporter)
	if hasStats {
		reporter.ResetStats()
	}

	rt.logger.Printf("Rendering %q (%d spheres) at %dx%d, %d samples per pixel, %d bounces\n",
		rt.scene.Name, rt.scene.GetPrimitiveCount(), width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	varianceSum := 0.0
	for j := height - 1; j >= 0; j-- {
		for i := 0; i < width; i++ {
			pixel := rt.renderPixel(i, j)
			varianceSum += pixel.GetMeanVariance()

			colorVec := pixel.GetColor().GammaCorrect(Gamma).Clamp(core.NewInterval(0, 1))
			img.Set(i, height-1-j, colorVec)
		}
	}

	pixels := width * height
	stats := RenderStats{
		Pixels:       pixels,
		Samples:      pixels * rt.config.SamplesPerPixel,
		MeanVariance: varianceSum / float64(pixels),
		Duration:     time.Since(start),
	}
	if hasStats {
		pathStats := reporter.Stats()
		stats.Scatters = pathStats.Scatters
		stats.Absorbed = pathStats.Absorbed
		stats.Escaped = pathStats.Escaped
		stats.Cutoff = pathStats.Cutoff
	}

	rt.logger.Printf("Render completed in %v: %d samples, %d scatters, %d absorbed, %d cut off\n",
		stats.Duration, stats.Samples, stats.Scatters, stats.Absorbed, stats.Cutoff)

	return img, stats
}
