package renderer

import (
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Pixels       int           // Total number of pixels rendered
	Samples      int           // Total number of samples taken, one camera ray each
	Scatters     int           // Surface interactions that continued the path
	Absorbed     int           // Paths ended by a material
	Escaped      int           // Rays that reached the background
	Cutoff       int           // Paths ended by the bounce limit
	MeanVariance float64       // Mean per-pixel variance of the luminance estimate
	Duration     time.Duration // Wall time of the pass
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// GetVariance returns the unbiased sample variance of the luminance.
// Fewer than two samples carry no variance information and report 0.
func (ps *PixelStats) GetVariance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := (ps.LuminanceSqAccum - n*mean*mean) / (n - 1)
	return max(0, variance)
}

// GetMeanVariance returns the variance of the pixel's averaged luminance
func (ps *PixelStats) GetMeanVariance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	return ps.GetVariance() / float64(ps.SampleCount)
}

// CalculateAverageLuminance returns the mean luminance over every pixel of the buffer
func CalculateAverageLuminance(img *ImageBuffer) float64 {
	count := img.Width() * img.Height()
	if count == 0 {
		return 0
	}
	total := 0.0
	for p := range img.Points() {
		total += img.At(p.X, p.Y).Luminance()
	}
	return total / float64(count)
}
