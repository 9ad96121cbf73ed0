package renderer

import (
	"image"
	"iter"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ImageBuffer holds final pixel colors with every channel in [0,1].
// Row 0 is the top of the image.
type ImageBuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImageBuffer creates a black image of the given size
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

func (b *ImageBuffer) Width() int  { return b.width }
func (b *ImageBuffer) Height() int { return b.height }

// At returns the color at column x, row y
func (b *ImageBuffer) At(x, y int) core.Vec3 {
	return b.pixels[y*b.width+x]
}

// Set stores the color at column x, row y
func (b *ImageBuffer) Set(x, y int, c core.Vec3) {
	b.pixels[y*b.width+x] = c
}

// Points yields every pixel coordinate in row-major order, top row first
func (b *ImageBuffer) Points() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				if !yield(image.Pt(x, y)) {
					return
				}
			}
		}
	}
}
