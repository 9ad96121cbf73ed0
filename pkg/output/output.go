// Package output encodes finished images to files.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Image is a finished grid of colors with every channel in [0,1].
// Row 0 is the top of the image.
type Image interface {
	Width() int
	Height() int
	At(x, y int) core.Vec3
}

// Format names a supported file format
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// FormatFromPath picks the encoder from the file extension
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Write encodes img to path in the format matching its extension
func Write(path string, img Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatPNG:
		return WritePNGFile(path, img)
	default:
		return WritePPMFile(path, img)
	}
}

// channelByte maps a [0,1] channel onto 0..255 so that 1.0 becomes 255
func channelByte(c float64) uint8 {
	return uint8(255.999 * core.NewInterval(0, 1).Clamp(c))
}
