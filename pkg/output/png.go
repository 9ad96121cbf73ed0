package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"
)

// newContext paints img onto a gg drawing context, one pixel at a time
func newContext(img Image) *gg.Context {
	ctx := gg.NewContext(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.At(x, y)
			ctx.SetRGB255(int(channelByte(c.X)), int(channelByte(c.Y)), int(channelByte(c.Z)))
			ctx.SetPixel(x, y)
		}
	}
	return ctx
}

// WritePNG encodes img as a PNG
func WritePNG(w io.Writer, img Image) error {
	if err := newContext(img).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePNGFile creates path and writes img to it as a PNG
func WritePNGFile(path string, img Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	return WritePNG(file, img)
}
