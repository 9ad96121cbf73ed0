package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePPM writes img as a plain-text P3 pixel map, top row first
func WritePPM(w io.Writer, img Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", channelByte(c.X), channelByte(c.Y), channelByte(c.Z)); err != nil {
				return fmt.Errorf("failed to write PPM pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// WritePPMFile creates path and writes img to it as a PPM
func WritePPMFile(path string, img Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	return WritePPM(file, img)
}
