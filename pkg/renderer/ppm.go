package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM encodes an image in the plain-text PPM (P3) format: a header
// with the dimensions and maximum channel value, then one "R G B" line
// per pixel in row-major order starting from the top scanline.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
