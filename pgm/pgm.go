// Package pgm writes binary (P5) portable graymap images.
package pgm

import (
	"fmt"
	"io"
)

// Header returns the P5 header for a width x height image with the maximum
// gray value 255. The exact byte layout matters: standard viewers expect
// three newline-terminated ASCII lines followed immediately by the raster.
func Header(width, height int) []byte {
	return []byte(fmt.Sprintf("P5\n%d %d\n255\n", width, height))
}

// Encode writes pix as a binary graymap. pix must hold exactly
// width*height bytes, row-major.
func Encode(w io.Writer, pix []byte, width, height int) error {
	if len(pix) != width*height {
		return fmt.Errorf("pgm: pixel buffer holds %d bytes, want %d*%d=%d", len(pix), width, height, width*height)
	}
	if _, err := w.Write(Header(width, height)); err != nil {
		return fmt.Errorf("pgm: write header: %w", err)
	}
	if _, err := w.Write(pix); err != nil {
		return fmt.Errorf("pgm: write raster: %w", err)
	}
	return nil
}
