// bbmandelbrot renders the Mandelbrot set to a binary PGM file.
//
// All arguments are positional and optional:
//
//	bbmandelbrot [FILE [WxH [TOPLEFT [BOTTOMRIGHT]]]]
//
// FILE defaults to mandelbrot.pgm, the resolution to 1000x750 and the
// viewport corners to -2.0,1.0 and 1.0,-1.0.
package main

import (
	"fmt"
	"log"
	"os"

	mandel "github.com/SimonWaldherr/bbmandelbrot"
	"github.com/SimonWaldherr/bbmandelbrot/pgm"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [FILE [WxH [TOPLEFT [BOTTOMRIGHT]]]]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "example: %s mandel.pgm 1000x750 -2.0,1.0 1.0,-1.0\n", os.Args[0])
}

func main() {
	if len(os.Args) > 5 {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(args []string) error {
	filename := "mandelbrot.pgm"
	dims := mandel.Dimensions{Width: 1000, Height: 750}
	view := mandel.FullSet

	var err error
	if len(args) > 0 {
		filename = args[0]
	}
	if len(args) > 1 {
		if dims, err = parseDimensions(args[1]); err != nil {
			return fmt.Errorf("resolution %q: %w", args[1], err)
		}
	}
	if len(args) > 2 {
		if view.TopLeft, err = parsePoint(args[2]); err != nil {
			return fmt.Errorf("top-left corner %q: %w", args[2], err)
		}
	}
	if len(args) > 3 {
		if view.BottomRight, err = parsePoint(args[3]); err != nil {
			return fmt.Errorf("bottom-right corner %q: %w", args[3], err)
		}
	}

	pix := make([]byte, dims.Width*dims.Height)
	mandel.Render(pix, dims, view, 0, nil)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %q: %w", filename, err)
	}
	if err := pgm.Encode(f, pix, dims.Width, dims.Height); err != nil {
		f.Close()
		return fmt.Errorf("write %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", filename, err)
	}

	log.Printf("rendered %dx%d image saved to %q", dims.Width, dims.Height, filename)
	return nil
}
