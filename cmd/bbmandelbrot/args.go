package main

import (
	"fmt"
	"strconv"
	"strings"

	mandel "github.com/SimonWaldherr/bbmandelbrot"
)

// parsePair splits s at the first sep and parses both halves with parse.
func parsePair[T any](s, sep string, parse func(string) (T, error)) (T, T, error) {
	var zero T
	left, right, found := strings.Cut(s, sep)
	if !found {
		return zero, zero, fmt.Errorf("missing %q separator", sep)
	}
	a, err := parse(left)
	if err != nil {
		return zero, zero, err
	}
	b, err := parse(right)
	if err != nil {
		return zero, zero, err
	}
	return a, b, nil
}

// parseDimensions parses a WIDTHxHEIGHT resolution string.
func parseDimensions(s string) (mandel.Dimensions, error) {
	w, h, err := parsePair(s, "x", parseExtent)
	if err != nil {
		return mandel.Dimensions{}, err
	}
	return mandel.Dimensions{Width: w, Height: h}, nil
}

func parseExtent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid pixel count", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("pixel count %d must be at least 1", n)
	}
	return n, nil
}

// parsePoint parses a RE,IM complex point string.
func parsePoint(s string) (mandel.Point, error) {
	re, im, err := parsePair(s, ",", func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a valid number", s)
		}
		return f, nil
	})
	if err != nil {
		return mandel.Point{}, err
	}
	return mandel.Point{Re: re, Im: im}, nil
}
