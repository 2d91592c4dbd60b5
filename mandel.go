// Package mandel renders the Mandelbrot set into 8-bit grayscale pixel
// buffers. The image is split into horizontal bands that are rendered
// concurrently; bands never overlap, so workers need no synchronization
// beyond the final join.
package mandel

// Dimensions is the pixel size of an image or of a band within it.
type Dimensions struct {
	Width, Height int
}

// Viewport is the rectangle of the complex plane that the pixel grid
// represents. TopLeft normally has the larger imaginary part; a flipped
// viewport is tolerated and simply renders upside down.
type Viewport struct {
	TopLeft, BottomRight Point
}

// PixelToPoint maps the pixel at (col, row) onto the complex plane.
// Rows grow downward while the imaginary axis grows upward, hence the
// subtraction on the imaginary component.
//
// No bounds checking is done. col == dims.Width and row == dims.Height are
// meaningful inputs: they yield the lower-right corner of the viewport and
// are used to compute band corners.
func PixelToPoint(dims Dimensions, col, row int, v Viewport) Point {
	spanRe := v.BottomRight.Re - v.TopLeft.Re
	spanIm := v.TopLeft.Im - v.BottomRight.Im
	return Point{
		Re: v.TopLeft.Re + float64(col)*spanRe/float64(dims.Width),
		Im: v.TopLeft.Im - float64(row)*spanIm/float64(dims.Height),
	}
}
