package mandel

// MaxIter is the iteration cap used by the renderer. 255 makes escape
// counts map 1:1 onto the 8-bit gray range.
const MaxIter = 255

// bailoutSquared is the squared bailout radius 2, the canonical Mandelbrot
// escape threshold.
const bailoutSquared = 4.0

// EscapeTime iterates z ← z² + c from z = 0 and reports the iteration at
// which the orbit leaves the bailout radius. The orbit is tested after
// each update, so a point already outside the radius escapes at count 0
// for any limit. escaped is false if the orbit stays bounded for limit
// iterations, meaning c is taken to be in the set.
func EscapeTime(c Point, limit int) (count int, escaped bool) {
	var z Point
	for i := 0; i < limit; i++ {
		z = z.Mul(z).Add(c)
		if z.SquaredNorm() > bailoutSquared {
			return i, true
		}
	}
	return 0, false
}
