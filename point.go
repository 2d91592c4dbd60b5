package mandel

// Point is a point in the complex plane. It is a plain value type; two
// points with the same components are the same point.
type Point struct {
	Re, Im float64
}

// Add returns the complex sum a+b.
func (a Point) Add(b Point) Point {
	return Point{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Mul returns the complex product a*b.
func (a Point) Mul(b Point) Point {
	return Point{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// SquaredNorm returns |a|² without taking the square root. The escape test
// compares it against the squared bailout radius, so the root is never
// needed.
func (a Point) SquaredNorm() float64 {
	return a.Re*a.Re + a.Im*a.Im
}
