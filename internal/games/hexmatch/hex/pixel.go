package hex

import "math"

// Point is a position in pixel (or terminal cell) space.
type Point struct {
	X float64
	Y float64
}

var sqrt3 = math.Sqrt(3)

// AxialToPixel returns the center of a flat-top hex of the given size.
func AxialToPixel(c Coord, center Point, size float64) Point {
	return Point{
		X: center.X + size*(1.5*float64(c.Q)),
		Y: center.Y + size*(sqrt3/2*float64(c.Q)+sqrt3*float64(c.R)),
	}
}

// PixelToAxial returns the hex containing the given point. It is the exact
// inverse of AxialToPixel at hex centers.
func PixelToAxial(p Point, center Point, size float64) Coord {
	x := (p.X - center.X) / size
	y := (p.Y - center.Y) / size

	q := 2.0 / 3.0 * x
	r := -1.0/3.0*x + sqrt3/3.0*y
	return cubeRound(q, r, -q-r)
}

// cubeRound rounds fractional cube coordinates to the nearest hex, fixing the
// component with the largest rounding error so that q+r+s stays 0.
func cubeRound(fq, fr, fs float64) Coord {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return C(int(q), int(r))
}
