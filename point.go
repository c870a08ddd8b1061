package pathsample

import (
	"fmt"
	"math"
)

// Epsilon is the per-coordinate tolerance used by [Point.Equal].
const Epsilon = 1e-10

// KeyPrecision is the number of decimal places coordinates are rounded to
// before points are hashed for deduplication.
const KeyPrecision = 10

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Equal reports whether both coordinates of pt and o differ by less than
// [Epsilon].
func (pt Point) Equal(o Point) bool {
	return math.Abs(pt.X-o.X) < Epsilon && math.Abs(pt.Y-o.Y) < Epsilon
}
