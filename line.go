package pathsample

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Cubic returns the line as a cubic Bézier whose control points are collapsed
// onto the endpoints.
func (l Line) Cubic() CubicBez {
	return CubicBez{l.P0, l.P0, l.P1, l.P1}
}

// Eval evaluates the line at parameter t. t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	if t == 1 {
		return l.P1
	}
	return l.P0.Lerp(l.P1, t)
}
