package pathsample

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Arclen returns the arc length of the cubic Bézier, integrating the
// magnitude of [CubicBez.Deriv] with 7-point Legendre-Gauss quadrature.
//
// The result is exact for lines, including lines expressed as cubics with
// collapsed control points, and approximate otherwise. Curves with sharp
// bends or cusps are underestimated.
func (c CubicBez) Arclen() float64 {
	return integrateSpeed(c.Deriv)
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the derivative of the curve at t, B'(t) = 3at² + 2bt + c with
// c = 3(p1-p0), b = 3(p2-p1) - c and a = p3-p0-c-b.
func (c CubicBez) Deriv(t float64) Vec2 {
	cc := c.P1.Sub(c.P0).Mul(3)
	bb := c.P2.Sub(c.P1).Mul(3).Sub(cc)
	aa := c.P3.Sub(c.P0).Sub(cc).Sub(bb)
	return aa.Mul(3 * t * t).Add(bb.Mul(2 * t)).Add(cc)
}
