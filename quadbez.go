package pathsample

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Arclen returns the arc length of the quadratic Bézier segment, using the same
// quadrature as [CubicBez.Arclen].
func (q QuadBez) Arclen() float64 {
	return integrateSpeed(q.Deriv)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(q.P0).Mul(mt * mt).
		Add(Vec2(q.P1).Mul(mt * 2.0).
			Add(Vec2(q.P2).Mul(t)).
			Mul(t))
	return Point(v)
}

// Deriv returns the derivative of the curve at t, 2(1-t)(p1-p0) + 2t(p2-p1).
func (q QuadBez) Deriv(t float64) Vec2 {
	return q.P1.Sub(q.P0).Mul(2 * (1 - t)).Add(q.P2.Sub(q.P1).Mul(2 * t))
}
