package pathsample

import "testing"

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	diff(t, q.Eval(0), q.P0)
	diff(t, q.Eval(1), q.P2)
	diff(t, q.Eval(0.5), Pt(50, 50))
	diff(t, q.Eval(0.25), Pt(25, 37.5))
}

func TestQuadBezDeriv(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	diff(t, q.Deriv(0), Vec2{100, 200})
	diff(t, q.Deriv(0.5), Vec2{100, 0})
	diff(t, q.Deriv(1), Vec2{100, -200})
}
