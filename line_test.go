package pathsample

import "testing"

func TestLineEval(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	for i, want := range []Point{Pt(0, 0), Pt(2.5, 0), Pt(5, 0), Pt(7.5, 0), Pt(10, 0)} {
		diff(t, l.Eval(float64(i)/4), want)
	}
}

func TestLineEvalEndpoint(t *testing.T) {
	// Interpolation mustn't drift off the endpoint due to rounding.
	l := Line{Pt(0.1, 0.7), Pt(1e7+0.3, -3.3)}
	if got := l.Eval(1); got != l.P1 {
		t.Errorf("got %v, want %v", got, l.P1)
	}
}
