package pathsample

import (
	"testing"
)

func TestSVG(t *testing.T) {
	cmds := mustParse(t, "M 20 50 l 80 0 Q 300 200 350 150 c -50 -50 -100 -70 -150 50")
	diff(t, "M 20 50 C 20 50 100 50 100 50 Q 300 200 350 150 C 300 100 250 80 200 200", SVG(cmds, SVGOptions{}))
	diff(t, "M 20 50 L 100 50 Q 300 200 350 150 C 300 100 250 80 200 200", SVG(cmds, SVGOptions{Lines: true}))
}

func TestSVGPrecision(t *testing.T) {
	cmds := []Command{MoveTo(Pt(1.0/3.0, 2)), LineTo(Pt(1.0/3.0, 2), Pt(0.5, 10))}
	diff(t, "M 0.333 2 L 0.5 10", SVG(cmds, SVGOptions{MaxPrecision: 3, Lines: true}))
}

func TestSVGRoundTrip(t *testing.T) {
	path := "M 20 50 L 100 50 l 50 -30 H 200 h 50 V 100 v 50 Q 300 200 350 150 q -30 -30 -50 -50 C 250 50 200 30 150 150 c 50 30 100 50 150 20"
	cmds := mustParse(t, path)
	diff(t, cmds, mustParse(t, SVG(cmds, SVGOptions{Lines: true})))
}

func TestSVGLinesAsCubics(t *testing.T) {
	// Without Lines, a lifted line comes back as a plain cubic with the same
	// control points.
	cmds := mustParse(t, "M 0 0 L 10 0")
	got := mustParse(t, SVG(cmds, SVGOptions{}))
	want := []Command{cmds[0], CubicTo(Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0))}
	diff(t, want, got)
	if got[1].Line {
		t.Errorf("got %v, want a plain cubic", got[1])
	}
}
