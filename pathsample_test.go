package pathsample

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPointsLine(t *testing.T) {
	got, err := Points("M 0 0 L 10 0", 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{Pt(0, 0), Pt(2.5, 0), Pt(5, 0), Pt(7.5, 0), Pt(10, 0)}
	diff(t, want, got)
}

func TestPointsCartesian(t *testing.T) {
	got, err := Points("M 0 0 v 10 h 10", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{Pt(0, 0), Pt(0, -10), Pt(10, -10)}
	diff(t, want, got, approx(1e-12))

	got, err = NewSampler(Options{Budget: 2, KeepYDown: true}).Points("M 0 0 v 10 h 10")
	if err != nil {
		t.Fatal(err)
	}
	want = []Point{Pt(0, 0), Pt(0, 10), Pt(10, 10)}
	diff(t, want, got, approx(1e-12))
}

func TestPointsTransform(t *testing.T) {
	aff := Scale(2, 2)
	got, err := NewSampler(Options{Budget: 1, Transform: &aff}).Points("M 1 1 L 2 1")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(2, -2), Pt(4, -2)}, got)
}

func TestPointsDedupModes(t *testing.T) {
	// A closed square revisits its start.
	path := "M 0 0 h 1 v 1 h -1 v -1"
	all, err := NewSampler(Options{Budget: 4}).Points(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("got %d points, want 4: %v", len(all), all)
	}

	adjacent, err := NewSampler(Options{Budget: 4, Dedup: DedupModeAdjacent}).Points(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(adjacent) != 5 || adjacent[0] != adjacent[4] {
		t.Errorf("got %v, want the closed square with 5 points", adjacent)
	}

	none, err := NewSampler(Options{Budget: 4, Dedup: DedupModeNone}).Points(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 8 {
		t.Errorf("got %d points, want 8", len(none))
	}
}

func TestPointsErrors(t *testing.T) {
	tests := []struct {
		path string
		n    int
		err  error
	}{
		{"M 0 0 L 1,1", 10, ErrTokenize},
		{"L 1 1", 10, ErrMissingInitialMove},
		{"M 0 0 C 1 1", 10, ErrInsufficientArguments},
		{"M 5 5", 10, ErrDegeneratePath},
		{"", 10, ErrDegeneratePath},
		{"M 0 0 L 1 1", 0, ErrInvalidBudget},
	}
	for _, tt := range tests {
		if _, err := Points(tt.path, tt.n); !errors.Is(err, tt.err) {
			t.Errorf("%q: got error %v, want %v", tt.path, err, tt.err)
		}
	}

	pts, _ := Points("M 5 5", 10)
	diff(t, []Point{Pt(5, -5)}, pts)
}

func TestPointsMixedPath(t *testing.T) {
	// Every segment of the path is covered; the number of distinct points
	// stays close to the budget.
	path := "M 20 50 L 100 50 l 50 -30 H 200 h 50 V 100 v 50 Q 300 200 350 150 q -30 -30 -50 -50 C 250 50 200 30 150 150 c 50 30 100 50 150 20"
	const n = 1000
	pts, err := Points(path, n)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) < n-20 || len(pts) > n+20 {
		t.Errorf("got %d points for a budget of %d", len(pts), n)
	}
	for _, want := range []Point{Pt(20, -50), Pt(100, -50), Pt(150, -20), Pt(250, -150), Pt(300, -170)} {
		found := false
		for _, pt := range pts {
			if pt.Equal(want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing point %s", want)
		}
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := Points("M 0 0 L 10 0", 4); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{"sampling path", "length=", "sampled curve", "steps=4", "budget=4", "width=10", "height=0"} {
		if !strings.Contains(out, s) {
			t.Errorf("log output %q doesn't contain %q", out, s)
		}
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := Points("M 0 0 L 10 0", 4); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got log output %q after disabling logging", buf.String())
	}
}
