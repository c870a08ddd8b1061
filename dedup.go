package pathsample

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// DedupMode selects how a [Sampler] removes duplicate points.
type DedupMode int

const (
	// Remove every point that rounds to a point seen earlier. See [Dedup].
	DedupModeAll DedupMode = iota
	// Remove points equal to their predecessor. See [DedupAdjacent].
	DedupModeAdjacent
	// Keep all points.
	DedupModeNone
)

func (m DedupMode) String() string {
	switch m {
	case DedupModeAll:
		return "all"
	case DedupModeAdjacent:
		return "adjacent"
	case DedupModeNone:
		return "none"
	default:
		return fmt.Sprintf("DedupMode(%d)", int(m))
	}
}

// ParseDedupMode parses the names returned by [DedupMode.String].
func ParseDedupMode(s string) (DedupMode, error) {
	switch s {
	case "all", "":
		return DedupModeAll, nil
	case "adjacent":
		return DedupModeAdjacent, nil
	case "none":
		return DedupModeNone, nil
	default:
		return 0, fmt.Errorf("pathsample: unknown dedup mode %q", s)
	}
}

func (m DedupMode) apply(pts []Point) []Point {
	switch m {
	case DedupModeAdjacent:
		return DedupAdjacent(pts)
	case DedupModeNone:
		return pts
	default:
		return Dedup(pts)
	}
}

type pointKey struct {
	x, y float64
	// Set for coordinates that were too large to be rounded and are stored
	// as is, so that they can't collide with scaled ones.
	rawX, rawY bool
}

// key returns the point's coordinates rounded to [KeyPrecision] decimal
// places. Points that are equal under [Point.Equal] almost always have the
// same key.
func (pt Point) key() pointKey {
	x, okX := roundTo(pt.X, KeyPrecision)
	y, okY := roundTo(pt.Y, KeyPrecision)
	return pointKey{x: x, y: y, rawX: !okX, rawY: !okY}
}

// roundTo returns v·10^places rounded to the nearest integer. Negative zero
// is returned as positive zero. If the scaled value overflows, v is returned
// unchanged with ok set to false; such values have no fractional digits left
// to round.
func roundTo[F constraints.Float](v F, places int) (r F, ok bool) {
	scaled := float64(v) * math.Pow10(places)
	if math.IsInf(scaled, 0) {
		return v, false
	}
	r = F(math.Round(scaled))
	if r == 0 {
		return 0, true
	}
	return r, true
}

// Dedup returns the distinct points of pts. Two points are the same if their
// coordinates agree after rounding to [KeyPrecision] decimal places.
//
// The result is a set; callers must not depend on its order. The current
// implementation keeps the first occurrence of every point in input order.
func Dedup(pts []Point) []Point {
	seen := make(map[pointKey]struct{}, len(pts))
	out := make([]Point, 0, len(pts))
	for _, pt := range pts {
		k := pt.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, pt)
	}
	return out
}

// DedupAdjacent removes points that are [Point.Equal] to the point before
// them, preserving order. Unlike [Dedup], a path that revisits a point keeps
// every visit.
func DedupAdjacent(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, pt := range pts {
		if len(out) > 0 && out[len(out)-1].Equal(pt) {
			continue
		}
		out = append(out, pt)
	}
	return out
}
