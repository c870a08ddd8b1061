package pathsample

import "log/slog"

// DefaultBudget is the sample budget used by [Points].
const DefaultBudget = 100

// Options configures a [Sampler].
type Options struct {
	// Budget is the target total number of samples for the whole path. It
	// must be at least 1.
	Budget int
	// Dedup selects how duplicate samples are removed. The zero value
	// removes all duplicates.
	Dedup DedupMode
	// KeepYDown skips the conversion to y-up Cartesian coordinates and
	// returns samples in the coordinate system of the path data.
	KeepYDown bool
	// Transform, if not nil, is applied to the commands after the
	// Cartesian conversion.
	Transform *Affine
	// Workers bounds the number of curves measured and sampled
	// concurrently. Values below 2 disable concurrency.
	Workers int
}

// Sampler converts path strings to point sequences.
//
// The zero value is not usable; the budget must be set.
type Sampler struct {
	Options
}

// NewSampler returns a sampler with the given options.
func NewSampler(opts Options) *Sampler {
	return &Sampler{Options: opts}
}

// ParsePath tokenizes and canonicalizes a path string.
func ParsePath(path string) ([]Command, error) {
	toks, err := Tokenize(path)
	if err != nil {
		return nil, err
	}
	return Canonicalize(toks)
}

// Commands parses path and maps it to the sampler's output coordinate system.
func (s Sampler) Commands(path string) ([]Command, error) {
	cmds, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if !s.KeepYDown {
		cmds = Cartesian(cmds)
	}
	if s.Transform != nil {
		cmds = Transform(cmds, *s.Transform)
	}
	return cmds, nil
}

// Points converts a path string to its sample points: the path is parsed,
// mapped to Cartesian coordinates, sampled and deduplicated.
//
// A path of zero length returns its single point, if any, together with
// [ErrDegeneratePath].
func (s Sampler) Points(path string) ([]Point, error) {
	cmds, err := s.Commands(path)
	if err != nil {
		return nil, err
	}
	pts, err := s.Sample(cmds)
	if err != nil {
		return pts, err
	}
	pts = s.Dedup.apply(pts)
	b := Bounds(pts)
	Logger().Debug("sampled path",
		slog.Int("points", len(pts)),
		slog.String("dedup", s.Dedup.String()),
		slog.Any("bounds", b),
		slog.Float64("width", b.Width()),
		slog.Float64("height", b.Height()))
	return pts, nil
}

// Points converts a path string to at most about n+1 distinct Cartesian
// sample points, using the default options otherwise.
func Points(path string, n int) ([]Point, error) {
	return Sampler{Options: Options{Budget: n}}.Points(path)
}
