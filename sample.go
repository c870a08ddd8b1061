package pathsample

import (
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
)

// Budget distributes a total sample budget of n points over the curves of a
// path, proportionally to each curve's share of the total arc length.
//
// It returns the number of parameter steps for each command, which is
// round(n * length / total) for curves and 0 for moves, as well as the total
// length. A path of zero length fails with [ErrDegeneratePath], a path whose
// length overflows float64 with [ErrNonFinite].
//
// Because every curve is rounded independently, the steps sum to n only
// approximately, within one step per curve.
func Budget(cmds []Command, n int) ([]int, float64, error) {
	return budget(Lengths(cmds), n)
}

func budget(lengths []float64, n int) ([]int, float64, error) {
	if n < 1 {
		return nil, 0, ErrInvalidBudget
	}
	var total float64
	for i, l := range lengths {
		if math.IsInf(l, 0) || math.IsNaN(l) {
			return nil, 0, fmt.Errorf("command %d: %w", i, ErrNonFinite)
		}
		total += l
	}
	if math.IsInf(total, 0) {
		return nil, 0, ErrNonFinite
	}
	if total == 0 {
		return nil, total, ErrDegeneratePath
	}
	steps := make([]int, len(lengths))
	for i, l := range lengths {
		steps[i] = int(math.Round(float64(n) * (l / total)))
	}
	return steps, total, nil
}

// Sample evaluates every curve of a path at a number of evenly spaced
// parameter values determined by [Budget].
//
// A curve with s steps contributes the s+1 points at t = i/s for i = 0..s,
// including both of its endpoints, so the endpoint of one curve and the start
// of the next are both present. A curve with 0 steps contributes only its
// start point. Moves contribute nothing. Points are returned in path order.
//
// If the path has zero length, Sample returns the path's first point, if
// any, together with [ErrDegeneratePath].
func Sample(cmds []Command, n int) ([]Point, error) {
	return Sampler{Options: Options{Budget: n}}.Sample(cmds)
}

// Sample is like the package-level [Sample] but uses the sampler's budget and
// worker count. It neither transforms nor deduplicates.
func (s Sampler) Sample(cmds []Command) ([]Point, error) {
	lengths := lengthsParallel(cmds, s.Workers)
	steps, total, err := budget(lengths, s.Budget)
	if err != nil {
		if err == ErrDegeneratePath && len(cmds) > 0 {
			return []Point{cmds[0].Start()}, err
		}
		return nil, err
	}
	log := Logger()
	log.Debug("sampling path",
		slog.Int("commands", len(cmds)),
		slog.Float64("length", total),
		slog.Int("budget", s.Budget))

	parts := make([][]Point, len(cmds))
	if s.Workers <= 1 {
		for i, cmd := range cmds {
			parts[i] = sampleCommand(cmd, steps[i])
		}
	} else {
		var g errgroup.Group
		g.SetLimit(s.Workers)
		for i, cmd := range cmds {
			g.Go(func() error {
				parts[i] = sampleCommand(cmd, steps[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	var size int
	for i, part := range parts {
		size += len(part)
		if cmds[i].Kind != MoveToKind {
			log.Debug("sampled curve",
				slog.Int("index", i),
				slog.Any("command", cmds[i]),
				slog.Float64("length", lengths[i]),
				slog.Int("steps", steps[i]))
		}
	}
	out := make([]Point, 0, size)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

func sampleCommand(cmd Command, steps int) []Point {
	if cmd.Kind == MoveToKind {
		return nil
	}
	if steps == 0 {
		return []Point{cmd.Eval(0)}
	}
	out := make([]Point, steps+1)
	for i := range steps + 1 {
		out[i] = cmd.Eval(float64(i) / float64(steps))
	}
	return out
}
