package pathsample

import "golang.org/x/sync/errgroup"

// integrateSpeed integrates |deriv(t)| over t ∈ [0, 1] with 7-point
// Legendre-Gauss quadrature, mapping the nodes from [-1, 1] via t = (x+1)/2.
func integrateSpeed(deriv func(t float64) Vec2) float64 {
	var sum float64
	for _, coeff := range gaussLegendreCoeffs7 {
		wi, xi := coeff[0], coeff[1]
		sum += 0.5 * wi * deriv((xi+1)/2).Hypot()
	}
	return sum
}

// Lengths returns the arc length of every command. Moves have zero length.
func Lengths(cmds []Command) []float64 {
	out := make([]float64, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.Arclen()
	}
	return out
}

// TotalLength returns the sum of the arc lengths of all commands.
func TotalLength(cmds []Command) float64 {
	var total float64
	for _, l := range Lengths(cmds) {
		total += l
	}
	return total
}

// lengthsParallel is like [Lengths] but measures up to workers commands
// concurrently.
func lengthsParallel(cmds []Command, workers int) []float64 {
	if workers <= 1 {
		return Lengths(cmds)
	}
	out := make([]float64, len(cmds))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, cmd := range cmds {
		g.Go(func() error {
			out[i] = cmd.Arclen()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Table of Legendre-Gauss quadrature coefficients as (weight, node) pairs,
// adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
//
// Rounded to four digits these are (-0.9491, 0.1295), (-0.7415, 0.2797),
// (-0.4058, 0.3818), (0, 0.4180) and the mirrored nodes.
var gaussLegendreCoeffs7 = [...][2]float64{
	{0.4179591836734694, 0.0000000000000000},
	{0.3818300505051189, -0.4058451513773972},
	{0.3818300505051189, 0.4058451513773972},
	{0.2797053914892766, -0.7415311855993945},
	{0.2797053914892766, 0.7415311855993945},
	{0.1294849661688697, -0.9491079123427585},
	{0.1294849661688697, 0.9491079123427585},
}
