package pathsample

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Note that this convention is transposed from PostScript and Direct2D, but is
// consistent with the [Wikipedia] formulation of affine transformation as
// augmented matrix.
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY is a transform that is flipped on the y-axis. It converts between the
// y-down convention of path data and the y-up Cartesian convention.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Transform applies aff to every point of every command. Command kinds and
// the lifted-line marker are left alone.
func Transform(cmds []Command, aff Affine) []Command {
	out := make([]Command, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.Transform(aff)
	}
	return out
}

// Cartesian converts commands from the y-down convention of path data to the
// y-up Cartesian convention by negating every y coordinate. Applying it twice
// returns the original commands.
func Cartesian(cmds []Command) []Command {
	return Transform(cmds, FlipY)
}
