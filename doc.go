// Package pathsample converts 2D vector paths into sequences of sample
// points whose density follows the arc length of the path.
//
// # Paths
//
// Paths are written in a small subset of the SVG path language: the commands
// M, L, H, V, Q and C and their relative lower-case forms, each followed by
// its numeric arguments (2 for M and L, 1 for H and V, 4 for Q, 6 for C).
// Tokens are separated by whitespace; a negative number may directly follow a
// command letter, as in "M-5 10". Other commands, such as elliptical arcs,
// smooth curves and close path, are silently skipped.
//
// # Pipeline
//
// A path string goes through the following stages:
//
//   - [Tokenize] splits it into command letters and numbers.
//   - [Canonicalize] resolves relative commands and rewrites every drawing
//     command as an absolute cubic or quadratic Bézier ([Command]). Lines are
//     lifted to cubics whose control points coincide with their endpoints.
//   - [Cartesian] converts from the y-down convention of path data to y-up
//     Cartesian coordinates.
//   - [Budget] measures every curve with Legendre-Gauss quadrature and
//     distributes the sample budget proportionally to length.
//   - [Sample] evaluates each curve at evenly spaced parameter values.
//   - [Dedup] removes duplicate points, such as the shared endpoints of
//     adjacent curves.
//
// [Points] and [Sampler] run the whole pipeline.
//
// # Errors
//
// Malformed numbers fail with a [*TokenizeError]; drawing before the first
// move and missing arguments fail with a [*CommandError] wrapping
// [ErrMissingInitialMove] or [ErrInsufficientArguments]. Paths of zero length
// fail with [ErrDegeneratePath], paths too large to measure in float64 with
// [ErrNonFinite]. Use [errors.Is] to tell them apart.
package pathsample
