package pathsample

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Lines writes lifted lines as L commands instead of C commands.
	Lines bool
}

// SVG converts canonical commands back to a string of path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(cmds []Command, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, cmds, opts)
	return sb.String()
}

// WriteSVG converts canonical commands to a string of absolute path commands
// and writes it to w. Coordinates are separated by spaces so that the output
// can be read back by [ParsePath]. With [SVGOptions.Lines] set, this yields
// the same commands; otherwise lifted lines come back as plain cubics, which
// sample at the cubic's uneven spacing.
//
// Commands are written as-is; a curve that doesn't start where the previous
// command ended is written without an intermediate move.
func WriteSVG(w io.Writer, cmds []Command, opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			if strings.Contains(s, ".") {
				s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
			}
			return s
		}
	}

	for i, cmd := range cmds {
		if err != nil {
			return err
		}
		if i > 0 {
			write(space)
		}
		switch cmd.Kind {
		case MoveToKind:
			writef("M %s %s", format(cmd.P0.X), format(cmd.P0.Y))
		case CubicKind:
			if cmd.Line && opts.Lines {
				writef("L %s %s", format(cmd.P3.X), format(cmd.P3.Y))
				continue
			}
			writef("C %s %s %s %s %s %s",
				format(cmd.P1.X), format(cmd.P1.Y),
				format(cmd.P2.X), format(cmd.P2.Y),
				format(cmd.P3.X), format(cmd.P3.Y))
		case QuadKind:
			writef("Q %s %s %s %s",
				format(cmd.P1.X), format(cmd.P1.Y),
				format(cmd.P2.X), format(cmd.P2.Y))
		default:
			panic("unreachable")
		}
	}
	return err
}
