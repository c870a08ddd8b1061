package pathsample

import "fmt"

type CommandKind int

const (
	// Move the pen without drawing. Moves have no length and produce no
	// samples.
	MoveToKind CommandKind = iota + 1
	// An absolute cubic Bézier with four control points.
	CubicKind
	// An absolute quadratic Bézier with three control points.
	QuadKind
)

// Command is a canonical path command. It acts as a tagged union of a move, a
// [CubicBez] and a [QuadBez].
//
// All coordinates are absolute. For curves, P0 is the current point before the
// command was applied.
type Command struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
	// Line is set for cubics lifted from line commands (L, H, V and their
	// relative forms). Their control points are collapsed onto the endpoints,
	// P1 == P0 and P2 == P3.
	Line bool
}

// MoveTo returns a move to pt.
func MoveTo(pt Point) Command {
	return Command{Kind: MoveToKind, P0: pt}
}

// CubicTo returns the cubic Bézier from p0 through p1 and p2 to p3.
func CubicTo(p0, p1, p2, p3 Point) Command {
	return Command{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3}
}

// QuadTo returns the quadratic Bézier from p0 through p1 to p2.
func QuadTo(p0, p1, p2 Point) Command {
	return Command{Kind: QuadKind, P0: p0, P1: p1, P2: p2}
}

// LineTo returns the line from p0 to p1, lifted to a cubic Bézier.
func LineTo(p0, p1 Point) Command {
	c := Line{p0, p1}.Cubic()
	return Command{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3, Line: true}
}

func (cmd Command) String() string {
	switch cmd.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", cmd.P0)
	case CubicKind:
		if cmd.Line {
			return fmt.Sprintf("LineTo(%s, %s)", cmd.P0, cmd.P3)
		}
		return fmt.Sprintf("CubicTo(%s, %s, %s, %s)", cmd.P0, cmd.P1, cmd.P2, cmd.P3)
	case QuadKind:
		return fmt.Sprintf("QuadTo(%s, %s, %s)", cmd.P0, cmd.P1, cmd.P2)
	default:
		return "InvalidCommand"
	}
}

// Cubic returns the cubic Bézier represented by this command. This is only
// valid when Kind == CubicKind.
func (cmd Command) Cubic() CubicBez { return CubicBez{cmd.P0, cmd.P1, cmd.P2, cmd.P3} }

// Quad returns the quadratic Bézier represented by this command. This is only
// valid when Kind == QuadKind.
func (cmd Command) Quad() QuadBez { return QuadBez{cmd.P0, cmd.P1, cmd.P2} }

// Chord returns the line between the command's endpoints.
func (cmd Command) Chord() Line { return Line{cmd.Start(), cmd.End()} }

// Start returns the first point of the command.
func (cmd Command) Start() Point {
	return cmd.P0
}

// End returns the point the pen rests on after the command.
func (cmd Command) End() Point {
	switch cmd.Kind {
	case CubicKind:
		return cmd.P3
	case QuadKind:
		return cmd.P2
	default:
		return cmd.P0
	}
}

// Arclen returns the arc length of the command. Moves have zero length.
func (cmd Command) Arclen() float64 {
	switch cmd.Kind {
	case CubicKind:
		return cmd.Cubic().Arclen()
	case QuadKind:
		return cmd.Quad().Arclen()
	default:
		return 0
	}
}

// Eval evaluates the command's curve at t. Lifted lines are evaluated along
// their chord, which traces the same points as the collapsed cubic but with
// uniform spacing in t. Moves evaluate to their target.
func (cmd Command) Eval(t float64) Point {
	switch cmd.Kind {
	case CubicKind:
		if cmd.Line {
			return cmd.Chord().Eval(t)
		}
		return cmd.Cubic().Eval(t)
	case QuadKind:
		return cmd.Quad().Eval(t)
	default:
		return cmd.P0
	}
}

// Transform applies aff to the command's points. Unused point fields stay
// zero.
func (cmd Command) Transform(aff Affine) Command {
	out := Command{Kind: cmd.Kind, Line: cmd.Line}
	switch cmd.Kind {
	case MoveToKind:
		out.P0 = cmd.P0.Transform(aff)
	case CubicKind:
		out.P0 = cmd.P0.Transform(aff)
		out.P1 = cmd.P1.Transform(aff)
		out.P2 = cmd.P2.Transform(aff)
		out.P3 = cmd.P3.Transform(aff)
	case QuadKind:
		out.P0 = cmd.P0.Transform(aff)
		out.P1 = cmd.P1.Transform(aff)
		out.P2 = cmd.P2.Transform(aff)
	}
	return out
}
