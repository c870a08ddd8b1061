package pathsample

// cursor is the state threaded from one command to the next during
// canonicalization.
type cursor struct {
	// pos is the current point.
	pos Point
	// moved is set once the first move has been processed. Before that, pos
	// is undefined.
	moved bool
	// last is the most recent recognised command letter, or 0 if numbers
	// can't continue a command.
	last byte
}

// arity returns the number of numeric arguments command c takes, or -1 if c
// isn't supported.
func arity(c byte) int {
	switch c {
	case 'M', 'm', 'L', 'l':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'Q', 'q':
		return 4
	case 'C', 'c':
		return 6
	default:
		return -1
	}
}

// repeated returns the command implied by extra argument groups after c.
func repeated(c byte) byte {
	switch c {
	case 'M':
		return 'L'
	case 'm':
		return 'l'
	default:
		return c
	}
}

// Canonicalize converts a token sequence into canonical commands: moves,
// absolute cubic Béziers and absolute quadratic Béziers. Lines (L, H, V) are
// lifted to cubics with collapsed control points, relative commands are
// resolved against the current point.
//
// The current point is always the first control point of a curve. Q takes the
// remaining control point and the end point, C the remaining two control
// points and the end point.
//
// Numbers following a complete command repeat it, with M and m continuing as
// L and l. Unsupported command letters are skipped along with their numbers.
// A drawing command before the first move fails with
// [ErrMissingInitialMove], a command that runs out of numbers with
// [ErrInsufficientArguments]. Both are wrapped in a [*CommandError].
func Canonicalize(toks []Token) ([]Command, error) {
	var cur cursor
	out := make([]Command, 0, len(toks)/3)
	var args [6]float64
	for i := 0; i < len(toks); {
		idx := i
		var letter byte
		if tok := toks[i]; tok.Kind == CommandToken {
			letter = tok.Command
			i++
			if arity(letter) < 0 {
				for i < len(toks) && toks[i].Kind == NumberToken {
					i++
				}
				cur.last = 0
				continue
			}
		} else {
			if cur.last == 0 {
				// Stray number outside of any supported command.
				i++
				continue
			}
			letter = repeated(cur.last)
		}

		if !cur.moved && letter != 'M' && letter != 'm' {
			return nil, &CommandError{Index: idx, Command: letter, Err: ErrMissingInitialMove}
		}
		n := arity(letter)
		for j := range n {
			if i+j >= len(toks) || toks[i+j].Kind != NumberToken {
				return nil, &CommandError{Index: idx, Command: letter, Err: ErrInsufficientArguments}
			}
			args[j] = toks[i+j].Value
		}
		i += n

		var cmd Command
		cmd, cur = step(cur, letter, args[:n])
		out = append(out, cmd)
	}
	return out, nil
}

// step applies a single command with its arguments to the cursor. The number
// of arguments must match the command's arity.
func step(cur cursor, letter byte, args []float64) (Command, cursor) {
	rel := letter >= 'a' && letter <= 'z'
	if !cur.moved {
		// A leading relative move is relative to nothing.
		rel = false
	}
	abs := func(x, y float64) Point {
		if rel {
			return Pt(cur.pos.X+x, cur.pos.Y+y)
		}
		return Pt(x, y)
	}

	p0 := cur.pos
	var cmd Command
	switch letter {
	case 'M', 'm':
		cmd = MoveTo(abs(args[0], args[1]))
	case 'L', 'l':
		cmd = LineTo(p0, abs(args[0], args[1]))
	case 'H', 'h':
		x := args[0]
		if rel {
			x += p0.X
		}
		cmd = LineTo(p0, Pt(x, p0.Y))
	case 'V', 'v':
		y := args[0]
		if rel {
			y += p0.Y
		}
		cmd = LineTo(p0, Pt(p0.X, y))
	case 'Q', 'q':
		cmd = QuadTo(p0, abs(args[0], args[1]), abs(args[2], args[3]))
	case 'C', 'c':
		cmd = CubicTo(p0, abs(args[0], args[1]), abs(args[2], args[3]), abs(args[4], args[5]))
	default:
		panic("unreachable")
	}

	return cmd, cursor{pos: cmd.End(), moved: true, last: letter}
}
