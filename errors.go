package pathsample

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenize is matched by every [*TokenizeError].
	ErrTokenize = errors.New("pathsample: malformed numeric literal")
	// ErrMissingInitialMove indicates a drawing command before any M or m.
	ErrMissingInitialMove = errors.New("pathsample: drawing command before initial move")
	// ErrInsufficientArguments indicates a command with fewer numeric
	// arguments than it requires.
	ErrInsufficientArguments = errors.New("pathsample: insufficient arguments")
	// ErrDegeneratePath indicates a path whose total arc length is zero.
	ErrDegeneratePath = errors.New("pathsample: path has zero length")
	// ErrNonFinite indicates a path whose coordinates are so large that its
	// length can't be represented.
	ErrNonFinite = errors.New("pathsample: path length is not finite")
	// ErrInvalidBudget indicates a sample budget smaller than one.
	ErrInvalidBudget = errors.New("pathsample: sample budget must be at least 1")
)

// TokenizeError reports a numeric literal that could not be parsed.
type TokenizeError struct {
	// Offset is the byte offset of the literal in the input.
	Offset int
	// Literal is the offending text.
	Literal string
}

func (err *TokenizeError) Error() string {
	return fmt.Sprintf("pathsample: malformed numeric literal %q at offset %d", err.Literal, err.Offset)
}

func (err *TokenizeError) Is(target error) bool {
	return target == ErrTokenize
}

// CommandError reports a failure to canonicalize a single path command.
type CommandError struct {
	// Index is the position of the command's letter in the token sequence.
	Index int
	// Command is the command letter.
	Command byte
	Err     error
}

func (err *CommandError) Error() string {
	return fmt.Sprintf("command %c at token %d: %s", err.Command, err.Index, err.Err)
}

func (err *CommandError) Unwrap() error {
	return err.Err
}
