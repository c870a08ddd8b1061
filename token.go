package pathsample

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

type TokenKind int

const (
	// A command letter. Unknown letters are tokenized too; the
	// canonicalizer decides what to do with them.
	CommandToken TokenKind = iota + 1
	// A numeric literal.
	NumberToken
)

// Token is a single command letter or numeric literal of a path string.
type Token struct {
	Kind TokenKind
	// Command is set for CommandToken.
	Command byte
	// Value is set for NumberToken.
	Value float64
	// Offset is the byte offset of the token in the input.
	Offset int
}

// Cmd returns a command token for the letter c.
func Cmd(c byte) Token {
	return Token{Kind: CommandToken, Command: c}
}

// Num returns a number token for the value v.
func Num(v float64) Token {
	return Token{Kind: NumberToken, Value: v}
}

func (tok Token) String() string {
	switch tok.Kind {
	case CommandToken:
		return string(tok.Command)
	case NumberToken:
		return fmt.Sprintf("%g", tok.Value)
	default:
		return "InvalidToken"
	}
}

// Tokenize splits a path string into command letters and numeric literals.
//
// Whitespace separates tokens but is otherwise dropped. A numeric literal
// consists of an optional leading sign, digits, at most one decimal point and
// an optional exponent. A sign that isn't part of an exponent starts a new
// literal, so "M-5-5" yields M, -5, -5. Any other character, including
// commas, makes the surrounding literal malformed and fails with a
// [*TokenizeError].
func Tokenize(s string) ([]Token, error) {
	b := []byte(s)
	toks := make([]Token, 0, len(b)/2)
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case isSpace(c):
			i++
		case isLetter(c):
			tok := Cmd(c)
			tok.Offset = i
			toks = append(toks, tok)
			i++
		default:
			n := literalLen(b[i:])
			lit := b[i : i+n]
			f, m := strconv.ParseFloat(lit)
			if m != n || !hasDigit(lit) || math.IsInf(f, 0) || math.IsNaN(f) {
				return nil, &TokenizeError{Offset: i, Literal: string(lit)}
			}
			tok := Num(f)
			tok.Offset = i
			toks = append(toks, tok)
			i += n
		}
	}
	return toks, nil
}

// literalLen returns the length of the numeric literal at the start of b. b
// must not start with whitespace or a letter. The literal is not validated.
func literalLen(b []byte) int {
	j := 0
	if isSign(b[0]) {
		j++
	}
	for j < len(b) {
		c := b[j]
		switch {
		case isSpace(c), isSign(c):
			return j
		case isLetter(c):
			if (c != 'e' && c != 'E') || !isExponent(b, j) {
				return j
			}
			j++
			if isSign(b[j]) {
				j++
			}
		default:
			j++
		}
	}
	return j
}

// isExponent reports whether the e or E at b[j] introduces an exponent.
func isExponent(b []byte, j int) bool {
	if j == 0 || (!isDigit(b[j-1]) && b[j-1] != '.') {
		return false
	}
	if j+1 < len(b) && isDigit(b[j+1]) {
		return true
	}
	return j+2 < len(b) && isSign(b[j+1]) && isDigit(b[j+2])
}

func hasDigit(b []byte) bool {
	for _, c := range b {
		if isDigit(c) {
			return true
		}
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSign(c byte) bool {
	return c == '-' || c == '+'
}
