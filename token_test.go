package pathsample

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTokenize(t *testing.T) {
	ignoreOffset := cmpopts.IgnoreFields(Token{}, "Offset")
	tests := []struct {
		in   string
		want []Token
	}{
		{"", []Token{}},
		{"M 175 200 l 150 0", []Token{Cmd('M'), Num(175), Num(200), Cmd('l'), Num(150), Num(0)}},
		{"M-5 -10", []Token{Cmd('M'), Num(-5), Num(-10)}},
		{"M0-5", []Token{Cmd('M'), Num(0), Num(-5)}},
		{"L+1.5 .25", []Token{Cmd('L'), Num(1.5), Num(0.25)}},
		{"h1e2 v-2.5E-1", []Token{Cmd('h'), Num(100), Cmd('v'), Num(-0.25)}},
		{"\tQ\n1\r\n2 3 4", []Token{Cmd('Q'), Num(1), Num(2), Num(3), Num(4)}},
		{"A 1 Z", []Token{Cmd('A'), Num(1), Cmd('Z')}},
		{"1e", []Token{Num(1), Cmd('e')}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Tokenize(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got, ignoreOffset)
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	toks, err := Tokenize("M-5  10")
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	for _, tok := range toks {
		got = append(got, tok.Offset)
	}
	diff(t, []int{0, 1, 5}, got)
}

func TestTokenizeMalformed(t *testing.T) {
	tests := []struct {
		in      string
		offset  int
		literal string
	}{
		{"M 1.2.3 4", 2, "1.2.3"},
		{"M 1,2", 2, "1,2"},
		{"M --4 0", 2, "-"},
		{"L 5 #", 4, "#"},
		{"M . 1", 2, "."},
		{"M 1e999 0", 2, "1e999"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Tokenize(tt.in)
			var terr *TokenizeError
			if !errors.As(err, &terr) {
				t.Fatalf("got error %v, want *TokenizeError", err)
			}
			if !errors.Is(err, ErrTokenize) {
				t.Errorf("error %v doesn't match ErrTokenize", err)
			}
			diff(t, &TokenizeError{Offset: tt.offset, Literal: tt.literal}, terr)
		})
	}
}
