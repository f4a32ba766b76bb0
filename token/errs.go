package token

import (
	"errors"
	"fmt"
)

var ErrToken = errors.New("token error")

// TokenizeErr is the lexical failure signal.  It carries the offending
// character and the 1-based line on which it occurred.
type TokenizeErr struct {
	Char rune
	Line int
}

func NewTokenizeErr(c rune, line int) *TokenizeErr {
	return &TokenizeErr{Char: c, Line: line}
}

func (e *TokenizeErr) Unwrap() error {
	return ErrToken
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s: unexpected character %q at line %d", ErrToken, e.Char, e.Line)
}
