package parse

import (
	"errors"
	"fmt"

	"github.com/jute-format/go-jute/token"
)

var (
	ErrParse = errors.New("parse error")
	ErrDepth = fmt.Errorf("%w: maximum nesting depth exceeded", ErrParse)
)

// ParseErr is the structural failure signal.  It carries the offending
// token and the set of token types that would have been accepted at that
// point; an empty Expected set means end of input was required.
type ParseErr struct {
	Token    token.Token
	Expected []token.Type
}

func NewParseErr(t token.Token, expected ...token.Type) *ParseErr {
	return &ParseErr{Token: t, Expected: expected}
}

func (e *ParseErr) Unwrap() error {
	return ErrParse
}

func (e *ParseErr) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: unexpected token %s, expected end of input", ErrParse, e.Token.Type)
	}
	return fmt.Sprintf("%s: unexpected token %s, expected one of %v", ErrParse, e.Token.Type, e.Expected)
}
