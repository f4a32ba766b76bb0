package parse

import (
	"fmt"

	"github.com/jute-format/go-jute/ir"
	"github.com/jute-format/go-jute/token"
)

// Parse converts JSON text into a value tree.  Empty input yields a null
// node.  Failures are lexical (*token.TokenizeErr) or structural
// (*ParseErr), both fatal to the parse; no partial results are returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts...)
}

// ParseTokens parses an already tokenized document.  Tokens are consumed
// destructively in order; by default trailing tokens after a complete
// top-level structure are ignored (see Strict).
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if len(toks) == 0 {
		return ir.Null(), nil
	}
	c := &cursor{toks: toks, opts: pOpts}
	res, err := c.structure(0)
	if err != nil {
		return nil, err
	}
	if pOpts.strict && c.i < len(c.toks) {
		return nil, NewParseErr(c.toks[c.i])
	}
	return res, nil
}

// cursor consumes the token sequence from one end only through a single
// advancing index, the slice analogue of popping a reversed stack.
type cursor struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (c *cursor) pop(expected ...token.Type) (*token.Token, error) {
	if c.i >= len(c.toks) {
		return nil, fmt.Errorf("%w: premature end of input, expected one of %v",
			ErrParse, expected)
	}
	t := &c.toks[c.i]
	c.i++
	return t, nil
}

func (c *cursor) peek() *token.Token {
	if c.i >= len(c.toks) {
		return nil
	}
	return &c.toks[c.i]
}

func (c *cursor) structure(depth int) (*ir.Node, error) {
	if depth >= c.opts.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, c.opts.maxDepth)
	}
	t := c.peek()
	if t == nil {
		return nil, fmt.Errorf("%w: premature end of input, expected one of %v",
			ErrParse, []token.Type{token.TLSquare, token.TLCurl})
	}
	switch t.Type {
	case token.TLSquare:
		return c.array(depth)
	case token.TLCurl:
		return c.object(depth)
	default:
		return nil, NewParseErr(*t, token.TLSquare, token.TLCurl)
	}
}

func (c *cursor) array(depth int) (*ir.Node, error) {
	if _, err := c.pop(token.TLSquare); err != nil {
		return nil, err
	}
	res := &ir.Node{Type: ir.ArrayType}
	if t := c.peek(); t != nil && t.Type == token.TRSquare {
		c.i++
		return res, nil
	}
	for {
		v, err := c.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
		t, err := c.pop(token.TComma, token.TRSquare)
		if err != nil {
			return nil, err
		}
		if t.Type == token.TComma {
			continue
		}
		if t.Type != token.TRSquare {
			return nil, NewParseErr(*t, token.TRSquare)
		}
		return res, nil
	}
}

func (c *cursor) object(depth int) (*ir.Node, error) {
	if _, err := c.pop(token.TLCurl); err != nil {
		return nil, err
	}
	res := &ir.Node{Type: ir.ObjectType}
	if t := c.peek(); t != nil && t.Type == token.TRCurl {
		c.i++
		return res, nil
	}
	for {
		key, err := c.pop(token.TObjectKey)
		if err != nil {
			return nil, err
		}
		if key.Type != token.TObjectKey {
			return nil, NewParseErr(*key, token.TObjectKey)
		}
		v, err := c.value(depth + 1)
		if err != nil {
			return nil, err
		}
		res.Set(key.Text, v)
		t, err := c.pop(token.TComma, token.TRCurl)
		if err != nil {
			return nil, err
		}
		if t.Type == token.TComma {
			continue
		}
		if t.Type != token.TRCurl {
			return nil, NewParseErr(*t, token.TRCurl)
		}
		return res, nil
	}
}

func (c *cursor) value(depth int) (*ir.Node, error) {
	t, err := c.pop(token.TLSquare, token.TLCurl, token.TLiteral,
		token.TNumber, token.TBool, token.TNull)
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case token.TLSquare, token.TLCurl:
		c.i-- // push back for structure's dispatch
		return c.structure(depth)
	case token.TLiteral:
		return ir.FromString(t.Text), nil
	case token.TNumber:
		return ir.FromFloat(t.Num), nil
	case token.TBool:
		return ir.FromBool(t.Bool), nil
	case token.TNull:
		return ir.Null(), nil
	default:
		return nil, NewParseErr(*t, token.TLSquare, token.TLCurl,
			token.TLiteral, token.TNumber, token.TBool, token.TNull)
	}
}
