package token

import (
	"fmt"
	"strconv"
)

type Type int

const (
	TNumber Type = iota
	TLiteral
	TObjectKey
	TBool
	TNull
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TNumber:    "TNumber",
		TLiteral:   "TLiteral",
		TObjectKey: "TObjectKey",
		TBool:      "TBool",
		TNull:      "TNull",
		TComma:     "TComma",
		TLCurl:     "TLCurl",
		TRCurl:     "TRCurl",
		TLSquare:   "TLSquare",
		TRSquare:   "TRSquare",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// Token is the scanner's output unit.  Payload fields are resolved at scan
// time: Num carries the fully computed numeric value (sign, fraction and
// exponent applied), Text carries string contents with backslash escape
// pairs preserved verbatim, Bool carries keyword booleans.  Structural
// tokens have no payload.  Tokens are immutable once produced.
type Token struct {
	Type Type
	Num  float64
	Text string
	Bool bool
	Line int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s line %d", t.Type, t.Line)
}

func (t *Token) String() string {
	switch t.Type {
	case TNumber:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TLiteral, TObjectKey:
		return t.Text
	case TBool:
		return strconv.FormatBool(t.Bool)
	case TNull:
		return "null"
	case TComma:
		return ","
	case TLCurl:
		return "{"
	case TRCurl:
		return "}"
	case TLSquare:
		return "["
	case TRSquare:
		return "]"
	}
	return "<unknown token>"
}
