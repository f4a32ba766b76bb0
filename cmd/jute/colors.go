package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/jute-format/go-jute/token"
)

type Colors struct {
	OK    func(string, ...any) string
	Bad   func(string, ...any) string
	Token map[token.Type]func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		OK:    color.GreenString,
		Bad:   color.RedString,
		Token: map[token.Type]func(string, ...any) string{},
	}
	c.Token[token.TNumber] = color.RGB(128, 216, 236).SprintfFunc()
	c.Token[token.TLiteral] = color.RGB(8, 196, 16).SprintfFunc()
	c.Token[token.TObjectKey] = color.RGB(196, 96, 16).SprintfFunc()
	c.Token[token.TBool] = color.CyanString
	c.Token[token.TNull] = color.RGB(168, 0, 196).SprintfFunc()
	sep := color.RGB(255, 0, 196).SprintfFunc()
	for _, t := range []token.Type{
		token.TComma, token.TLCurl, token.TRCurl, token.TLSquare, token.TRSquare,
	} {
		c.Token[t] = sep
	}
	return c
}

// PlainColors is the no-op palette used when output is not a terminal.
func PlainColors() *Colors {
	c := &Colors{
		OK:    fmt.Sprintf,
		Bad:   fmt.Sprintf,
		Token: map[token.Type]func(string, ...any) string{},
	}
	return c
}

func (c *Colors) TokenString(t *token.Token) string {
	f, ok := c.Token[t.Type]
	if !ok {
		f = fmt.Sprintf
	}
	return f("%s", t.String())
}
