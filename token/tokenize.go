package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize walks src once, left to right, appending tokens to dst.  It
// stops at the first ill-formed lexeme with a *TokenizeErr.  Newlines
// consumed as whitespace advance the line counter; no other bookkeeping
// survives between tokens.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	n := len(src)
	line := 1
	i := 0
	for i < n {
		r, sz := utf8.DecodeRune(src[i:])
		if unicode.IsSpace(r) {
			if r == '\n' {
				line++
			}
			i += sz
			continue
		}

		neg := false
		if r == '-' {
			neg = true
			i++
			if i >= n {
				return nil, NewTokenizeErr('-', line)
			}
			r, sz = utf8.DecodeRune(src[i:])
		}

		if asciiDigit(src[i]) {
			v, adv, err := number(src[i:], line)
			if err != nil {
				return nil, err
			}
			if neg {
				v = -v
			}
			dst = append(dst, Token{Type: TNumber, Num: v, Line: line})
			i += adv
			continue
		}

		switch r {
		case 't':
			if i+4 <= n && string(src[i:i+4]) == "true" {
				dst = append(dst, Token{Type: TBool, Bool: true, Line: line})
				i += 4
				continue
			}
			return nil, NewTokenizeErr(r, line)
		case 'f':
			if i+5 <= n && string(src[i:i+5]) == "false" {
				dst = append(dst, Token{Type: TBool, Bool: false, Line: line})
				i += 5
				continue
			}
			return nil, NewTokenizeErr(r, line)
		case 'n':
			if i+4 <= n && string(src[i:i+4]) == "null" {
				dst = append(dst, Token{Type: TNull, Line: line})
				i += 4
				continue
			}
			return nil, NewTokenizeErr(r, line)
		case ',':
			dst = append(dst, Token{Type: TComma, Line: line})
			i++
			continue
		case '[':
			dst = append(dst, Token{Type: TLSquare, Line: line})
			i++
			continue
		case ']':
			dst = append(dst, Token{Type: TRSquare, Line: line})
			i++
			continue
		case '{':
			dst = append(dst, Token{Type: TLCurl, Line: line})
			i++
			continue
		case '}':
			dst = append(dst, Token{Type: TRCurl, Line: line})
			i++
			continue
		case '"':
			tok, ni, nline, err := quoted(src, i, line)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = ni
			line = nline
			continue
		}

		// a valid lexeme always ends in a continue above, so reaching
		// here means nothing matched; the failure is anchored at the
		// previous character
		return nil, NewTokenizeErr(anchorAt(src, i), line)
	}
	return dst, nil
}

func anchorAt(d []byte, i int) rune {
	if i == 0 {
		r, _ := utf8.DecodeRune(d)
		return r
	}
	r, _ := utf8.DecodeLastRune(d[:i])
	return r
}

func lastRune(d []byte) rune {
	r, _ := utf8.DecodeLastRune(d)
	return r
}
