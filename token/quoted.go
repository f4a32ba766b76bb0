package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// quoted scans a double-quoted string with src[i] at the opening quote.
// Escape pairs are copied into the buffer verbatim, not decoded; \u must
// be followed by exactly four hex digits.  Literal characters in Unicode
// category C are rejected.  On the closing quote a lookahead skips
// whitespace and, if the next character is a colon, the token becomes a
// TObjectKey and the colon is consumed; otherwise it is a TLiteral.
// Returns the token, the new offset and the new line number.
func quoted(src []byte, i, line int) (Token, int, int, error) {
	n := len(src)
	var b strings.Builder
	i++ // opening quote
	for {
		if i >= n {
			return Token{}, 0, 0, NewTokenizeErr(lastRune(src), line)
		}
		r, sz := utf8.DecodeRune(src[i:])
		switch {
		case r == '"':
			// the whitespace ahead of a possible colon is only consumed
			// (and its newlines only counted) when this is a key
			j, jline := i+1, line
			for j < n {
				ws, wsz := utf8.DecodeRune(src[j:])
				if !unicode.IsSpace(ws) {
					break
				}
				if ws == '\n' {
					jline++
				}
				j += wsz
			}
			if j < n && src[j] == ':' {
				return Token{Type: TObjectKey, Text: b.String(), Line: line}, j + 1, jline, nil
			}
			return Token{Type: TLiteral, Text: b.String(), Line: line}, i + 1, line, nil
		case r == '\\':
			if i+1 >= n {
				return Token{}, 0, 0, NewTokenizeErr('\\', line)
			}
			switch c := src[i+1]; c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				b.WriteByte('\\')
				b.WriteByte(c)
				i += 2
			case 'u':
				if i+5 >= n {
					return Token{}, 0, 0, NewTokenizeErr('\\', line)
				}
				b.WriteString(`\u`)
				for k := i + 2; k < i+6; k++ {
					if !hexDigit(src[k]) {
						return Token{}, 0, 0, NewTokenizeErr(rune(src[k]), line)
					}
					b.WriteByte(src[k])
				}
				i += 6
			default:
				bad, _ := utf8.DecodeRune(src[i+1:])
				return Token{}, 0, 0, NewTokenizeErr(bad, line)
			}
		default:
			// strings may only contain category-C characters via a
			// \u escape
			if unicode.In(r, unicode.C) {
				return Token{}, 0, 0, NewTokenizeErr(r, line)
			}
			b.WriteRune(r)
			i += sz
		}
	}
}

func hexDigit(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if c >= 'a' && c <= 'f' {
		return true
	}
	if c >= 'A' && c <= 'F' {
		return true
	}
	return false
}
