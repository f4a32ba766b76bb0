package token

import (
	"math"
	"strconv"
)

// roundDigits bounds floating point representation noise from the
// power computation when an exponent was present.
const roundDigits = 15

// number scans a numeric lexeme at the start of d, accumulating its value
// as it goes: integer part by value*10+digit, fractional part by
// digit*10^-k, exponent applied as value*10^e.  It returns the value and
// the number of bytes consumed.  The leading sign is handled by the caller.
func number(d []byte, line int) (float64, int, error) {
	n := len(d)
	i := 0
	v := 0.0
	for i < n && asciiDigit(d[i]) {
		v = v*10 + float64(d[i]-'0')
		i++
	}
	if i >= n || (d[i] != '.' && d[i] != 'e' && d[i] != 'E') {
		return v, i, nil
	}

	if d[i] == '.' {
		i++
		mantissa := 0.0
		k := -1
		for i < n && asciiDigit(d[i]) {
			mantissa += float64(d[i]-'0') * math.Pow(10, float64(k))
			k--
			i++
		}
		v += mantissa
	}
	if i >= n || (d[i] != 'e' && d[i] != 'E') {
		return v, i, nil
	}

	i++ // the exponent marker
	if i >= n {
		return 0, 0, NewTokenizeErr(rune(d[i-1]), line)
	}
	eneg := false
	switch d[i] {
	case '-':
		eneg = true
		i++
	case '+':
		i++
	default:
		if !asciiDigit(d[i]) {
			return 0, 0, NewTokenizeErr(rune(d[i]), line)
		}
	}
	if i >= n || !asciiDigit(d[i]) {
		return 0, 0, NewTokenizeErr(rune(d[i-1]), line)
	}
	e := 0
	for i < n && asciiDigit(d[i]) {
		e = e*10 + int(d[i]-'0')
		i++
	}
	if eneg {
		e = -e
	}
	v *= math.Pow(10, float64(e))
	if e != 0 {
		v = roundTo(v, roundDigits)
	}
	return v, i, nil
}

func roundTo(v float64, digits int) float64 {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
