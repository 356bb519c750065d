// Package strutil converts decimal strings to digit strings with a scale and back.
package strutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	mu "github.com/avdva/strnum/internal/mathutil"
)

const (
	delim = '.'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// Parse splits a decimal string into an unscaled digit string, a scale, and a sign.
// The digit string has no leading zeros, the scale is the number of digits after the delimiter.
// For example, "-012.340" is parsed into ("12340", 3, true).
func Parse(s string) (digits string, scale int, neg bool, err error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return "", 0, false, fmt.Errorf("empty input")
	}
	digits, scale, err = doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return "", 0, false, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return digits, scale, neg, nil
}

// prepareString cleans the string from spaces and a sign.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

func doParse(s string) (digits string, scale int, err error) {
	var b strings.Builder
	b.Grow(len(s))
	delimPos := -1
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			b.WriteRune(r)
		case r == delim:
			if delimPos >= 0 {
				return "", 0, newPosError("unexpected delimiter", i)
			}
			delimPos = i
		default:
			return "", 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if b.Len() == 0 {
		return "", 0, fmt.Errorf("no digits")
	}
	if delimPos >= 0 {
		// everything after the delimiter is an ascii digit here.
		scale = len(s) - delimPos - 1
	}
	return mu.TrimLeadingZeros(b.String()), scale, nil
}

// Format inserts a delimiter 'scale' digits from the right of 'digits'.
// Leading zeros of the integer part and trailing zeros of the fractional part are removed,
// and a delimiter without digits after it is omitted.
// Zero is always formatted as "0", regardless of 'neg'.
func Format(digits string, scale int, neg bool) string {
	var integ, frac string
	if scale > 0 {
		if len(digits) <= scale { // at least one digit before the delimiter.
			digits = zeroStr(scale+1-len(digits)) + digits
		}
		point := len(digits) - scale
		integ, frac = digits[:point], strings.TrimRight(digits[point:], "0")
	} else {
		integ = digits
	}
	integ = mu.TrimLeadingZeros(integ)
	if integ == "0" && len(frac) == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(integ) + len(frac) + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(integ)
	if len(frac) > 0 {
		b.WriteByte(delim)
		b.WriteString(frac)
	}
	return b.String()
}

// PadRight appends 'count' zeros to digits.
func PadRight(digits string, count int) string {
	if count <= 0 {
		return digits
	}
	return digits + zeroStr(count)
}

func zeroStr(count int) string {
	var b bytes.Buffer
	for i := 0; i < count/len(manyZeros); i++ {
		b.Write(manyZeros)
	}
	if rem := count % len(manyZeros); rem > 0 {
		b.Write(manyZeros[:rem])
	}
	return b.String()
}
