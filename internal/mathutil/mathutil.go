// Package mathutil implements arithmetic on unsigned decimal digit strings.
//
// A digit string is a non-empty sequence of '0'-'9', most significant digit first.
// It carries neither a sign nor a delimiter, and has no leading zeros unless it is "0".
package mathutil

import (
	"strings"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("mathutil")

	// ErrDivisionByZero is returned by DivAbs, if the divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")
)

// CmpAbs compares two digit strings.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func CmpAbs(a, b string) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	// equal lengths, so the lexicographical order is the numeric one.
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// AddAbs returns a+b.
func AddAbs(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	// one extra byte for the final carry.
	res := make([]byte, len(a)+1)
	var carry byte
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		s := a[i] - '0' + carry
		if j >= 0 {
			s += b[j] - '0'
		}
		carry = s / 10
		res[i+1] = '0' + s%10
	}
	if carry > 0 {
		res[0] = '0' + carry
		return string(res)
	}
	return string(res[1:])
}

// SubAbs returns a-b.
// a must not be less than b, otherwise the result is undefined.
func SubAbs(a, b string) string {
	assertNotLess(a, b)
	res := make([]byte, len(a))
	borrow := 0
	for i, j := len(a)-1, len(b)-1; i >= 0; i, j = i-1, j-1 {
		d := int(a[i]-'0') - borrow
		if j >= 0 {
			d -= int(b[j] - '0')
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		res[i] = byte('0' + d)
	}
	return TrimLeadingZeros(string(res))
}

// MulAbs returns a*b using the schoolbook algorithm.
func MulAbs(a, b string) string {
	// cells[i+j+1] receives the low digit of a[i]*b[j], cells[i+j] the carry.
	cells := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			s := cells[i+j+1] + int(a[i]-'0')*int(b[j]-'0')
			cells[i+j+1] = s % 10
			cells[i+j] += s / 10
		}
	}
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		if c == 0 && sb.Len() == 0 {
			continue
		}
		sb.WriteByte(byte('0' + c))
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// DivAbs returns floor(a * 10^precision / b).
// It produces len(a)+precision quotient digits by long division, bringing down
// the digits of a first, and zeros after them.
// Each produced digit costs up to 9 subtractions, so the algorithm is quadratic
// in the length of its operands.
func DivAbs(a, b string, precision int) (string, error) {
	if IsZero(b) {
		return "", ErrDivisionByZero
	}
	b = TrimLeadingZeros(b)
	steps := len(a) + precision
	if steps < 0 {
		steps = 0
	}
	quo := make([]byte, 0, steps)
	rem := ""
	for i := 0; i < steps; i++ {
		next := byte('0')
		if i < len(a) {
			next = a[i]
		}
		rem = TrimLeadingZeros(rem + string(next))
		// rem < 10*b here, so the quotient digit never exceeds 9.
		var count byte
		for CmpAbs(rem, b) >= 0 {
			rem = SubAbs(rem, b)
			count++
		}
		quo = append(quo, '0'+count)
	}
	return TrimLeadingZeros(string(quo)), nil
}

// TrimLeadingZeros removes leading zeros from s.
// An empty result becomes "0".
func TrimLeadingZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if len(s) == 0 {
		return "0"
	}
	return s
}

// IsZero returns true, if s consists of zeros only.
func IsZero(s string) bool {
	return len(strings.TrimLeft(s, "0")) == 0
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
