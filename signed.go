package strnum

import (
	"fmt"

	su "github.com/avdva/strnum/internal/strutil"
)

var (
	signedZero = Signed{false, zero}
)

// Signed is a Value with a sign flag.
type Signed struct {
	Neg bool
	V   Value
}

// NewSigned returns new Signed value.
func NewSigned(v Value, neg bool) Signed {
	return Signed{V: v, Neg: neg}
}

// PosValue converts Value to a signed value.
func PosValue(v Value) Signed {
	return NewSigned(v, false)
}

// NegValue returns a negative signed value for given Value.
func NegValue(v Value) Signed {
	return NewSigned(v, true)
}

// SignedFromString parses a string with an optional sign into a signed value.
func SignedFromString(s string) (Signed, error) {
	digits, scale, neg, err := su.Parse(s)
	if err != nil {
		return signedZero, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return NewSigned(fromDigitsAndScale(digits, scale), neg), nil
}

// MustSignedFromString is like SignedFromString but panics on error.
func MustSignedFromString(s string) Signed {
	v, err := SignedFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns string representation of a signed value.
// Zero is never prefixed with '-'.
func (s Signed) String() string {
	m, sc := split(s.V)
	return su.Format(m, sc, s.Neg)
}

// Add returns a + b.
func (s Signed) Add(other Signed) Signed {
	if s.Neg == other.Neg {
		// v1+v2
		// or -v1+(-v2) = -(v1+v2)
		return NewSigned(s.V.Add(other.V), s.Neg)
	}
	if !s.Neg { // v1+(-v2) = v1-v2
		return NewSigned(s.V.Sub(other.V))
	}
	return NewSigned(other.V.Sub(s.V)) // -v1+v2 = v2-v1
}

// Sub returns a-b.
func (s Signed) Sub(other Signed) Signed {
	other.Neg = !other.Neg
	return s.Add(other) // v1-v2 = v1+(-v2)
}

// Mul returns a*b.
func (s Signed) Mul(other Signed) Signed {
	return NewSigned(s.V.Mul(other.V), s.Neg != other.Neg)
}

// Div calculates a/b truncated to prec digits after the delimiter.
// Returns ErrDivideByZero if b == 0.
func (s Signed) Div(other Signed, prec int) (Signed, error) {
	v, err := s.V.Div(other.V, prec)
	if err != nil {
		return signedZero, err
	}
	return NewSigned(v, s.Neg != other.Neg), nil
}

// Quo calculates a/b truncated to DivisionPrecision digits after the delimiter.
func (s Signed) Quo(other Signed) (Signed, error) {
	return s.Div(other, DivisionPrecision)
}

// Normalized normalizes signed value.
// See Value.Normalized().
func (s Signed) Normalized() Signed {
	if s.V.IsZero() {
		return signedZero
	}
	return NewSigned(s.V.Normalized(), s.Neg)
}

// Eq returns a==b.
func (s Signed) Eq(other Signed) bool {
	if s.Neg != other.Neg {
		return s.V.IsZero() && other.V.IsZero()
	}
	return s.V.Eq(other.V)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (s Signed) Cmp(other Signed) int {
	s1, s2 := s.Sign(), other.Sign()
	if s1 > s2 {
		return 1
	} else if s1 < s2 {
		return -1
	}
	return s.V.Cmp(other.V) * s1
}

// Sign returns -1 if a < 0, 0 if a = 0, 1 if a > 0.
func (s Signed) Sign() int {
	if s.V.IsZero() {
		return 0
	}
	if s.Neg {
		return -1
	}
	return 1
}

// IsZero returns true, if a == 0.
func (s Signed) IsZero() bool {
	return s.V.IsZero()
}

// Abs returns |a|.
func (s Signed) Abs() Signed {
	return PosValue(s.V)
}

// Negated returns -a.
func (s Signed) Negated() Signed {
	return NewSigned(s.V, !s.Neg)
}

// Truncate drops all the digits after prec digits after the delimiter,
// rounding towards zero.
func (s Signed) Truncate(prec int) Signed {
	return NewSigned(s.V.Truncate(prec), s.Neg)
}

// AddValue returns a+v.
func (s Signed) AddValue(v Value) Signed {
	if !s.Neg {
		return PosValue(s.V.Add(v))
	}
	return NewSigned(v.Sub(s.V))
}

// SubValue returns a-v.
func (s Signed) SubValue(v Value) Signed {
	if s.Neg {
		return NegValue(s.V.Add(v))
	}
	return NewSigned(s.V.Sub(v))
}

// MulValue returns a*v.
func (s Signed) MulValue(v Value) Signed {
	return NewSigned(s.V.Mul(v), s.Neg)
}

// DivValue returns a/v truncated to prec digits after the delimiter.
func (s Signed) DivValue(v Value, prec int) (Signed, error) {
	return s.Div(PosValue(v), prec)
}

// EqValue returns a==v.
func (s Signed) EqValue(other Value) bool {
	if s.Neg {
		return s.V.IsZero() && other.IsZero()
	}
	return s.V.Eq(other)
}

// CmpValue compares signed and a positive values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (s Signed) CmpValue(other Value) int {
	if s.Neg {
		if s.V.IsZero() && other.IsZero() {
			return 0
		}
		return -1
	}
	return s.V.Cmp(other)
}
