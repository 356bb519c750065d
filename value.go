// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strnum

import (
	"fmt"

	mu "github.com/avdva/strnum/internal/mathutil"
	su "github.com/avdva/strnum/internal/strutil"
)

var (
	zero Value
)

// Value is a non-negative decimal number of arbitrary precision.
// It is stored as an unscaled digit string and a scale, so that
// the number equals digits * 10^-scale.
//
//	"12.340" -> {digits: "12340", scale: 3}
//
// Values are immutable, all the operations return new values.
// The zero Value is 0.
type Value struct {
	digits string
	scale  int
}

func split(v Value) (digits string, scale int) {
	if len(v.digits) == 0 {
		return "0", 0
	}
	return v.digits, v.scale
}

func fromDigitsAndScale(digits string, scale int) Value {
	if mu.IsZero(digits) {
		return Value{digits: "0", scale: scale}
	}
	return Value{digits: digits, scale: scale}
}

// FromString parses a string into a value.
// Negative numbers are rejected, except for "-0".
func FromString(s string) (Value, error) {
	digits, scale, neg, err := su.Parse(s)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if neg && !mu.IsZero(digits) {
		return zero, ErrNegativeValue
	}
	return fromDigitsAndScale(digits, scale), nil
}

// MustFromString is like FromString but panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Digits returns the unscaled digits of v.
func (v Value) Digits() string {
	digits, _ := split(v)
	return digits
}

// Scale returns the number of digits after the delimiter.
func (v Value) Scale() int {
	_, scale := split(v)
	return scale
}

// IsZero returns true, if v == 0.
func (v Value) IsZero() bool {
	return mu.IsZero(v.digits)
}

// align returns the digits of both values, expressed at a common scale
// of max(v.scale, other.scale) + extra.
func align(v, other Value, extra int) (d1, d2 string, scale int) {
	m1, s1 := split(v)
	m2, s2 := split(other)
	scale = mu.MaxInt(s1, s2) + extra
	return pad(m1, scale-s1), pad(m2, scale-s2), scale
}

// pad appends count zeros to digits. Zero keeps its canonical form at any scale.
func pad(digits string, count int) string {
	if digits == "0" {
		return digits
	}
	return su.PadRight(digits, count)
}

// Eq returns true, if both values represent the same number.
func (v Value) Eq(other Value) bool {
	return v.Cmp(other) == 0
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	d1, d2, _ := align(v, other, 0)
	return mu.CmpAbs(d1, d2)
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	d1, d2, scale := align(v, other, 0)
	return fromDigitsAndScale(mu.AddAbs(d1, d2), scale)
}

// Sub returns abs(v - other) and a flag, which is true if v < other.
func (v Value) Sub(other Value) (Value, bool) {
	d1, d2, scale := align(v, other, 0)
	switch mu.CmpAbs(d1, d2) {
	case 0:
		return fromDigitsAndScale("0", scale), false
	case 1:
		return fromDigitsAndScale(mu.SubAbs(d1, d2), scale), false
	default:
		return fromDigitsAndScale(mu.SubAbs(d2, d1), scale), true
	}
}

// Mul returns v * other. The scale of the result is the sum of the scales.
func (v Value) Mul(other Value) Value {
	m1, s1 := split(v)
	m2, s2 := split(other)
	return fromDigitsAndScale(mu.MulAbs(m1, m2), s1+s2)
}

// Div returns v / other, truncated to prec digits after the delimiter.
// Returns ErrDivideByZero if other is zero, and ErrNegativePrecision if prec < 0.
func (v Value) Div(other Value, prec int) (Value, error) {
	if prec < 0 {
		return zero, ErrNegativePrecision
	}
	if other.IsZero() {
		return zero, ErrDivideByZero
	}
	d1, d2, _ := align(v, other, prec)
	quo, err := mu.DivAbs(d1, d2, prec)
	if err != nil {
		return zero, ErrDivideByZero
	}
	return fromDigitsAndScale(quo, prec), nil
}

// Truncate drops all the digits after prec digits after the delimiter.
// Negative prec is treated as 0.
func (v Value) Truncate(prec int) Value {
	if prec < 0 {
		prec = 0
	}
	m, s := split(v)
	if s <= prec {
		return v
	}
	cut := s - prec
	if cut >= len(m) {
		return zero
	}
	return fromDigitsAndScale(m[:len(m)-cut], prec)
}

// Normalized eliminates trailing zeros in the fractional part.
// Zero is always normalized to the zero Value.
func (v Value) Normalized() Value {
	m, s := split(v)
	if mu.IsZero(m) {
		return zero
	}
	i := len(m)
	for s > 0 && m[i-1] == '0' {
		i--
		s--
	}
	return Value{digits: m[:i], scale: s}
}

// String returns the shortest string representation of the value.
func (v Value) String() string {
	m, s := split(v)
	return su.Format(m, s, false)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	m, s := split(v)
	return v.String() + fmt.Sprintf(" {%v, %v}", m, s)
}
