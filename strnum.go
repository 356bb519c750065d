// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strnum implements exact decimal arithmetic on numbers of arbitrary precision,
// written as base-10 strings, like "-123.456".
//
// Addition, subtraction and multiplication are exact. Division is truncated
// to a requested number of digits after the delimiter.
// Results are always in the shortest form: no leading zeros except a single "0"
// before the delimiter, no trailing zeros after it, and no sign for zero.
package strnum

import (
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// DivisionPrecision is the number of digits after the delimiter, produced by Quo.
	// This variable is not thread-safe, so this should be changed on program start.
	DivisionPrecision = 50
)

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("strnum")

	// ErrDivideByZero is returned, when a divisor is zero.
	ErrDivideByZero = Error.New("division by zero")
	// ErrMalformedInput is returned for strings, which are not decimal numbers.
	ErrMalformedInput = Error.New("malformed input")
	// ErrNegativePrecision is returned for division with a negative precision.
	ErrNegativePrecision = Error.New("negative precision")
	// ErrNegativeValue is returned, when a negative number is parsed into a Value.
	ErrNegativeValue = Error.New("negative value")
)

// Add returns a + b.
func Add(a, b string) (string, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	return x.Add(y).String(), nil
}

// Subtract returns a - b, which is the same as Add(a, -b).
// Both operands are parsed before b is negated.
func Subtract(a, b string) (string, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	return x.Sub(y).String(), nil
}

// Multiply returns a * b.
func Multiply(a, b string) (string, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	return x.Mul(y).String(), nil
}

// Divide returns a / b, truncated to prec digits after the delimiter.
//
//	Divide("10", "3", 4) == "3.3333"
//	Divide("-10", "3", 2) == "-3.33"
//
// Returns ErrDivideByZero if b is zero, and ErrNegativePrecision if prec < 0.
func Divide(a, b string, prec int) (string, error) {
	if prec < 0 {
		return "", ErrNegativePrecision
	}
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	quo, err := x.Div(y, prec)
	if err != nil {
		return "", err
	}
	return quo.String(), nil
}

// Quo returns a / b, truncated to DivisionPrecision digits after the delimiter.
func Quo(a, b string) (string, error) {
	return Divide(a, b, DivisionPrecision)
}

func parsePair(a, b string) (x, y Signed, err error) {
	if x, err = SignedFromString(a); err != nil {
		return signedZero, signedZero, err
	}
	if y, err = SignedFromString(b); err != nil {
		return signedZero, signedZero, err
	}
	return x, y, nil
}

// MustAdd is like Add but panics on error.
func MustAdd(a, b string) string {
	res, err := Add(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%q, %q) failed: %v", a, b, err))
	}
	return res
}

// MustSubtract is like Subtract but panics on error.
func MustSubtract(a, b string) string {
	res, err := Subtract(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustSubtract(%q, %q) failed: %v", a, b, err))
	}
	return res
}

// MustMultiply is like Multiply but panics on error.
func MustMultiply(a, b string) string {
	res, err := Multiply(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustMultiply(%q, %q) failed: %v", a, b, err))
	}
	return res
}

// MustDivide is like Divide but panics on error.
func MustDivide(a, b string, prec int) string {
	res, err := Divide(a, b, prec)
	if err != nil {
		panic(fmt.Sprintf("MustDivide(%q, %q, %d) failed: %v", a, b, prec, err))
	}
	return res
}
