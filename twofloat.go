// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package twofloat implements a double-double extended-precision number,
// represented as an unevaluated sum of two non-overlapping float64 words.
// The pair (hi, lo) stands for the real number hi+lo, where hi carries the
// leading bits and lo a small correction, which gives roughly twice the
// precision of a single float64 without arbitrary-precision arithmetic.
package twofloat

import (
	"fmt"
	"math"
)

// TwoFloat is a double-double value: the sum of two non-overlapping
// float64 words, with hi the more significant one.
// The arithmetic layer producing pairs is expected, but not guaranteed,
// to preserve the non-overlap invariant, so results should be checked
// with IsValid. Values are immutable and copied on every operation.
type TwoFloat struct {
	hi, lo float64
}

// NaN returns the error value of the type, with both words set to NaN.
// It is invalid by construction and poisons comparisons, like a float64 NaN.
func NaN() TwoFloat {
	return TwoFloat{hi: math.NaN(), lo: math.NaN()}
}

// FromFloat64 widens f to a TwoFloat with a zero low word.
// The conversion is exact.
func FromFloat64(f float64) TwoFloat {
	return TwoFloat{hi: f}
}

// Hi returns the high word.
func (t TwoFloat) Hi() float64 {
	return t.hi
}

// Lo returns the low word.
func (t TwoFloat) Lo() float64 {
	return t.lo
}

// Float64 returns the nearest float64, discarding the low word's
// extra precision.
func (t TwoFloat) Float64() float64 {
	return t.hi + t.lo
}

// IsValid reports whether t is a reliable double-double value:
// both words are finite, and their significant bits do not overlap.
func (t TwoFloat) IsValid() bool {
	return isFinite(t.hi) && isFinite(t.lo) && NoOverlap(t.hi, t.lo)
}

// Min returns the smaller of t and other.
// If one of the values is invalid, the other is returned,
// so a NaN operand is discarded in favor of a real number.
// If both are invalid, other is returned.
func (t TwoFloat) Min(other TwoFloat) TwoFloat {
	if !t.IsValid() {
		return other
	}
	if !other.IsValid() {
		return t
	}
	if res, ok := t.Cmp(other); !ok || res <= 0 {
		return t
	}
	return other
}

// Max returns the larger of t and other.
// If one of the values is invalid, the other is returned,
// so a NaN operand is discarded in favor of a real number.
// If both are invalid, other is returned.
func (t TwoFloat) Max(other TwoFloat) TwoFloat {
	if !t.IsValid() {
		return other
	}
	if !other.IsValid() {
		return t
	}
	if res, ok := t.Cmp(other); !ok || res >= 0 {
		return t
	}
	return other
}

// String returns a string representation of the value,
// with the low word's sign always shown.
func (t TwoFloat) String() string {
	return fmt.Sprintf("[%g (%+g)]", t.hi, t.lo)
}

// GoString returns debug string representation,
// including the raw bit patterns of both words.
func (t TwoFloat) GoString() string {
	return t.String() + fmt.Sprintf(" {0x%016x, 0x%016x}",
		math.Float64bits(t.hi), math.Float64bits(t.lo))
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
