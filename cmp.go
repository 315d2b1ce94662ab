// Copyright 2020 Aleksandr Demakin. All rights reserved.

package twofloat

import "math"

// Eq reports whether t and other are equal word for word.
// NaN words compare unequal, following float64 semantics.
func (t TwoFloat) Eq(other TwoFloat) bool {
	return t.hi == other.hi && t.lo == other.lo
}

// EqFloat64 reports whether t represents exactly the number f:
// the high word equals f, and the low word is numerically zero,
// of either sign. The relation is symmetric, so it also answers f == t.
func (t TwoFloat) EqFloat64(f float64) bool {
	return t.hi == f && t.lo == 0
}

// Cmp compares two values lexicographically by (hi, lo).
// Returns -1 if t < other, 0 if t == other, 1 if t > other.
// ok is false if the values are unordered, which happens whenever
// a NaN word takes part in the deciding comparison.
func (t TwoFloat) Cmp(other TwoFloat) (res int, ok bool) {
	if res, ok = cmpWords(t.hi, other.hi); !ok || res != 0 {
		return res, ok
	}
	return cmpWords(t.lo, other.lo)
}

// CmpFloat64 compares t with the scalar f, with t as the left operand.
// The scalar compares as the pair (f, 0).
func (t TwoFloat) CmpFloat64(f float64) (res int, ok bool) {
	if res, ok = cmpWords(t.hi, f); !ok || res != 0 {
		return res, ok
	}
	return cmpWords(t.lo, 0)
}

// Float64Cmp compares the scalar f with t, with f as the left operand.
// The scalar compares as the pair (f, 0).
func Float64Cmp(f float64, t TwoFloat) (res int, ok bool) {
	if res, ok = cmpWords(f, t.hi); !ok || res != 0 {
		return res, ok
	}
	return cmpWords(0, t.lo)
}

func cmpWords(a, b float64) (int, bool) {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return 0, false
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}
