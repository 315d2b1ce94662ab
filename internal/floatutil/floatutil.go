// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatutil provides access to the bit fields of the IEEE-754
// double-precision layout. It is the only place where float64 values
// are reinterpreted as raw bits.
package floatutil

import "math"

// Class is the category of a float64 word.
type Class int

// Float64 word categories.
const (
	Zero Class = iota
	Subnormal
	Normal
	Infinite
	NaN
)

const (
	// MantissaDigits is the number of significant bits in a float64:
	// 52 stored mantissa bits plus the implicit leading bit.
	MantissaDigits = 53

	expBits  = 11
	mantBits = MantissaDigits - 1

	expMask  = 1<<expBits - 1
	mantMask = 1<<mantBits - 1
)

// Exponent returns the biased 11-bit exponent field of f, in [0, 2047].
// It is defined for every bit pattern, including zeros, subnormals,
// infinities, and NaNs.
func Exponent(f float64) uint32 {
	return uint32(math.Float64bits(f)>>mantBits) & expMask
}

// Mantissa returns the 52 stored mantissa bits of f.
func Mantissa(f float64) uint64 {
	return math.Float64bits(f) & mantMask
}

// Classify returns the category of f.
func Classify(f float64) Class {
	e, m := Exponent(f), Mantissa(f)
	switch {
	case e == expMask:
		if m != 0 {
			return NaN
		}
		return Infinite
	case e == 0:
		if m != 0 {
			return Subnormal
		}
		return Zero
	default:
		return Normal
	}
}
