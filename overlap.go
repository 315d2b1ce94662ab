// Copyright 2020 Aleksandr Demakin. All rights reserved.

package twofloat

import (
	"math/bits"

	fu "github.com/avdva/twofloat/internal/floatutil"
)

// Exponent returns the biased 11-bit binary exponent field of x, as stored
// in the IEEE-754 double-precision bit layout, in [0, 2047].
// 1023 represents exponent zero.
func Exponent(x float64) uint32 {
	return fu.Exponent(x)
}

// NoOverlap reports whether a and b can form a double-double pair, with a
// as the more significant word: the significant bits of the two values
// must not share any bit positions, so that a+b loses no information.
// Pairs containing an infinity or a NaN never qualify, and neither does
// any combination not listed below; the predicate is conservative.
func NoOverlap(a, b float64) bool {
	ca, cb := fu.Classify(a), fu.Classify(b)
	switch {
	case ca == fu.Normal && cb == fu.Normal:
		return fu.Exponent(a) >= fu.Exponent(b)+fu.MantissaDigits
	case ca == fu.Normal && cb == fu.Subnormal:
		ea := int(fu.Exponent(a))
		if ea >= fu.MantissaDigits {
			return true
		}
		// b's leading bit sits below the normal range; locate it by the
		// leading zeros of the mantissa field. On the biased scale that
		// bit has exponent 12-lz, and the 53-bit window puts the
		// threshold at 65-lz.
		return ea >= 65-bits.LeadingZeros64(fu.Mantissa(b))
	case ca == fu.Normal && cb == fu.Zero:
		return true
	case ca == fu.Subnormal && cb == fu.Zero:
		return true
	case ca == fu.Zero && cb == fu.Zero:
		return true
	default:
		return false
	}
}
