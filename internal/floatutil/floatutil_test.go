package floatutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExponentMantissa(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    float64
		exp  uint32
		mant uint64
	}{
		{0, 0, 0},
		{1, 1023, 0},
		{-1, 1023, 0},
		{1.5, 1023, 1 << 51},
		{math.Ldexp(1, -1022), 1, 0},
		{math.Ldexp(1, -1023), 0, 1 << 51},
		{math.Ldexp(1, -1024), 0, 1 << 50},
		{math.SmallestNonzeroFloat64, 0, 1},
		{math.MaxFloat64, 2046, 1<<52 - 1},
		{math.Inf(1), 2047, 0},
		{math.Inf(-1), 2047, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.exp, Exponent(test.f))
			a.Equal(test.mant, Mantissa(test.f))
		})
	}
	a.Equal(uint32(2047), Exponent(math.NaN()))
	a.NotZero(Mantissa(math.NaN()))
}

func TestClassify(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f float64
		c Class
	}{
		{0, Zero},
		{math.Copysign(0, -1), Zero},
		{1, Normal},
		{-35.2, Normal},
		{math.MaxFloat64, Normal},
		{math.Ldexp(1, -1022), Normal},
		{math.Ldexp(1, -1023), Subnormal},
		{math.SmallestNonzeroFloat64, Subnormal},
		{-math.SmallestNonzeroFloat64, Subnormal},
		{math.Inf(1), Infinite},
		{math.Inf(-1), Infinite},
		{math.NaN(), NaN},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.c, Classify(test.f))
		})
	}
}
