// Package rational converts a float64 into its exact binary rational
// representation and exposes the bit-counting primitives the float
// classification algorithm needs.
//
// A Ratio never approximates: Numerator * 2^(-Exp2) reproduces the input
// float exactly, because a float64's mantissa is itself a binary fraction.
// Tracking the exponent of the (always power-of-two) denominator instead of
// the denominator's value sidesteps needing arbitrary-precision integers for
// the tiny subnormal end of the range, where a literal denominator would not
// fit a uint64.
package rational

import (
	"math"
	"math/bits"
)

// mantissaBits is the number of bits math.Frexp's normalized fraction
// carries for a float64 (52 explicit + 1 implicit).
const mantissaBits = 53

// Ratio is an exact binary rational: the represented value equals
// Numerator * 2^(-Exp2).
type Ratio struct {
	Numerator int64
	Exp2      int
}

// FromFloat64 decomposes a finite, nonzero float64 into its exact Ratio.
// Callers must handle zero, NaN and Inf themselves; FromFloat64 assumes none
// of those reach it.
func FromFloat64(f float64) Ratio {
	frac, exp := math.Frexp(f)

	return Ratio{
		Numerator: int64(frac * (1 << mantissaBits)),
		Exp2:      mantissaBits - exp,
	}
}

// MSBLSB returns the 0-indexed position of the highest and lowest set bit of
// the numerator's absolute value.
func (r Ratio) MSBLSB() (msb, lsb int) {
	n := r.Numerator
	if n < 0 {
		n = -n
	}

	u := uint64(n)

	return bits.Len64(u) - 1, bits.TrailingZeros64(u)
}

// Resolution is msb - lsb + 1, the number of significant bits the numerator
// actually carries.
func (r Ratio) Resolution() int {
	msb, lsb := r.MSBLSB()
	return msb - lsb + 1
}

// FitsBinary32 reports whether r can be represented exactly as an IEEE-754
// binary32, per the denormal/normal resolution test of the classification
// algorithm.
func (r Ratio) FitsBinary32() bool {
	msb, lsb := r.MSBLSB()
	resolution := msb - lsb + 1
	e := r.Exp2

	denormal := resolution <= 23 && -e+23+lsb == -126
	normal := resolution <= 24 && -126 <= -e+msb && -e+msb <= 127

	return denormal || normal
}

// FitsBinary64 reports whether r can be represented exactly as an IEEE-754
// binary64, per the denormal/normal resolution test of the classification
// algorithm.
func (r Ratio) FitsBinary64() bool {
	msb, lsb := r.MSBLSB()
	resolution := msb - lsb + 1
	e := r.Exp2

	denormal := resolution <= 52 && -e+52+lsb == -1022
	normal := resolution <= 53 && -1022 <= -e+msb && -e+msb <= 1023

	return denormal || normal
}
