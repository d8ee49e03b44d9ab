package prim

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IsNaN reports whether x is a NaN.
func IsNaN[F constraints.Float](x F) bool {
	return x != x
}

// FMA returns x*y + z, computed with only one rounding.
func FMA[F constraints.Float](x, y, z F) F {
	if Single[F]() {
		return F(fma32(float32(x), float32(y), float32(z)))
	}
	return F(math.FMA(float64(x), float64(y), float64(z)))
}

// fma32 is a correctly rounded float32 fused multiply-add. The product of two
// float32s fits exactly in a float64, so only the addition rounds. Rounding
// that sum to nearest and then again to float32 can go wrong on ties, so the
// sum is rounded to odd instead, which leaves enough information for the final
// conversion to round correctly.
func fma32(x, y, z float32) float32 {
	p := float64(float64(x) * float64(y))
	c := float64(z)
	s := p + c
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// Knuth's two-sum: e is exactly (p + c) - s.
	bb := s - p
	e := (p - (s - bb)) + (c - bb)
	if b := math.Float64bits(s); e != 0 && b&1 == 0 {
		if (e > 0) == (s > 0) {
			b++
		} else {
			b--
		}
		s = math.Float64frombits(b)
	}
	return float32(s)
}

// round32 rounds half away from zero. Every float32 is exact in float64 and
// so is the rounded integer, so going through math.Round loses nothing.
func round32(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// exp32, log32 and pow32 evaluate in float64 and round once. math32's own
// Exp is off by tens of ulps for large arguments on amd64, and its Log
// mishandles subnormals.
func exp32(x float32) float32 { return float32(math.Exp(float64(x))) }
func log32(x float32) float32 { return float32(math.Log(float64(x))) }
func pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Powi returns x raised to the integer power n. n is never rounded to F:
// every int32 is exact in float64, so the parity of n, and with it the sign
// of a negative base's result, is kept.
func Powi[F constraints.Float](x F, n int32) F {
	return F(math.Pow(float64(x), float64(n)))
}

// Signum returns NaN if x is NaN and otherwise 1 carrying the sign of x,
// including for signed zeros.
func Signum[F constraints.Float](x F) F {
	if IsNaN(x) {
		return NaN[F]()
	}
	return Copysign(1, x)
}

// IsInf reports whether x is an infinity with the given sign, as math.IsInf.
func IsInf[F constraints.Float](x F, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// NaN returns a quiet NaN.
func NaN[F constraints.Float]() F {
	return F(math.NaN())
}
