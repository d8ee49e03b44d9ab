// Package prim holds the math primitives the relaxed package is built from.
// There are two flavours. The relaxed ones (Add, Sub, Mul, Div, Rem) are bare
// Go operators: the language allows an implementation to fuse floating-point
// operations, possibly across statements, unless a result is explicitly
// converted, and these primitives never convert. The strict ones round every
// result with an explicit conversion so nothing downstream can fuse into
// them, and the elementary functions in elementary.go always go through the
// math or math32 libraries.
//
// Nothing above this package needs to know how either is obtained.
package prim

//go:generate go run ../../cmd/gen-prim -dir .

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Single reports whether F is a single precision (32 bit) float.
func Single[F constraints.Float]() bool {
	var z F
	return unsafe.Sizeof(z) == 4
}

// Add is relaxed addition. The result is unspecified if either operand is
// NaN or infinite.
func Add[F constraints.Float](a, b F) F { return a + b }

// Sub is relaxed subtraction.
func Sub[F constraints.Float](a, b F) F { return a - b }

// Mul is relaxed multiplication.
func Mul[F constraints.Float](a, b F) F { return a * b }

// Div is relaxed division.
func Div[F constraints.Float](a, b F) F { return a / b }

// Rem is the relaxed truncated remainder, taking the sign of a. Go has no
// operator for it so both precisions go through a library Mod.
func Rem[F constraints.Float](a, b F) F {
	if Single[F]() {
		return F(math32.Mod(float32(a), float32(b)))
	}
	return F(math.Mod(float64(a), float64(b)))
}

// StrictAdd is a + b rounded to F. The explicit conversion stops the compiler
// fusing it with a neighbouring multiply.
func StrictAdd[F constraints.Float](a, b F) F { return F(a + b) }

// StrictSub is a - b rounded to F.
func StrictSub[F constraints.Float](a, b F) F { return F(a - b) }

// StrictMul is a * b rounded to F.
func StrictMul[F constraints.Float](a, b F) F { return F(a * b) }

// StrictDiv is a / b rounded to F.
func StrictDiv[F constraints.Float](a, b F) F { return F(a / b) }

// Neg flips the sign bit of x. It is defined for every input: NaN keeps its
// payload and infinities stay infinite.
func Neg[F constraints.Float](x F) F {
	if Single[F]() {
		return F(math.Float32frombits(math.Float32bits(float32(x)) ^ (1 << 31)))
	}
	return F(math.Float64frombits(math.Float64bits(float64(x)) ^ (1 << 63)))
}
