// Package relaxed provides a wrapper for float32 and float64 values that opts
// their arithmetic into relaxed ("fast-math") semantics, one value at a time
// rather than for a whole program.
//
// The five arithmetic operators on a Float (Add, Sub, Mul, Div and Rem, in all
// their forms) are allowed to assume that no operand is NaN or infinite and
// that the sign of a zero result is irrelevant, and the compiler is free to
// fuse them with neighbouring operations. For finite operands a single
// operation gives the same result as ordinary arithmetic; only chains of
// operations may come out differently.
//
// Passing a NaN or an infinity to one of those operators, or relying on the
// sign of a zero they return, is a precondition violation. Nothing detects
// it: the result is some float, which may change with the platform, the
// compiler version or the surrounding code. It is never reported as an error.
//
// Everything else is total and strict. Neg flips the sign bit of any value.
// The elementary functions (Floor, Sqrt, Sin, Asinh and friends) are computed
// with ordinary math library routines and ordinary, explicitly rounded
// arithmetic, whatever the input.
package relaxed

import (
	"golang.org/x/exp/constraints"

	"github.com/pfcm/relaxed/internal/prim"
)

// Precision is the set of floating point types a Float can hold.
type Precision interface {
	constraints.Float
}

// Float holds a single float32 or float64 value marked for relaxed arithmetic.
// It enforces no invariant and can hold any bit pattern, including NaNs and
// infinities. The zero value holds +0.
//
// Floats compare with == exactly as the values they hold do.
type Float[F Precision] struct {
	v F
}

// New wraps v. It stores exactly v, whatever its bits.
func New[F Precision](v F) Float[F] {
	return Float[F]{v}
}

// Get returns the held value, bit for bit.
func (x Float[F]) Get() F {
	return x.v
}

// Less reports whether x < y under ordinary floating point comparison, so it
// is false whenever either side is NaN.
func (x Float[F]) Less(y Float[F]) bool {
	return x.v < y.v
}

// IsNaN reports whether x holds a NaN.
func (x Float[F]) IsNaN() bool {
	return prim.IsNaN(x.v)
}
