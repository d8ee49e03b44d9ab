package relaxed

import "github.com/pfcm/relaxed/internal/prim"

// The methods in this file are strict: they go through the ordinary math
// routines for the precision and any arithmetic they do themselves is
// explicitly rounded, never relaxed. They are defined for every input.

func (x Float[F]) Floor() Float[F] { return Float[F]{prim.Floor(x.v)} }
func (x Float[F]) Ceil() Float[F]  { return Float[F]{prim.Ceil(x.v)} }

// Round rounds half away from zero.
func (x Float[F]) Round() Float[F] { return Float[F]{prim.Round(x.v)} }
func (x Float[F]) Trunc() Float[F] { return Float[F]{prim.Trunc(x.v)} }

// Fract returns the fractional part x - x.Trunc(), with the sign of x.
func (x Float[F]) Fract() Float[F] {
	return Float[F]{prim.StrictSub(x.v, prim.Trunc(x.v))}
}

// Abs clears the sign bit. A NaN keeps its payload.
func (x Float[F]) Abs() Float[F] { return Float[F]{prim.Abs(x.v)} }

// Signum returns NaN for a NaN and otherwise 1 with the sign of x. Signed
// zeros count: -0 gives -1.
func (x Float[F]) Signum() Float[F] { return Float[F]{prim.Signum(x.v)} }

// Copysign returns a value with the magnitude of x and the sign of y.
func (x Float[F]) Copysign(y Float[F]) Float[F] {
	return Float[F]{prim.Copysign(x.v, y.v)}
}

// MulAdd returns x*a + b with a single rounding.
func (x Float[F]) MulAdd(a, b Float[F]) Float[F] {
	return Float[F]{prim.FMA(x.v, a.v, b.v)}
}

// Powi raises x to an integer power.
func (x Float[F]) Powi(n int32) Float[F] { return Float[F]{prim.Powi(x.v, n)} }

// Powf raises x to a floating point power.
func (x Float[F]) Powf(n Float[F]) Float[F] { return Float[F]{prim.Pow(x.v, n.v)} }

func (x Float[F]) Sqrt() Float[F] { return Float[F]{prim.Sqrt(x.v)} }
func (x Float[F]) Exp() Float[F]  { return Float[F]{prim.Exp(x.v)} }
func (x Float[F]) Exp2() Float[F] { return Float[F]{prim.Exp2(x.v)} }

// Ln is the natural logarithm.
func (x Float[F]) Ln() Float[F] { return Float[F]{prim.Log(x.v)} }

// Log is the logarithm of x to the given base, x.Ln() / base.Ln().
func (x Float[F]) Log(base Float[F]) Float[F] {
	return Float[F]{prim.StrictDiv(prim.Log(x.v), prim.Log(base.v))}
}

func (x Float[F]) Log2() Float[F]  { return Float[F]{prim.Log2(x.v)} }
func (x Float[F]) Log10() Float[F] { return Float[F]{prim.Log10(x.v)} }
func (x Float[F]) Sin() Float[F]   { return Float[F]{prim.Sin(x.v)} }
func (x Float[F]) Cos() Float[F]   { return Float[F]{prim.Cos(x.v)} }

// SinCos returns x.Sin() and x.Cos(), each computed on its own.
func (x Float[F]) SinCos() (sin, cos Float[F]) {
	return x.Sin(), x.Cos()
}

// Asinh is the inverse hyperbolic sine, ln(x + sqrt(x*x + 1)). Negative
// infinity is returned unchanged; the formula would give NaN.
func (x Float[F]) Asinh() Float[F] {
	if prim.IsInf(x.v, -1) {
		return x
	}
	r := prim.Sqrt(prim.StrictAdd(prim.StrictMul(x.v, x.v), 1))
	return Float[F]{prim.Log(prim.StrictAdd(x.v, r))}
}

// Acosh is the inverse hyperbolic cosine, ln(x + sqrt(x*x - 1)). It is NaN
// for x < 1.
func (x Float[F]) Acosh() Float[F] {
	if x.v < 1 {
		return Float[F]{prim.NaN[F]()}
	}
	r := prim.Sqrt(prim.StrictSub(prim.StrictMul(x.v, x.v), 1))
	return Float[F]{prim.Log(prim.StrictAdd(x.v, r))}
}
