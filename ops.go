package relaxed

import "github.com/pfcm/relaxed/internal/prim"

// The relaxed operators come in three shapes each: both operands wrapped
// (Add), a bare right operand (AddFloat) and a bare left operand (FloatAdd).
// All of them return a wrapped result and all of them carry the package's
// precondition: no NaN or infinite operands.

// Add returns x + y under relaxed semantics.
func (x Float[F]) Add(y Float[F]) Float[F] { return Float[F]{prim.Add(x.v, y.v)} }

// Sub returns x - y under relaxed semantics.
func (x Float[F]) Sub(y Float[F]) Float[F] { return Float[F]{prim.Sub(x.v, y.v)} }

// Mul returns x * y under relaxed semantics.
func (x Float[F]) Mul(y Float[F]) Float[F] { return Float[F]{prim.Mul(x.v, y.v)} }

// Div returns x / y under relaxed semantics.
func (x Float[F]) Div(y Float[F]) Float[F] { return Float[F]{prim.Div(x.v, y.v)} }

// Rem returns the remainder of x / y, truncated towards zero so it has the
// sign of x, under relaxed semantics.
func (x Float[F]) Rem(y Float[F]) Float[F] { return Float[F]{prim.Rem(x.v, y.v)} }

// AddFloat returns x + y for a bare y.
func (x Float[F]) AddFloat(y F) Float[F] { return x.Add(Float[F]{y}) }

// SubFloat returns x - y for a bare y.
func (x Float[F]) SubFloat(y F) Float[F] { return x.Sub(Float[F]{y}) }

// MulFloat returns x * y for a bare y.
func (x Float[F]) MulFloat(y F) Float[F] { return x.Mul(Float[F]{y}) }

// DivFloat returns x / y for a bare y.
func (x Float[F]) DivFloat(y F) Float[F] { return x.Div(Float[F]{y}) }

// RemFloat returns x rem y for a bare y.
func (x Float[F]) RemFloat(y F) Float[F] { return x.Rem(Float[F]{y}) }

// FloatAdd returns x + y for a bare x.
func FloatAdd[F Precision](x F, y Float[F]) Float[F] { return Float[F]{x}.Add(y) }

// FloatSub returns x - y for a bare x.
func FloatSub[F Precision](x F, y Float[F]) Float[F] { return Float[F]{x}.Sub(y) }

// FloatMul returns x * y for a bare x.
func FloatMul[F Precision](x F, y Float[F]) Float[F] { return Float[F]{x}.Mul(y) }

// FloatDiv returns x / y for a bare x.
func FloatDiv[F Precision](x F, y Float[F]) Float[F] { return Float[F]{x}.Div(y) }

// FloatRem returns x rem y for a bare x.
func FloatRem[F Precision](x F, y Float[F]) Float[F] { return Float[F]{x}.Rem(y) }

// The assignment forms are exactly *x = x.Op(y), nothing is fused.

// AddAssign sets x to x + y.
func (x *Float[F]) AddAssign(y Float[F]) { *x = x.Add(y) }

// SubAssign sets x to x - y.
func (x *Float[F]) SubAssign(y Float[F]) { *x = x.Sub(y) }

// MulAssign sets x to x * y.
func (x *Float[F]) MulAssign(y Float[F]) { *x = x.Mul(y) }

// DivAssign sets x to x / y.
func (x *Float[F]) DivAssign(y Float[F]) { *x = x.Div(y) }

// RemAssign sets x to x rem y.
func (x *Float[F]) RemAssign(y Float[F]) { *x = x.Rem(y) }

// AddAssignFloat sets x to x + y for a bare y.
func (x *Float[F]) AddAssignFloat(y F) { *x = x.AddFloat(y) }

// SubAssignFloat sets x to x - y for a bare y.
func (x *Float[F]) SubAssignFloat(y F) { *x = x.SubFloat(y) }

// MulAssignFloat sets x to x * y for a bare y.
func (x *Float[F]) MulAssignFloat(y F) { *x = x.MulFloat(y) }

// DivAssignFloat sets x to x / y for a bare y.
func (x *Float[F]) DivAssignFloat(y F) { *x = x.DivFloat(y) }

// RemAssignFloat sets x to x rem y for a bare y.
func (x *Float[F]) RemAssignFloat(y F) { *x = x.RemFloat(y) }

// Neg returns -x. It is not relaxed: the sign bit is flipped for every input,
// so NaNs keep their payload and infinities change sign.
func (x Float[F]) Neg() Float[F] { return Float[F]{prim.Neg(x.v)} }
