// Package additive is a small generic numeric abstraction built around the
// additive identity: types that can produce a zero and recognise one, and
// algorithms that only need that plus addition (and, for Dot,
// multiplication).
//
// relaxed.Float satisfies every interface here, so relaxed values can be
// summed and dotted generically; Plain does the same for bare floats with
// ordinary arithmetic. Nothing in package relaxed imports this one.
package additive

import "golang.org/x/exp/constraints"

// Identity is implemented by types with an additive identity. Zero ignores
// its receiver, so the zero value of T can be used to call it.
type Identity[T any] interface {
	Zero() T
	IsZero() bool
}

// Monoid is an Identity with addition.
type Monoid[T any] interface {
	Identity[T]
	Add(T) T
}

// Semiring is a Monoid with multiplication.
type Semiring[T any] interface {
	Monoid[T]
	Mul(T) T
}

// Zero returns the additive identity of T.
func Zero[T Identity[T]]() T {
	var t T
	return t.Zero()
}

// Sum adds up xs left to right, starting from Zero.
func Sum[T Monoid[T]](xs ...T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Dot returns the sum of xs[i]*ys[i]. It panics if the slices differ in
// length.
func Dot[T Semiring[T]](xs, ys []T) T {
	if len(xs) != len(ys) {
		panic("additive: Dot of slices with different lengths")
	}
	acc := Zero[T]()
	for i, x := range xs {
		acc = acc.Add(x.Mul(ys[i]))
	}
	return acc
}

// CountZero returns how many elements of xs are zero.
func CountZero[T Identity[T]](xs []T) int {
	n := 0
	for _, x := range xs {
		if x.IsZero() {
			n++
		}
	}
	return n
}

// Plain is a bare float with ordinary arithmetic, for comparison with relaxed
// arithmetic in generic code.
type Plain[F constraints.Float] struct {
	V F
}

func (Plain[F]) Zero() Plain[F]            { return Plain[F]{} }
func (p Plain[F]) IsZero() bool            { return p.V == 0 }
func (p Plain[F]) Add(q Plain[F]) Plain[F] { return Plain[F]{F(p.V + q.V)} }
func (p Plain[F]) Mul(q Plain[F]) Plain[F] { return Plain[F]{F(p.V * q.V)} }
