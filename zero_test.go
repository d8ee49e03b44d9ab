package relaxed

import (
	"math"
	"testing"
)

func TestZero(t *testing.T) {
	z := Float[float64]{}.Zero()
	if !sameBits(z.Get(), 0) {
		t.Errorf("Zero() = %v, want: +0", z)
	}
	var f32 Float[float32]
	if z32 := f32.Zero(); !sameBits(z32.Get(), 0) {
		t.Errorf("Zero() = %v, want: +0", z32)
	}
	for _, c := range []struct {
		in   float64
		zero bool
	}{
		{0, true},
		{math.Copysign(0, -1), true},
		{0.25, false},
		{-1, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	} {
		if got := New(c.in).IsZero(); got != c.zero {
			t.Errorf("New(%v).IsZero() = %v, want: %v", c.in, got, c.zero)
		}
		if got := New(float32(c.in)).IsZero(); got != c.zero {
			t.Errorf("New(float32(%v)).IsZero() = %v, want: %v", c.in, got, c.zero)
		}
	}
}
