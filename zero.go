package relaxed

// Zero and IsZero give Float the additive identity capability used by
// generic numeric code such as package additive. The core package does not
// depend on that code: any interface with these methods is satisfied.

// Zero returns a wrapped +0. The receiver is ignored.
func (Float[F]) Zero() Float[F] {
	return Float[F]{}
}

// IsZero reports whether x holds +0 or -0.
func (x Float[F]) IsZero() bool {
	return x.v == 0
}
