package relaxed

import "fmt"

// Format implements fmt.Formatter by handing the verb, flags, width and
// precision straight to the held value, so a Float prints exactly like the
// float it holds under every verb, %v, %#v, %e and %E included.
func (x Float[F]) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), x.v)
}

// String formats the held value as %v does.
func (x Float[F]) String() string {
	return fmt.Sprint(x.v)
}
