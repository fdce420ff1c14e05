package algebra

// Twiddle tabulates powers of a transform-sized root of unity in the
// quadratic extension.
type Twiddle struct {
	W []Elt2
}

// Reroot scales a root of declared order down to a transform of size n.
func Reroot(omega Elt2, order uint64, n int, c *Fp2) Elt2 {
	check(uint64(n) <= order && order%uint64(n) == 0,
		"root order not divisible by the transform size")
	return c.Powf(omega, order/uint64(n))
}

// NewTwiddle builds the table w[j] = omegaN^j for j up to n/2.
func NewTwiddle(n int, omegaN Elt2, c *Fp2) *Twiddle {
	w := make([]Elt2, n/2+1)
	w[0] = c.One()
	for j := 1; j < len(w); j++ {
		w[j] = c.Mulf(w[j-1], omegaN)
	}
	return &Twiddle{W: w}
}
