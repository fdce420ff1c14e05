package algebra

// RFFTConvolution serves the convolution contract for fields whose
// multiplicative group has no useful two-adic root by moving to the
// quadratic extension: the unit circle there is rich in roots of two-power
// order. Real operands go through the half-complex transform, the spectra
// multiply pointwise, and the backward transform lands back in the base
// field. Same fixed-y lifecycle and cyclic-at-padding contract as the CRT
// convolver.
type RFFTConvolution struct {
	c          *Fp2
	f          *Field
	n, m       int
	padding    int
	yFFT       []Elt
	omega      Elt2
	omegaOrder uint64
}

// NewRFFTConvolution builds the convolver; omega must be a unit-circle
// root of the declared order in the extension, with omega^{omegaOrder/4} = i.
func NewRFFTConvolution(n, m int, c *Fp2, omega Elt2, omegaOrder uint64, y []Elt) *RFFTConvolution {
	check(len(y) >= m, "fixed operand shorter than the output count")
	f := c.BaseField()
	r := &RFFTConvolution{
		c:          c,
		f:          f,
		n:          n,
		m:          m,
		padding:    choosePaddingFor(m, omegaOrder),
		omega:      omega,
		omegaOrder: omegaOrder,
	}

	pni := f.Invertf(f.OfScalar(uint64(r.padding)))
	r.yFFT = make([]Elt, r.padding)
	for i := 0; i < m; i++ {
		r.yFFT[i] = f.Mulf(pni, y[i])
	}
	R2hc(r.yFFT, r.omega, r.omegaOrder, c)
	return r
}

// Convolve computes z[k] = sum_{i<n} x[i] * y[k-i] for k < m, cyclically at
// the transform length.
func (r *RFFTConvolution) Convolve(x []Elt, z []Elt) {
	check(len(x) >= r.n, "input shorter than declared")
	check(len(z) >= r.m, "output shorter than declared")

	xFFT := make([]Elt, r.padding)
	copy(xFFT, x[:r.n])

	R2hc(xFFT, r.omega, r.omegaOrder, r.c)
	hcMul(xFFT, r.yFFT, r.f)
	Hc2r(xFFT, r.omega, r.omegaOrder, r.c)

	copy(z[:r.m], xFFT[:r.m])
}

// hcMul multiplies two half-complex spectra into a: the real slots at 0 and
// n/2 multiply directly, every other bin is a complex product of (a[j],
// a[n-j]) pairs.
func hcMul(a, b []Elt, f *Field) {
	n := len(a)
	f.Mul(&a[0], b[0])
	if n == 1 {
		return
	}
	f.Mul(&a[n/2], b[n/2])
	for j := 1; 2*j < n; j++ {
		ar, ai := a[j], a[n-j]
		br, bi := b[j], b[n-j]
		a[j] = f.Subf(f.Mulf(ar, br), f.Mulf(ai, bi))
		a[n-j] = f.Addf(f.Mulf(ar, bi), f.Mulf(ai, br))
	}
}
