package algebra

// FFTConvolution is the convolution contract served directly in an ambient
// field that carries a root of unity of sufficient order. It exists as the
// reference the CRT path is checked against, and as the fast path for
// fields where such a root is available.
type FFTConvolution struct {
	f          *Field
	n, m       int
	padding    int
	yFFT       []Elt
	omega      Elt
	omegaOrder uint64
}

// NewFFTConvolution builds the convolver; omega must have order omegaOrder
// in f, with the padding length dividing the order.
func NewFFTConvolution(n, m int, f *Field, omega Elt, omegaOrder uint64, y []Elt) *FFTConvolution {
	check(len(y) >= m, "fixed operand shorter than the output count")
	c := &FFTConvolution{
		f:          f,
		n:          n,
		m:          m,
		padding:    choosePaddingFor(m, omegaOrder),
		omega:      omega,
		omegaOrder: omegaOrder,
	}

	pni := f.Invertf(f.OfScalar(uint64(c.padding)))
	c.yFFT = make([]Elt, c.padding)
	for i := 0; i < m; i++ {
		c.yFFT[i] = f.Mulf(pni, y[i])
	}
	Fftf(c.yFFT, c.omega, c.omegaOrder, f)
	return c
}

func choosePaddingFor(m int, order uint64) int {
	p := 1
	for p < m {
		p <<= 1
	}
	check(uint64(p) <= order && order%uint64(p) == 0,
		"transform length exceeds root order")
	return p
}

// Convolve computes z[k] = sum_{i<n} x[i] * y[k-i] for k < m, cyclically at
// the transform length.
func (c *FFTConvolution) Convolve(x []Elt, z []Elt) {
	check(len(x) >= c.n, "input shorter than declared")
	check(len(z) >= c.m, "output shorter than declared")

	xFFT := make([]Elt, c.padding)
	copy(xFFT, x[:c.n])

	Fftf(xFFT, c.omega, c.omegaOrder, c.f)
	for i := 0; i < c.padding; i++ {
		c.f.Mul(&xFFT[i], c.yFFT[i])
	}
	Fftb(xFFT, c.omega, c.omegaOrder, c.f)

	copy(z[:c.m], xFFT[:c.m])
}
