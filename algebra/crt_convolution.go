package algebra

import (
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// choosePadding returns the transform length: the smallest power of two
// covering m outputs.
func choosePadding(m int) int {
	check(m > 0, "convolution needs at least one output")
	p := 1
	for p < m {
		p <<= 1
	}
	check(uint64(p) <= OmegaOrder, "transform length exceeds root order")
	return p
}

// CRTConvolution computes products of a varying x against a fixed y by
// lifting both into the CRT basis, transforming, and reconstructing. The
// forward transform of y is taken once at construction, pre-scaled by 1/P
// to compensate for the unscaled backward transform.
//
// The convolver owns its engine and its transformed y; both are immutable
// after construction, so a single convolver may serve concurrent calls.
type CRTConvolution struct {
	crt        *CRT
	f          *Field
	n, m       int
	padding    int
	yFFT       []CRTElt
	omega      CRTElt
	omegaOrder uint64
}

// NewCRTConvolution builds a convolver for n inputs and m outputs, with the
// basis sized to the ambient field.
func NewCRTConvolution(n, m int, f *Field, y []Elt) *CRTConvolution {
	check(len(y) >= m, "fixed operand shorter than the output count")
	c := &CRTConvolution{
		crt:     NewCRT(minBasisSize(f.Limbs()), f),
		f:       f,
		n:       n,
		m:       m,
		padding: choosePadding(m),
	}
	c.omega = c.crt.Omega()
	c.omegaOrder = c.crt.OmegaOrder()

	pni := c.crt.Invertf(c.crt.ToCRT(f.OfScalar(uint64(c.padding))))
	c.yFFT = make([]CRTElt, c.padding)
	for i := 0; i < m; i++ {
		c.yFFT[i] = c.crt.Mulf(pni, c.crt.ToCRT(y[i]))
	}
	Fftf(c.yFFT, c.omega, c.omegaOrder, c.crt)

	dbg(os.Stderr, "[conv] crt n=%d m=%d padding=%d\n", n, m, c.padding)
	return c
}

// Engine returns the convolver's CRT engine.
func (c *CRTConvolution) Engine() *CRT { return c.crt }

// Convolve computes z[k] = sum_{i<n} x[i] * y[k-i] for k < m, indices taken
// cyclically at the transform length over the zero-padded operands.
func (c *CRTConvolution) Convolve(x []Elt, z []Elt) {
	check(len(x) >= c.n, "input shorter than declared")
	check(len(z) >= c.m, "output shorter than declared")

	xFFT := make([]CRTElt, c.padding)
	for i := 0; i < c.n; i++ {
		xFFT[i] = c.crt.ToCRT(x[i])
	}

	Fftf(xFFT, c.omega, c.omegaOrder, c.crt)
	for i := 0; i < c.padding; i++ {
		c.crt.Mul(&xFFT[i], c.yFFT[i])
	}
	Fftb(xFFT, c.omega, c.omegaOrder, c.crt)

	for k := 0; k < c.m; k++ {
		z[k] = c.crt.ToField(xFFT[k])
	}
}

// ConvolveBatch runs one Convolve per input concurrently over the shared
// engine. Outputs are written to zs[i]; the caller owns all buffers.
func (c *CRTConvolution) ConvolveBatch(xs, zs [][]Elt) error {
	check(len(xs) == len(zs), "batch inputs and outputs must pair up")
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i := range xs {
		x, z := xs[i], zs[i]
		g.Go(func() error {
			c.Convolve(x, z)
			return nil
		})
	}
	return g.Wait()
}
