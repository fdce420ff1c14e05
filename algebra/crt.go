package algebra

import "os"

// CRT carries an ambient-field value as residues modulo a prefix of the
// basis primes. Componentwise 64-bit arithmetic then stands in for wide
// arithmetic as long as the represented integer stays below the basis
// product; with 9, 13 and 17 primes that bound covers the products and
// transform sums of 256-, 384- and 521-bit fields.
//
// Construction precomputes everything needed to move in and out of the
// representation, so one engine serves many convolutions. The engine is
// immutable after construction and safe for concurrent readers.
type CRT struct {
	f  *Field
	vs int

	bf          [BasisSize]*Field64
	k           [3]CRTElt
	reduceScale [BasisSize]uint64
	garner      [BasisSize]Nat
	cij         [BasisSize][BasisSize]uint64
}

// CRTElt is a residue vector. Lanes beyond the engine size stay zero, so ==
// is equality for elements of the same engine.
type CRTElt [BasisSize]uint64

// NewCRT builds an engine over the first vs basis primes for the given
// ambient field.
func NewCRT(vs int, f *Field) *CRT {
	check(vs <= BasisSize, "basis size exceeds prime table")
	check(vs >= minBasisSize(f.Limbs()), "basis too small for ambient field width")

	c := &CRT{f: f, vs: vs}
	for b := 0; b < vs; b++ {
		c.bf[b] = NewField64(Primes17[b])
	}
	for b := 0; b < vs; b++ {
		c.k[0][b] = c.bf[b].Zero()
		c.k[1][b] = c.bf[b].One()
		c.k[2][b] = c.bf[b].Two()
		c.reduceScale[b] = c.bf[b].ReduceScale(f.Limbs())
	}

	// garner[i] is prod_{j<i} p_j in the ambient field, prepared for the
	// fused dot product of ToField. garner[0] = 1.
	for i := 0; i < vs; i++ {
		g := f.One()
		for j := 0; j < i; j++ {
			f.Mul(&g, f.OfScalar(Primes17[j]))
		}
		c.garner[i] = f.PrescaleForDot(g)
	}

	// cij[i][j] = (p_j mod p_i)^{-1} in the i-th base field, Montgomery.
	for i := 0; i < vs; i++ {
		for j := 0; j < i; j++ {
			c.cij[i][j] = c.bf[i].Invertf(c.bf[i].OfScalar(Primes17[j]))
		}
	}

	dbg(os.Stderr, "[crt] basis=%d ambient=%d bits\n", vs, f.ModBits())
	return c
}

// minBasisSize maps the ambient width in limbs to the smallest supported
// basis: 9 primes for 256-bit fields, 13 for 384, 17 for 521.
func minBasisSize(kw int) int {
	switch {
	case kw <= 4:
		return 9
	case kw <= 6:
		return 13
	default:
		return 17
	}
}

// NewCRT256 returns the 9-prime engine for fields of up to 256 bits.
func NewCRT256(f *Field) *CRT { return NewCRT(9, f) }

// NewCRT384 returns the 13-prime engine for fields of up to 384 bits.
func NewCRT384(f *Field) *CRT { return NewCRT(13, f) }

// NewCRT521 returns the full 17-prime engine.
func NewCRT521(f *Field) *CRT { return NewCRT(17, f) }

// BasisCount returns the number of live residue lanes.
func (c *CRT) BasisCount() int { return c.vs }

// Field returns the ambient field the engine projects from.
func (c *CRT) Field() *Field { return c.f }

func (c *CRT) Zero() CRTElt { return c.k[0] }
func (c *CRT) One() CRTElt  { return c.k[1] }
func (c *CRT) Two() CRTElt  { return c.k[2] }

// Omega returns the basis root of unity: lane b holds a root of order 2^22
// in the b-th base prime field.
func (c *CRT) Omega() CRTElt {
	var r CRTElt
	for b := 0; b < c.vs; b++ {
		r[b] = c.bf[b].OfScalar(Omega17[b])
	}
	return r
}

// OmegaOrder returns the order of Omega.
func (c *CRT) OmegaOrder() uint64 { return OmegaOrder }

// ToCRT projects an ambient element onto the basis.
func (c *CRT) ToCRT(e Elt) CRTElt {
	var r CRTElt
	n := c.f.FromMontgomery(e)
	for b := 0; b < c.vs; b++ {
		r[b] = c.bf[b].Reduce(n[:c.f.Limbs()], c.reduceScale[b])
	}
	return r
}

// ToField reconstructs the unique ambient element congruent to x modulo
// every basis prime, by Garner's method: with cij * p_j = 1 mod p_i,
//
//	v1 = x1
//	v2 = (x2 - v1) * c12 mod p2
//	v3 = ((x3 - v1) * c13 - v2) * c23 mod p3 ...
//	u  = sum_i v_i * p_{i-1}...p_1
//
// Only single-word arithmetic produces the v_i, and the final wide sum is
// folded into the ambient modulus by one fused dot product. The inner loop
// deliberately mixes representations: the v_i are naturals in [0, p), and
// because cij is in Montgomery form the product lands back in natural form,
// saving a conversion on every step.
func (c *CRT) ToField(x CRTElt) Elt {
	var vi [BasisSize]uint64
	for j := 0; j < c.vs; j++ {
		vi[j] = c.bf[j].FromMontgomery(x[j])
	}

	// Outer loop over j keeps the inner iterations independent of each
	// other, so they can issue in parallel.
	for j := 1; j < c.vs; j++ {
		for i := j; i < c.vs; i++ {
			fi := c.bf[i]
			vi[i] = fi.Mulf(fi.Subf(vi[i], vi[j-1]), c.cij[i][j-1])
		}
	}

	return c.f.Dot(c.vs, vi[:c.vs], c.garner[:c.vs])
}

// Add sets x += y lane-wise.
func (c *CRT) Add(x *CRTElt, y CRTElt) {
	for i := 0; i < c.vs; i++ {
		x[i] = c.bf[i].Addf(x[i], y[i])
	}
}

// Sub sets x -= y lane-wise.
func (c *CRT) Sub(x *CRTElt, y CRTElt) {
	for i := 0; i < c.vs; i++ {
		x[i] = c.bf[i].Subf(x[i], y[i])
	}
}

// Mul sets x *= y lane-wise, Montgomery.
func (c *CRT) Mul(x *CRTElt, y CRTElt) {
	for i := 0; i < c.vs; i++ {
		x[i] = c.bf[i].Mulf(x[i], y[i])
	}
}

// Neg sets x = -x lane-wise.
func (c *CRT) Neg(x *CRTElt) {
	for i := 0; i < c.vs; i++ {
		x[i] = c.bf[i].Negf(x[i])
	}
}

// Invert inverts every lane; a zero lane is not invertible.
func (c *CRT) Invert(x *CRTElt) {
	for i := 0; i < c.vs; i++ {
		check(x[i] != 0, "non-invertible element")
		x[i] = c.bf[i].Invertf(x[i])
	}
}

func (c *CRT) Addf(x, y CRTElt) CRTElt { c.Add(&x, y); return x }
func (c *CRT) Subf(x, y CRTElt) CRTElt { c.Sub(&x, y); return x }
func (c *CRT) Mulf(x, y CRTElt) CRTElt { c.Mul(&x, y); return x }
func (c *CRT) Negf(x CRTElt) CRTElt    { c.Neg(&x); return x }
func (c *CRT) Invertf(x CRTElt) CRTElt { c.Invert(&x); return x }
