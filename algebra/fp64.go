package algebra

import "math/bits"

// Field64 is a one-word Montgomery prime field. It hosts the basis primes
// of the CRT representation, all of which lie just below 2^64.
type Field64 struct {
	p      uint64
	mprime uint64 // -p^{-1} mod 2^64
	r2     uint64 // 2^128 mod p
	one    uint64
	two    uint64
}

// NewField64 constructs the field of an odd word-sized prime.
func NewField64(p uint64) *Field64 {
	check(p&1 == 1 && p > 2, "base prime must be odd")
	f := &Field64{p: p}
	f.mprime = -invModB(p)
	_, r := bits.Div64(1, 0, p) // 2^64 mod p
	hi, lo := bits.Mul64(r, r)
	_, f.r2 = bits.Div64(hi, lo, p)
	f.one = r
	f.two = f.Addf(r, r)
	return f
}

func (f *Field64) Modulus() uint64 { return f.p }
func (f *Field64) Zero() uint64    { return 0 }
func (f *Field64) One() uint64     { return f.one }
func (f *Field64) Two() uint64     { return f.two }

// Addf returns a + b mod p.
func (f *Field64) Addf(a, b uint64) uint64 {
	s, c := bits.Add64(a, b, 0)
	if c != 0 || s >= f.p {
		s -= f.p
	}
	return s
}

// Subf returns a - b mod p.
func (f *Field64) Subf(a, b uint64) uint64 {
	d, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		d += f.p
	}
	return d
}

// Negf returns -a mod p.
func (f *Field64) Negf(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.p - a
}

// Mulf is the Montgomery product a*b*2^{-64} mod p. One operand may be any
// word as long as the other is < p.
func (f *Field64) Mulf(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	m := lo * f.mprime
	mh, ml := bits.Mul64(m, f.p)
	_, c := bits.Add64(lo, ml, 0)
	res, c2 := bits.Add64(hi, mh, c)
	if c2 != 0 || res >= f.p {
		res -= f.p
	}
	return res
}

// OfScalar lifts a word into Montgomery form.
func (f *Field64) OfScalar(v uint64) uint64 {
	return f.Mulf(v, f.r2)
}

// FromMontgomery returns the canonical natural in [0, p).
func (f *Field64) FromMontgomery(a uint64) uint64 {
	return f.Mulf(a, 1)
}

// Invertf returns a^{-1} by a Fermat ladder.
func (f *Field64) Invertf(a uint64) uint64 {
	check(a != 0, "invert of zero residue")
	e := f.p - 2
	r := f.one
	for i := 63 - bits.LeadingZeros64(e); i >= 0; i-- {
		r = f.Mulf(r, r)
		if (e>>uint(i))&1 == 1 {
			r = f.Mulf(r, a)
		}
	}
	return r
}

// ReduceScale returns the constant 2^{64*(w+1)} mod p used by Reduce for
// naturals of w limbs.
func (f *Field64) ReduceScale(w int) uint64 {
	s := f.r2
	for i := 0; i < 64*(w-1); i++ {
		s = f.Addf(s, s)
	}
	return s
}

// Reduce folds a little-endian natural into a Montgomery residue using one
// word-dropping step per extra limb and a final scaled multiply. The scale
// must come from ReduceScale(len(n)). Only valid for p > 2^63, which holds
// for every basis prime.
func (f *Field64) Reduce(n []uint64, scale uint64) uint64 {
	w := len(n)
	var buf [kMaxLimbs + 3]uint64
	copy(buf[:], n)
	var top uint64
	for t := 0; t < w-1; t++ {
		m := buf[t] * f.mprime
		hi, lo := bits.Mul64(m, f.p)
		_, c := bits.Add64(buf[t], lo, 0)
		carry := hi + c
		cc := carry
		for j := t + 1; j < w && cc != 0; j++ {
			buf[j], cc = bits.Add64(buf[j], cc, 0)
		}
		top += cc
	}
	v := buf[w-1]
	if top != 0 || v >= f.p {
		v -= f.p
	}
	return f.Mulf(v, scale)
}
