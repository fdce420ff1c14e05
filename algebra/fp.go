package algebra

import (
	"fmt"
	"math/big"
	"math/bits"
	"os"
)

// Field is a prime field of up to nine 64-bit limbs with elements kept in
// Montgomery form. All tables are computed once at construction; afterwards
// the value is immutable and safe for concurrent readers.
type Field struct {
	mod      Nat
	kw       int
	modBits  int
	mprime   uint64 // -mod^{-1} mod 2^64
	r2       Elt    // 2^{128*kw} mod m, plain limbs
	dotScale Elt    // 2^{64*(2*kw+2)} mod m, plain limbs
	one      Elt
	two      Elt
	half     Elt
	pMinus2  Nat
}

// Elt is a field element in Montgomery form. Limbs beyond the field width
// are zero, so == is element equality for values of the same field.
type Elt [kMaxLimbs]uint64

// NewField constructs the field of the given odd modulus, written in
// decimal or 0x-prefixed hex.
func NewField(modulus string) (*Field, error) {
	m, ok := new(big.Int).SetString(modulus, 0)
	if !ok {
		return nil, fmt.Errorf("algebra: malformed modulus %q", modulus)
	}
	if m.Sign() <= 0 || m.Bit(0) == 0 || m.BitLen() < 2 {
		return nil, fmt.Errorf("algebra: modulus must be odd and > 2")
	}
	if m.BitLen() > 64*kMaxLimbs {
		return nil, fmt.Errorf("algebra: modulus wider than %d bits", 64*kMaxLimbs)
	}
	kw := (m.BitLen() + 63) / 64

	f := &Field{kw: kw, modBits: m.BitLen()}
	var err error
	if f.mod, err = natFromBig(m, kw); err != nil {
		return nil, err
	}
	f.mprime = -invModB(f.mod[0])

	b := new(big.Int).Lsh(big.NewInt(1), 64) // 2^64
	r := new(big.Int).Exp(b, big.NewInt(int64(kw)), m)
	r2 := new(big.Int).Mul(r, r)
	r2.Mod(r2, m)
	ds := new(big.Int).Lsh(big.NewInt(1), uint(64*(2*kw+2)))
	ds.Mod(ds, m)

	oneN, _ := natFromBig(r, kw)
	r2N, _ := natFromBig(r2, kw)
	dsN, _ := natFromBig(ds, kw)
	f.one = Elt(oneN)
	f.r2 = Elt(r2N)
	f.dotScale = Elt(dsN)
	f.two = f.Addf(f.one, f.one)

	// (m+1)/2 = (m-1)/2 + 1; m is odd so neither step carries.
	h := new(big.Int).Rsh(new(big.Int).Sub(m, big.NewInt(1)), 1)
	h.Add(h, big.NewInt(1))
	hN, _ := natFromBig(h, kw)
	f.half = f.toMont(Elt(hN))

	p2 := new(big.Int).Sub(m, big.NewInt(2))
	f.pMinus2, _ = natFromBig(p2, kw)

	dbg(os.Stderr, "[fp] field %d bits, %d limbs\n", f.modBits, f.kw)
	return f, nil
}

// MustField is NewField for moduli known good at compile time.
func MustField(modulus string) *Field {
	f, err := NewField(modulus)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFp256 returns the 256-bit ambient field (P-256 base field).
func NewFp256() *Field {
	return MustField("115792089210356248762697446949407573530086143415290314195533631308867097853951")
}

// NewFp384 returns the 384-bit ambient field (P-384 base field).
func NewFp384() *Field {
	return MustField("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319")
}

// NewFp521 returns the 521-bit ambient field, modulus 2^521 - 1.
func NewFp521() *Field {
	return MustField("6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151")
}

// Limbs returns the field width in 64-bit words.
func (f *Field) Limbs() int { return f.kw }

// ModBits returns the modulus bit length.
func (f *Field) ModBits() int { return f.modBits }

// Modulus returns a copy of the modulus as a big integer.
func (f *Field) Modulus() *big.Int { return natToBig(&f.mod, f.kw) }

func (f *Field) Zero() Elt { return Elt{} }
func (f *Field) One() Elt  { return f.one }
func (f *Field) Two() Elt  { return f.two }
func (f *Field) Half() Elt { return f.half }

// OfScalar lifts a word into the field.
func (f *Field) OfScalar(v uint64) Elt {
	return f.toMont(Elt{0: v})
}

// OfNat lifts a natural of at most kw limbs; values up to 2^{64*kw} are
// folded, not required to be canonical.
func (f *Field) OfNat(n Nat) Elt {
	return f.toMont(Elt(n))
}

// OfString parses a decimal or 0x-prefixed hex element in [0, m).
func (f *Field) OfString(s string) (Elt, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Elt{}, fmt.Errorf("algebra: malformed element %q", s)
	}
	if v.Sign() < 0 || v.Cmp(f.Modulus()) >= 0 {
		return Elt{}, fmt.Errorf("algebra: element %q out of range", s)
	}
	n, err := natFromBig(v, f.kw)
	if err != nil {
		return Elt{}, err
	}
	return f.toMont(Elt(n)), nil
}

// FromMontgomery returns the canonical natural of an element.
func (f *Field) FromMontgomery(e Elt) Nat {
	one := Elt{0: 1}
	return Nat(f.montMul(&e, &one))
}

// Add sets x += y.
func (f *Field) Add(x *Elt, y Elt) {
	var c uint64
	for i := 0; i < f.kw; i++ {
		x[i], c = bits.Add64(x[i], y[i], c)
	}
	if c != 0 || !f.ltMod(x) {
		f.subRaw(x, &f.mod)
	}
}

// Sub sets x -= y.
func (f *Field) Sub(x *Elt, y Elt) {
	var b uint64
	for i := 0; i < f.kw; i++ {
		x[i], b = bits.Sub64(x[i], y[i], b)
	}
	if b != 0 {
		var c uint64
		for i := 0; i < f.kw; i++ {
			x[i], c = bits.Add64(x[i], f.mod[i], c)
		}
	}
}

// Mul sets x *= y in Montgomery form.
func (f *Field) Mul(x *Elt, y Elt) {
	*x = f.montMul(x, &y)
}

// Neg sets x = -x.
func (f *Field) Neg(x *Elt) {
	if *x == (Elt{}) {
		return
	}
	m := f.mod
	var b uint64
	for i := 0; i < f.kw; i++ {
		x[i], b = bits.Sub64(m[i], x[i], b)
	}
}

func (f *Field) Addf(x, y Elt) Elt { f.Add(&x, y); return x }
func (f *Field) Subf(x, y Elt) Elt { f.Sub(&x, y); return x }
func (f *Field) Mulf(x, y Elt) Elt { f.Mul(&x, y); return x }
func (f *Field) Negf(x Elt) Elt    { f.Neg(&x); return x }

// Invertf returns x^{-1} by a Fermat ladder over m-2.
func (f *Field) Invertf(x Elt) Elt {
	check(x != Elt{}, "invert of zero field element")
	r := f.one
	for i := f.modBits - 1; i >= 0; i-- {
		f.Mul(&r, r)
		if f.pMinus2.Bit(i) == 1 {
			f.Mul(&r, x)
		}
	}
	return r
}

// PrescaleForDot prepares an element for the fused dot product used by the
// Garner reconstruction: the canonical natural of the element.
func (f *Field) PrescaleForDot(e Elt) Nat {
	return f.FromMontgomery(e)
}

// Dot folds vs single-word naturals against pre-scaled naturals and reduces
// the wide sum into the field: sum_i vi[i] * garner[i] mod m, Montgomery.
func (f *Field) Dot(vs int, vi []uint64, garner []Nat) Elt {
	var acc [kMaxLimbs + 2]uint64
	w := f.kw + 2
	for i := 0; i < vs; i++ {
		macWide(acc[:w], vi[i], &garner[i], f.kw)
	}
	return f.reduceWide(acc[:w], &f.dotScale)
}

// toMont multiplies by R^2: plain value in, Montgomery form out. The input
// may be any kw-limb natural.
func (f *Field) toMont(v Elt) Elt {
	return f.montMul(&v, &f.r2)
}

// ltMod reports x < m over the live limbs.
func (f *Field) ltMod(x *Elt) bool {
	for i := f.kw - 1; i >= 0; i-- {
		if x[i] != f.mod[i] {
			return x[i] < f.mod[i]
		}
	}
	return false
}

func (f *Field) subRaw(x *Elt, m *Nat) {
	var b uint64
	for i := 0; i < f.kw; i++ {
		x[i], b = bits.Sub64(x[i], m[i], b)
	}
}

// montMul is the CIOS Montgomery product a*b*R^{-1} mod m. At least one
// operand must be < m; the other may be any kw-limb natural.
func (f *Field) montMul(a, b *Elt) Elt {
	k := f.kw
	var t [kMaxLimbs + 2]uint64
	for i := 0; i < k; i++ {
		// t += a[i] * b
		var carry uint64
		for j := 0; j < k; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c1, c2 uint64
			lo, c1 = bits.Add64(lo, t[j], 0)
			lo, c2 = bits.Add64(lo, carry, 0)
			t[j] = lo
			carry = hi + c1 + c2
		}
		var c uint64
		t[k], c = bits.Add64(t[k], carry, 0)
		t[k+1] += c

		// t = (t + m0*mod) / 2^64
		m0 := t[0] * f.mprime
		carry = 0
		for j := 0; j < k; j++ {
			hi, lo := bits.Mul64(m0, f.mod[j])
			var c1, c2 uint64
			lo, c1 = bits.Add64(lo, t[j], 0)
			lo, c2 = bits.Add64(lo, carry, 0)
			if j > 0 {
				t[j-1] = lo
			}
			carry = hi + c1 + c2
		}
		t[k-1], c = bits.Add64(t[k], carry, 0)
		t[k] = t[k+1] + c
		t[k+1] = 0
	}

	var r Elt
	copy(r[:k], t[:k])
	if t[k] != 0 || !f.ltMod(&r) {
		f.subRaw(&r, &f.mod)
	}
	return r
}

// reduceWide folds a natural of w >= kw limbs into the field via w-kw
// Montgomery steps and one scaled multiply; scale must be 2^{64*(w+kw)} mod m.
func (f *Field) reduceWide(n []uint64, scale *Elt) Elt {
	k, w := f.kw, len(n)
	var buf [2*kMaxLimbs + 4]uint64
	copy(buf[:], n)
	var top uint64
	for t := 0; t < w-k; t++ {
		m0 := buf[t] * f.mprime
		var carry uint64
		for j := 0; j < k; j++ {
			hi, lo := bits.Mul64(m0, f.mod[j])
			var c1, c2 uint64
			lo, c1 = bits.Add64(lo, buf[t+j], 0)
			lo, c2 = bits.Add64(lo, carry, 0)
			buf[t+j] = lo
			carry = hi + c1 + c2
		}
		c := carry
		for j := t + k; j < w && c != 0; j++ {
			buf[j], c = bits.Add64(buf[j], c, 0)
		}
		top += c
	}
	var v Elt
	copy(v[:k], buf[w-k:w])
	if top != 0 || !f.ltMod(&v) {
		f.subRaw(&v, &f.mod)
	}
	return f.montMul(&v, scale)
}
