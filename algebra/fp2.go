package algebra

// Fp2 is the quadratic extension F[i]/(i^2 + 1) of a base field. It exists
// for base fields with m = 3 mod 4, where -1 is a non-residue.
type Fp2 struct {
	f *Field
}

// Elt2 is an extension element.
type Elt2 struct {
	Re Elt
	Im Elt
}

// NewFp2 wraps a base field into its quadratic extension.
func NewFp2(f *Field) *Fp2 {
	check(f.mod[0]&3 == 3, "i^2 = -1 needs modulus 3 mod 4")
	return &Fp2{f: f}
}

// BaseField returns the underlying field.
func (c *Fp2) BaseField() *Field { return c.f }

func (c *Fp2) Zero() Elt2 { return Elt2{} }
func (c *Fp2) One() Elt2  { return Elt2{Re: c.f.One()} }
func (c *Fp2) Half() Elt2 { return Elt2{Re: c.f.Half()} }

// I returns the positive imaginary unit (0, 1).
func (c *Fp2) I() Elt2 { return Elt2{Im: c.f.One()} }

// OfString parses the real and imaginary parts.
func (c *Fp2) OfString(re, im string) (Elt2, error) {
	r, err := c.f.OfString(re)
	if err != nil {
		return Elt2{}, err
	}
	i, err := c.f.OfString(im)
	if err != nil {
		return Elt2{}, err
	}
	return Elt2{Re: r, Im: i}, nil
}

// OfBase embeds a base-field element.
func (c *Fp2) OfBase(e Elt) Elt2 { return Elt2{Re: e} }

func (c *Fp2) Add(x *Elt2, y Elt2) {
	c.f.Add(&x.Re, y.Re)
	c.f.Add(&x.Im, y.Im)
}

func (c *Fp2) Sub(x *Elt2, y Elt2) {
	c.f.Sub(&x.Re, y.Re)
	c.f.Sub(&x.Im, y.Im)
}

// Mul is the Karatsuba product, 3 base multiplications.
func (c *Fp2) Mul(x *Elt2, y Elt2) {
	f := c.f
	p0 := f.Mulf(x.Re, y.Re)
	p1 := f.Mulf(x.Im, y.Im)
	a01 := f.Addf(x.Re, x.Im)
	b01 := f.Addf(y.Re, y.Im)
	x.Re = f.Subf(p0, p1)
	f.Mul(&a01, b01)
	f.Sub(&a01, p0)
	f.Sub(&a01, p1)
	x.Im = a01
}

func (c *Fp2) Neg(x *Elt2) {
	c.f.Neg(&x.Re)
	c.f.Neg(&x.Im)
}

// Conj negates the imaginary part in place.
func (c *Fp2) Conj(x *Elt2) { c.f.Neg(&x.Im) }

func (c *Fp2) Addf(x, y Elt2) Elt2 { c.Add(&x, y); return x }
func (c *Fp2) Subf(x, y Elt2) Elt2 { c.Sub(&x, y); return x }
func (c *Fp2) Mulf(x, y Elt2) Elt2 { c.Mul(&x, y); return x }
func (c *Fp2) Negf(x Elt2) Elt2    { c.Neg(&x); return x }
func (c *Fp2) Conjf(x Elt2) Elt2   { c.Conj(&x); return x }

// Invertf returns x^{-1} = conj(x) / (re^2 + im^2).
func (c *Fp2) Invertf(x Elt2) Elt2 {
	f := c.f
	norm := f.Addf(f.Mulf(x.Re, x.Re), f.Mulf(x.Im, x.Im))
	ni := f.Invertf(norm)
	y := c.Conjf(x)
	f.Mul(&y.Re, ni)
	f.Mul(&y.Im, ni)
	return y
}

// Powf raises x to a word exponent.
func (c *Fp2) Powf(x Elt2, e uint64) Elt2 {
	r := c.One()
	for i := 63; i >= 0; i-- {
		r = c.Mulf(r, r)
		if (e>>uint(i))&1 == 1 {
			r = c.Mulf(r, x)
		}
	}
	return r
}
