package algebra

// Real FFT and its inverse over the base field of a quadratic extension.
//
// The FFT F[j] of a real input is conjugate-symmetric, F[j] = conj(F[n-j]),
// so it fits a real array of the same length in the half-complex layout
//
//	HC[j] = (2j <= n) ? re(F[j]) : im(F[n-j])
//
// (Sorensen/Jones/Heideman/Burrus real-valued FFT storage; the FFTW and GSL
// "halfcomplex" format). HC[0] and HC[n/2] are real. R2hc is the forward
// (minus sign) transform, Hc2r the backward one, and Hc2r(R2hc(a)) = n * a.
//
// The transform is a radix-4 Cooley-Tukey, decimation-in-time forward and
// decimation-in-frequency backward. Radix 4 wins over radix 2 here because
// multiplying by the fourth root i is free once i^2 = -1 is hardcoded; that
// is also why the root must satisfy omega^{n/4} = i rather than its
// conjugate, and why substituting the conjugate root is rejected instead of
// silently flipping every butterfly sign. When log2 n is odd the leftover
// radix-2 step runs in the first level, which has no twiddle factors.
//
// A half-complex array of even n has two excess real slots, so each level
// needs three butterfly kinds: the twiddle-free first butterfly on real
// inputs (r2hcI), the j = m/2 butterfly with eighth-root twiddles (r2hcII,
// a type-II transform in DCT terminology), and the general complex
// butterfly (hc2hcf), which applies conjugated twiddles before the
// transform. The backward direction mirrors them (hc2rI, hc2rIII, hc2hcb),
// applying twiddles after.

func validateRoot(omega Elt2, c *Fp2) {
	check(c.Mulf(omega, c.Conjf(omega)) == c.One(),
		"root of unity not on the unit circle")
}

func validateI(ii Elt2, c *Fp2) {
	check(ii == c.I(), "wrong sign for i(), need the conjugate root")
}

// R2hc transforms a real array of power-of-two length into half-complex
// layout, in place.
func R2hc(a []Elt, omega Elt2, omegaOrder uint64, c *Fp2) {
	f := c.BaseField()
	validateRoot(omega, c)
	n := len(a)

	if n == 2 {
		r2hcI2(a, 1, f)
		return
	}
	if n < 4 {
		return
	}

	omegaN := Reroot(omega, omegaOrder, n, c)
	roots := NewTwiddle(n, omegaN, c)
	validateI(roots.W[n/4], c)

	bitrev(a)

	m := n
	for m > 4 {
		m /= 4
	}

	if m == 2 {
		for k := 0; k < n; k += 2 {
			r2hcI2(a[k:], 1, f)
		}
	} else {
		// m == 4
		for k := 0; k < n; k += 4 {
			r2hcI4(a[k:], 1, f)
		}
	}

	for ; m < n; m = 4 * m {
		ws := n / (4 * m)
		for k := 0; k < n; k += 4 * m {
			r2hcI4(a[k:], m, f) // j == 0

			var j int
			for j = 1; j+j < m; j++ {
				hc2hcf4(a[k+j:], a[k+m-j:], m,
					roots.W[j*ws], roots.W[2*j*ws], roots.W[3*j*ws], f)
			}

			r2hcII4(a[k+j:], m, roots.W[j*ws], f) // j == m/2
		}
	}
}

// Hc2r transforms a half-complex array back to real, in place, scaled by n.
func Hc2r(a []Elt, omega Elt2, omegaOrder uint64, c *Fp2) {
	f := c.BaseField()
	validateRoot(omega, c)
	n := len(a)

	if n == 2 {
		hc2rI2(a, 1, f)
		return
	}
	if n < 4 {
		return
	}

	omegaN := Reroot(omega, omegaOrder, n, c)
	roots := NewTwiddle(n, omegaN, c)
	validateI(roots.W[n/4], c)

	m := n
	for m > 4 {
		m /= 4
		ws := n / (4 * m)
		for k := 0; k < n; k += 4 * m {
			hc2rI4(a[k:], m, f) // j == 0

			var j int
			for j = 1; j+j < m; j++ {
				hc2hcb4(a[k+j:], a[k+m-j:], m,
					roots.W[j*ws], roots.W[2*j*ws], roots.W[3*j*ws], f)
			}

			hc2rIII4(a[k+j:], m, roots.W[j*ws], f) // j == m/2
		}
	}

	if m == 2 {
		for k := 0; k < n; k += 2 {
			hc2rI2(a[k:], 1, f)
		}
	} else {
		// m == 4
		for k := 0; k < n; k += 4 {
			hc2rI4(a[k:], 1, f)
		}
	}

	bitrev(a)
}

func r2hcI2(a []Elt, s int, f *Field) {
	t := a[s]
	a[s] = a[0]
	f.Add(&a[0], t)
	f.Sub(&a[s], t)
}

func r2hcI4(a []Elt, s int, f *Field) {
	x0 := a[0]
	x1 := a[s]
	z0 := f.Addf(x0, x1)
	x2 := a[2*s]
	x3 := a[3*s]
	z1 := f.Addf(x2, x3)
	a[0] = f.Addf(z0, z1)
	a[2*s] = f.Subf(z0, z1)
	a[s] = f.Subf(x0, x1)
	a[3*s] = f.Subf(x3, x2)
}

// r2hcII4 is the j = m/2 butterfly, where w8 squares to i.
func r2hcII4(a []Elt, s int, w8 Elt2, f *Field) {
	x2 := a[2*s]
	x3 := a[3*s]
	z0 := f.Addf(x2, x3)
	z1 := f.Subf(x2, x3)
	f.Mul(&z0, w8.Im)
	f.Mul(&z1, w8.Re)
	x0 := a[0]
	x1 := a[s]
	a[0] = f.Addf(x0, z1)
	a[s] = f.Subf(x0, z1)
	a[2*s] = f.Subf(x1, z0)
	a[3*s] = f.Addf(x1, z0)
	f.Neg(&a[3*s])
}

func hc2hcf4(ar, ai []Elt, s int, tw1, tw2, tw3 Elt2, f *Field) {
	cmulj(&ar[s], &ai[s], tw2.Re, tw2.Im, f)
	y0r := f.Addf(ar[0], ar[s])
	y0i := f.Addf(ai[0], ai[s])
	y1r := f.Subf(ar[0], ar[s])
	y1i := f.Subf(ai[0], ai[s])
	cmulj(&ar[2*s], &ai[2*s], tw1.Re, tw1.Im, f)
	cmulj(&ar[3*s], &ai[3*s], tw3.Re, tw3.Im, f)
	y2r := f.Addf(ar[3*s], ar[2*s])
	y3r := f.Subf(ar[3*s], ar[2*s])
	y2i := f.Addf(ai[2*s], ai[3*s])
	y3i := f.Subf(ai[2*s], ai[3*s])
	ar[0] = f.Addf(y0r, y2r)
	ai[s] = f.Subf(y0r, y2r)
	ar[s] = f.Addf(y1r, y3i)
	ai[0] = f.Subf(y1r, y3i)
	ai[3*s] = f.Addf(y2i, y0i)
	ar[2*s] = f.Subf(y2i, y0i)
	ai[2*s] = f.Addf(y3r, y1i)
	ar[3*s] = f.Subf(y3r, y1i)
}

func hc2rI2(a []Elt, s int, f *Field) {
	t := a[s]
	a[s] = a[0]
	f.Add(&a[0], t)
	f.Sub(&a[s], t)
}

func hc2rI4(a []Elt, s int, f *Field) {
	y0 := f.Addf(a[0], a[2*s])
	y1 := f.Subf(a[0], a[2*s])
	y2 := f.Addf(a[s], a[s])
	y3 := f.Addf(a[3*s], a[3*s])
	a[0] = f.Addf(y0, y2)
	a[s] = f.Subf(y0, y2)
	a[2*s] = f.Subf(y1, y3)
	a[3*s] = f.Addf(y1, y3)
}

// hc2rIII4 inverts r2hcII4; a type-III transform, being the inverse of a
// type-II.
func hc2rIII4(a []Elt, s int, w8 Elt2, f *Field) {
	x0 := f.Addf(a[0], a[0])
	x1 := f.Addf(a[s], a[s])
	x2 := f.Addf(a[2*s], a[2*s])
	x3 := f.Addf(a[3*s], a[3*s])
	a[0] = f.Addf(x0, x1)
	a[s] = f.Subf(x2, x3)
	z0 := f.Subf(x0, x1)
	f.Mul(&z0, w8.Re)
	z1 := f.Addf(x3, x2)
	f.Mul(&z1, w8.Im)
	a[2*s] = f.Subf(z0, z1)
	a[3*s] = f.Addf(z0, z1)
	f.Neg(&a[3*s])
}

func hc2hcb4(ar, ai []Elt, s int, tw1, tw2, tw3 Elt2, f *Field) {
	z0 := f.Addf(ar[0], ai[s])
	z1 := f.Subf(ar[0], ai[s])
	z2 := f.Addf(ar[s], ai[0])
	z3 := f.Subf(ar[s], ai[0])
	z4 := f.Addf(ai[3*s], ar[2*s])
	z5 := f.Subf(ai[3*s], ar[2*s])
	z6 := f.Addf(ai[2*s], ar[3*s])
	z7 := f.Subf(ai[2*s], ar[3*s])
	ar[0] = f.Addf(z0, z2)
	ai[0] = f.Addf(z5, z7)
	ar[s] = f.Subf(z0, z2)
	ai[s] = f.Subf(z5, z7)
	cmul(&ar[s], &ai[s], tw2.Re, tw2.Im, f)
	ar[2*s] = f.Subf(z1, z6)
	ai[2*s] = f.Addf(z4, z3)
	cmul(&ar[2*s], &ai[2*s], tw1.Re, tw1.Im, f)
	ar[3*s] = f.Addf(z1, z6)
	ai[3*s] = f.Subf(z4, z3)
	cmul(&ar[3*s], &ai[3*s], tw3.Re, tw3.Im, f)
}

// cmul computes (xr, xi) *= (br, bi) with Karatsuba, 3 mul + 5 add.
func cmul(xr, xi *Elt, br, bi Elt, f *Field) {
	p0 := f.Mulf(*xr, br)
	p1 := f.Mulf(*xi, bi)
	a01 := f.Addf(*xr, *xi)
	b01 := f.Addf(br, bi)
	*xr = f.Subf(p0, p1)
	f.Mul(&a01, b01)
	f.Sub(&a01, p0)
	f.Sub(&a01, p1)
	*xi = a01
}

// cmulj computes (xr, xi) *= conj(br, bi).
func cmulj(xr, xi *Elt, br, bi Elt, f *Field) {
	p0 := f.Mulf(*xr, br)
	p1 := f.Mulf(*xi, bi)
	a01 := f.Addf(*xr, *xi)
	b01 := f.Subf(br, bi)
	*xr = f.Addf(p0, p1)
	f.Mul(&a01, b01)
	f.Sub(&a01, p0)
	f.Add(&a01, p1)
	*xi = a01
}
