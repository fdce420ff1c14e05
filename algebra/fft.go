package algebra

// In-place radix-2 transforms over any field that carries a root of unity.
// Instantiated with the CRT engine they run one independent 64-bit NTT per
// basis prime in lockstep; instantiated with an ambient field or extension
// they are the plain field FFT.
//
// Fftb is the plus-sign transform, Fftf the minus-sign one, and
// Fftb(Fftf(a)) = n * a with no 1/n scaling applied anywhere.

// Fftf performs the forward transform of a power-of-two length slice using
// the primitive n-th root omega^{order-order/n}, the inverse of the root
// Fftb uses.
func Fftf[E comparable](a []E, omega E, order uint64, f fftField[E]) {
	n := len(a)
	checkTransformLen(n, order)
	if n <= 1 {
		return
	}
	wn := fftPow(omega, order-order/uint64(n), f)
	fftCore(a, wn, f)
}

// Fftb performs the backward transform, without the 1/n scaling.
func Fftb[E comparable](a []E, omega E, order uint64, f fftField[E]) {
	n := len(a)
	checkTransformLen(n, order)
	if n <= 1 {
		return
	}
	wn := fftPow(omega, order/uint64(n), f)
	fftCore(a, wn, f)
}

func checkTransformLen(n int, order uint64) {
	check(n > 0 && n&(n-1) == 0, "transform length must be a power of two")
	check(uint64(n) <= order && order%uint64(n) == 0,
		"no root of unity of the transform length")
}

// fftCore runs the Cooley-Tukey ladder after a bit-reversal permutation;
// wn must have order len(a).
func fftCore[E comparable](a []E, wn E, f fftField[E]) {
	n := len(a)
	bitrev(a)
	for length := 2; length <= n; length <<= 1 {
		wlen := fftPow(wn, uint64(n/length), f)
		half := length / 2
		for s := 0; s < n; s += length {
			w := f.One()
			for t := 0; t < half; t++ {
				u := a[s+t]
				v := f.Mulf(a[s+t+half], w)
				x := u
				f.Add(&x, v)
				a[s+t] = x
				y := u
				f.Sub(&y, v)
				a[s+t+half] = y
				f.Mul(&w, wlen)
			}
		}
	}
}

// fftPow is a square-and-multiply ladder over the transform field.
func fftPow[E comparable](base E, e uint64, f fftField[E]) E {
	r := f.One()
	for i := 63; i >= 0; i-- {
		r = f.Mulf(r, r)
		if (e>>uint(i))&1 == 1 {
			r = f.Mulf(r, base)
		}
	}
	return r
}
