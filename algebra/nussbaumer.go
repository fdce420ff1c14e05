package algebra

// Polynomial products that need no root of unity in the coefficient field:
// negacyclic (mod t^n + 1), linear, and the middle product, after Knuth
// TAOCP 4.6.4 exercise 59.
//
// Small sizes use direct basecases, mid sizes the subtractive Karatsuba,
// and large sizes Nussbaumer's trick: view the length-n input as an m x r
// matrix of length-r polynomials, where t itself acts as a principal 2r-th
// root of unity in F[t]/(t^r + 1), so the outer FFT butterflies cost only
// additions and sign-flipping rotations.
//
// Layering follows the space-conscious structure of the recursion:
// Negacyclic allocates workspace, negacyclicWithWorkspace lifts into the
// matrix view, and negacyclicLifted runs the polynomial FFT. Linear
// allocates its own workspace and enters at negacyclicWithWorkspace; Middle
// does its own lifting and enters at negacyclicLifted.

const (
	kNussbaumerSmall = 64
	kKaratsubaSmall  = 4
)

// Negacyclic computes z = x * y mod (t^n + 1); n is a power of two and all
// three slices have length n.
func Negacyclic[E comparable](n int, z, x, y []E, f Ring[E]) {
	if n <= kNussbaumerSmall {
		karatsubaNegacyclic(n, z, x, y, f)
		return
	}
	X := make([]E, 2*n)
	Y := make([]E, 2*n)
	Z := make([]E, 2*n)
	negacyclicWithWorkspace(n, z, x, y, Z, X, Y, f)
}

// Linear computes the full product z[0:2n] = x * y.
func Linear[E comparable](n int, z, x, y []E, f Ring[E]) {
	if n <= kNussbaumerSmall {
		karatsuba(n, z, x, y, f)
		return
	}
	// workspace shared by the cyclic and negacyclic halves
	X := make([]E, 2*n)
	Y := make([]E, 2*n)
	Z := make([]E, 2*n)

	copy(X[:n], x[:n])
	copy(Y[:n], y[:n])
	cyclicWithWorkspace(n, z, X[:n], Y[:n], Z[n:], X[n:], Y[n:], f)

	negacyclicWithWorkspace(n, z[n:], x, y, X, Y, Z, f)

	for i := 0; i < n; i++ {
		inverseButterfly(&z[i], &z[n+i], f)
	}
}

// Middle computes the transpose of Linear for fixed y:
// z[k] = sum_j x[n+k-j] * y[j], with x of length 2n.
func Middle[E comparable](n int, z, x, y []E, f Ring[E]) {
	if n <= kNussbaumerSmall {
		basecaseMiddle(n, z, x, y, f)
		return
	}
	X := make([]E, 2*n)
	Y := make([]E, 2*n)
	Z := make([]E, 2*n)

	for i := 0; i < n; i++ {
		// cyclic destroys its inputs, so work on copies
		X[i] = f.Addf(x[i], x[i+n])
		Y[i] = y[i]
	}
	cyclicWithWorkspace(n, z, X[:n], Y[:n], Z[n:], X[n:], Y[n:], f)

	m, r := chooseRadix(n)

	// combined half-butterfly and lift of x
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			X[r*i+j] = f.Subf(x[m*j+i], x[m*j+i+n])
		}
	}

	lift(Y, y, m, r)
	negacyclicLifted(m, r, Z, X, Y, f)

	// combined inverse half-butterfly and unlift of Z
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			f.Sub(&z[m*j+i], Z[r*i+j])
			f.Mul(&z[m*j+i], f.Half())
		}
	}
}

func butterfly[E comparable](a0, a1 *E, f Ring[E]) {
	t := *a1
	*a1 = *a0
	f.Add(a0, t)
	f.Sub(a1, t)
}

func inverseButterfly[E comparable](a0, a1 *E, f Ring[E]) {
	t := *a1
	*a1 = *a0
	f.Add(a0, t)
	f.Mul(a0, f.Half())
	f.Sub(a1, t)
	f.Mul(a1, f.Half())
}

func negate[E comparable](x []E, n int, f Ring[E]) {
	for i := 0; i < n; i++ {
		f.Neg(&x[i])
	}
}

func negacyclicWithWorkspace[E comparable](n int, z, x, y, Z, X, Y []E, f Ring[E]) {
	m, r := chooseRadix(n)
	lift(X, x, m, r)
	lift(Y, y, m, r)
	negacyclicLifted(m, r, Z, X, Y, f)
	unlift(Z, z, m, r)
}

func negacyclicLifted[E comparable](m, r int, Z, X, Y []E, f Ring[E]) {
	zerolift(X, m, r, f)
	polyFFT(X, 2*m, r, f)

	zerolift(Y, m, r, f)
	polyFFT(Y, 2*m, r, f)

	for i := 0; i < 2*m; i++ {
		Negacyclic(r, Z[i*r:(i+1)*r], X[i*r:(i+1)*r], Y[i*r:(i+1)*r], f)
	}

	polyIFFT(Z, 2*m, r, f)

	// fold the 2m x r result down to length n with t^r = -1
	for i := 0; i < m; i++ {
		f.Sub(&Z[r*i], Z[r*(m+i)+(r-1)])
		for j := 1; j < r; j++ {
			f.Add(&Z[r*i+j], Z[r*(m+i)+(j-1)])
		}
	}
}

// cyclicWithWorkspace computes the cyclic product z = x * y mod (t^n - 1)
// by peeling negacyclic halves off with butterflies. Destroys x and y; Z,
// X, Y are workspace for the negacyclic calls.
func cyclicWithWorkspace[E comparable](n int, z, x, y, Z, X, Y []E, f Ring[E]) {
	m := n
	for m > kKaratsubaSmall {
		m /= 2
		for k := 0; k < m; k++ {
			butterfly(&x[k], &x[m+k], f)
			butterfly(&y[k], &y[m+k], f)
		}
		negacyclicWithWorkspace(m, z[m:], x[m:], y[m:], Z, X, Y, f)
	}
	basecaseCyclic(m, z, x, y, f)
	for m < n {
		for k := 0; k < m; k++ {
			inverseButterfly(&z[k], &z[m+k], f)
		}
		m *= 2
	}
}

// polyFFT is the outer FFT whose scalars are length-r polynomials:
// butterflies are vector additions, twiddles are rotations with a sign
// flip on the wrapped prefix.
func polyFFT[E comparable](X []E, m, r int, f Ring[E]) {
	for j := m / 2; j >= 1; j /= 2 {
		for s := 0; s < m; s += 2 * j {
			for t := 0; t < j; t++ {
				shift := (r / j) * t
				for l := 0; l < r; l++ {
					butterfly(&X[r*(s+t)+l], &X[r*(s+t+j)+l], f)
				}
				negate(X[r*(s+t+j):], shift, f)
				rotate(X[r*(s+t+j):r*(s+t+j)+r], shift)
			}
		}
	}
}

func polyIFFT[E comparable](X []E, m, r int, f Ring[E]) {
	scale := f.One()
	for j := 1; j < m; j *= 2 {
		f.Mul(&scale, f.Half())
		for s := 0; s < m; s += 2 * j {
			for t := 0; t < j; t++ {
				shift := (r / j) * t
				unrotate(X[r*(s+t+j):r*(s+t+j)+r], shift)
				negate(X[r*(s+t+j):], shift, f)

				for l := 0; l < r; l++ {
					butterfly(&X[r*(s+t)+l], &X[r*(s+t+j)+l], f)
				}
			}
		}
	}
	for i := 0; i < r*m; i++ {
		f.Mul(&X[i], scale)
	}
}

func lift[E any](X []E, x []E, m, r int) {
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			X[r*i+j] = x[m*j+i]
		}
	}
}

func zerolift[E comparable](X []E, m, r int, f Ring[E]) {
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			X[r*(i+m)+j] = f.Zero()
		}
	}
}

func unlift[E any](X []E, x []E, m, r int) {
	for i := 0; i < m; i++ {
		for j := 0; j < r; j++ {
			x[m*j+i] = X[r*i+j]
		}
	}
}

func basecaseCyclic[E comparable](n int, z, x, y []E, f Ring[E]) {
	for k := 0; k < n; k++ {
		s := f.Zero()
		for j := 0; j <= k; j++ {
			f.Add(&s, f.Mulf(x[j], y[k-j]))
		}
		for j := k + 1; j < n; j++ {
			f.Add(&s, f.Mulf(x[j], y[n+k-j]))
		}
		z[k] = s
	}
}

func basecaseNegacyclic[E comparable](n int, z, x, y []E, f Ring[E]) {
	for k := 0; k < n; k++ {
		s := f.Zero()
		for j := 0; j <= k; j++ {
			f.Add(&s, f.Mulf(x[j], y[k-j]))
		}
		for j := k + 1; j < n; j++ {
			f.Sub(&s, f.Mulf(x[j], y[n+k-j]))
		}
		z[k] = s
	}
}

func basecaseLinear[E comparable](n int, z, x, y []E, f Ring[E]) {
	for k := 0; k < n; k++ {
		s := f.Zero()
		for j := 0; j <= k; j++ {
			f.Add(&s, f.Mulf(x[j], y[k-j]))
		}
		z[k] = s
	}
	for k := n; k < 2*n; k++ {
		s := f.Zero()
		for j := k - n + 1; j < n; j++ {
			f.Add(&s, f.Mulf(x[j], y[k-j]))
		}
		z[k] = s
	}
}

func basecaseMiddle[E comparable](n int, z, x, y []E, f Ring[E]) {
	for k := 0; k < n; k++ {
		s := f.Zero()
		for j := 0; j < n; j++ {
			f.Add(&s, f.Mulf(x[n+k-j], y[j]))
		}
		z[k] = s
	}
}

// karatsuba is the subtractive variant: the recombination is all additions,
// so no signs need tracking.
func karatsuba[E comparable](n int, z, x, y []E, f Ring[E]) {
	if n <= kKaratsubaSmall {
		basecaseLinear(n, z, x, y, f)
		return
	}
	var x01, y01 [kNussbaumerSmall / 2]E
	var p [kNussbaumerSmall]E
	h := n / 2
	for i := 0; i < h; i++ {
		x01[i] = f.Subf(x[i], x[i+h])
		y01[i] = f.Subf(y[i+h], y[i])
	}
	karatsuba(h, z, x, y, f)
	karatsuba(h, z[n:], x[h:], y[h:], f)
	karatsuba(h, p[:], x01[:], y01[:], f)
	for i := 0; i < h; i++ {
		f.Add(&z[i+h], z[i+n])
		z[i+n] = z[i+h]
		f.Add(&z[i+h], p[i])
		f.Add(&z[i+h], z[i])
		f.Add(&z[i+n], p[i+h])
		f.Add(&z[i+n], z[i+n+h])
	}
}

func karatsubaNegacyclic[E comparable](n int, z, x, y []E, f Ring[E]) {
	if n <= kKaratsubaSmall {
		basecaseNegacyclic(n, z, x, y, f)
		return
	}
	var x01, y01 [kNussbaumerSmall / 2]E
	var p, q [kNussbaumerSmall]E
	h := n / 2
	for i := 0; i < h; i++ {
		x01[i] = f.Subf(x[i], x[i+h])
		y01[i] = f.Subf(y[i+h], y[i])
	}
	karatsuba(h, z, x, y, f)
	karatsuba(h, q[:], x[h:], y[h:], f)
	karatsuba(h, p[:], x01[:], y01[:], f)
	for i := 0; i < h; i++ {
		f.Add(&z[i+h], q[i])
		f.Sub(&z[i], q[i+h])

		// not quite the same as butterfly
		zi := z[i]
		f.Sub(&z[i], z[i+h])
		f.Add(&z[i+h], zi)

		f.Add(&z[i+h], p[i])
		f.Sub(&z[i], p[i+h])
	}
}

// chooseRadix picks r >= m with r*m == n, m as large as possible.
func chooseRadix(n int) (m, r int) {
	m, r = n, 1
	for r < m {
		r *= 2
		m /= 2
	}
	return m, r
}
