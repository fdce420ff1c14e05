package algebra

import "testing"

// Reference formulas over the quadratic extension of 2^61 - 1, a field
// whose two-adic roots are far too shallow for an NTT.
func newNussbaumerField() (*Fp2, *Field) {
	f := MustField("2305843009213693951")
	return NewFp2(f), f
}

func refNegacyclic(n int, z, x, y []Elt2, f *Fp2) {
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

func refLinear(n int, z, x, y []Elt2, f *Fp2) {
	// really k < 2n-1, rounded up for consistency; z[2n-1] is zero
	for k := 0; k < 2*n; k++ {
		s := f.Zero()
		for j := 0; j <= k; j++ {
			if j < n && k-j < n {
				f.Add(&s, f.Mulf(x[j], y[k-j]))
			}
		}
		z[k] = s
	}
}

func refMiddle(n int, z, x, y []Elt2, f *Fp2) {
	for k := 0; k < n; k++ {
		s := f.Zero()
		for j := 0; j < n; j++ {
			f.Add(&s, f.Mulf(x[n+k-j], y[j]))
		}
		z[k] = s
	}
}

const maxNussbaumerN = 1 << 12

func TestNussbaumerNegacyclic(t *testing.T) {
	ext, f := newNussbaumerField()
	rng := NewRNG(f, 11)

	for n := 1; n <= maxNussbaumerN; n *= 2 {
		x := make([]Elt2, n)
		y := make([]Elt2, n)
		z := make([]Elt2, n)
		zr := make([]Elt2, n)
		for i := 0; i < n; i++ {
			x[i] = rng.NextExt()
			y[i] = rng.NextExt()
		}
		Negacyclic(n, z, x, y, ext)
		refNegacyclic(n, zr, x, y, ext)
		for i := 0; i < n; i++ {
			if z[i] != zr[i] {
				t.Fatalf("n=%d: negacyclic mismatch at %d", n, i)
			}
		}
	}
}

func TestNussbaumerLinear(t *testing.T) {
	ext, f := newNussbaumerField()
	rng := NewRNG(f, 12)

	for n := 1; n <= maxNussbaumerN; n *= 2 {
		x := make([]Elt2, n)
		y := make([]Elt2, n)
		z := make([]Elt2, 2*n)
		zr := make([]Elt2, 2*n)
		for i := 0; i < n; i++ {
			x[i] = rng.NextExt()
			y[i] = rng.NextExt()
		}
		refLinear(n, zr, x, y, ext)
		Linear(n, z, x, y, ext)
		for i := 0; i < 2*n; i++ {
			if z[i] != zr[i] {
				t.Fatalf("n=%d: linear mismatch at %d", n, i)
			}
		}
	}
}

func TestNussbaumerMiddle(t *testing.T) {
	ext, f := newNussbaumerField()
	rng := NewRNG(f, 13)

	for n := 1; n <= maxNussbaumerN; n *= 2 {
		x := make([]Elt2, 2*n)
		y := make([]Elt2, n)
		z := make([]Elt2, n)
		zr := make([]Elt2, n)
		for i := 0; i < n; i++ {
			x[i] = rng.NextExt()
			x[i+n] = rng.NextExt()
			y[i] = rng.NextExt()
		}
		refMiddle(n, zr, x, y, ext)
		Middle(n, z, x, y, ext)
		for i := 0; i < n; i++ {
			if z[i] != zr[i] {
				t.Fatalf("n=%d: middle mismatch at %d", n, i)
			}
		}
	}
}

func TestNussbaumerNegacyclicAscending(t *testing.T) {
	ext, f := newNussbaumerField()

	const n = 8
	x := make([]Elt2, n)
	y := make([]Elt2, n)
	z := make([]Elt2, n)
	zr := make([]Elt2, n)
	for i := 0; i < n; i++ {
		x[i] = ext.OfBase(f.OfScalar(uint64(i + 1)))
		y[i] = ext.OfBase(f.OfScalar(uint64(n + i + 1)))
	}
	Negacyclic(n, z, x, y, ext)
	refNegacyclic(n, zr, x, y, ext)
	for i := 0; i < n; i++ {
		if z[i] != zr[i] {
			t.Fatalf("ascending negacyclic mismatch at %d", i)
		}
	}
}
