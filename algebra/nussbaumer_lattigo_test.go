package algebra

import (
	"testing"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// Negacyclic convolution checked against an independent NTT engine: the
// lattigo ring Z_q[X]/(X^N + 1) with an NTT-friendly word-size modulus.
func TestNussbaumerMatchesRingNTT(t *testing.T) {
	const N = 512
	const q = uint64(1038337) // q = 1 mod 2N

	r, err := ring.NewRing(N, []uint64{q})
	if err != nil {
		t.Fatalf("ring.NewRing: %v", err)
	}

	f := MustField("1038337")
	rng := NewRNG(f, 21)

	x := make([]Elt, N)
	y := make([]Elt, N)
	z := make([]Elt, N)
	px := r.NewPoly()
	py := r.NewPoly()
	pz := r.NewPoly()
	for i := 0; i < N; i++ {
		x[i] = rng.Next()
		y[i] = rng.Next()
		xn := f.FromMontgomery(x[i])
		yn := f.FromMontgomery(y[i])
		px.Coeffs[0][i] = xn.Uint64()
		py.Coeffs[0][i] = yn.Uint64()
	}

	Negacyclic(N, z, x, y, f)

	r.MForm(px, px)
	r.MForm(py, py)
	r.NTT(px, px)
	r.NTT(py, py)
	r.MulCoeffsMontgomery(px, py, pz)
	r.InvNTT(pz, pz)
	r.InvMForm(pz, pz)

	for i := 0; i < N; i++ {
		zn := f.FromMontgomery(z[i])
		if got := zn.Uint64(); got != pz.Coeffs[0][i] {
			t.Fatalf("negacyclic diverges from ring NTT at %d: %d vs %d",
				i, got, pz.Coeffs[0][i])
		}
	}
}
