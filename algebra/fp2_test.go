package algebra

import "testing"

func TestFp2Basics(t *testing.T) {
	f := NewFp256()
	ext := NewFp2(f)

	// i^2 = -1
	i2 := ext.Mulf(ext.I(), ext.I())
	if i2 != ext.Negf(ext.One()) {
		t.Fatalf("i^2 != -1")
	}

	rng := NewRNG(f, 71)
	for k := 0; k < 50; k++ {
		x := rng.NextExt()
		y := rng.NextExt()

		// x * conj(x) is real and equals the norm
		n := ext.Mulf(x, ext.Conjf(x))
		if n.Im != f.Zero() {
			t.Fatalf("x * conj(x) not real")
		}
		want := f.Addf(f.Mulf(x.Re, x.Re), f.Mulf(x.Im, x.Im))
		if n.Re != want {
			t.Fatalf("norm mismatch")
		}

		if x != ext.Zero() {
			if ext.Mulf(x, ext.Invertf(x)) != ext.One() {
				t.Fatalf("x * x^-1 != 1")
			}
		}

		// commutativity and distributivity spot checks
		if ext.Mulf(x, y) != ext.Mulf(y, x) {
			t.Fatalf("multiplication not commutative")
		}
		lhs := ext.Mulf(x, ext.Addf(y, ext.One()))
		rhs := ext.Addf(ext.Mulf(x, y), x)
		if lhs != rhs {
			t.Fatalf("distributivity broken")
		}
	}
}

func TestFp2RejectsBadModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("modulus 1 mod 4 accepted")
		}
	}()
	NewFp2(MustField("1038337")) // 1 mod 4
}
