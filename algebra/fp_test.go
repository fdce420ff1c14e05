package algebra

import "testing"

func TestFieldBasics(t *testing.T) {
	for _, f := range []*Field{
		NewFp256(),
		NewFp384(),
		NewFp521(),
		MustField("4179340454199820289"),
		MustField("1038337"),
	} {
		if f.Mulf(f.Half(), f.Two()) != f.One() {
			t.Fatalf("half * two != one")
		}
		a := f.OfScalar(5)
		b := f.OfScalar(7)
		if f.Mulf(a, b) != f.OfScalar(35) {
			t.Fatalf("5 * 7 != 35")
		}
		if f.Addf(a, b) != f.OfScalar(12) {
			t.Fatalf("5 + 7 != 12")
		}
		if f.Subf(f.OfScalar(12), b) != a {
			t.Fatalf("12 - 7 != 5")
		}
		if f.Addf(a, f.Negf(a)) != f.Zero() {
			t.Fatalf("a + (-a) != 0")
		}

		rng := NewRNG(f, 51)
		for i := 0; i < 50; i++ {
			x := rng.Next()
			if x == f.Zero() {
				continue
			}
			if f.Mulf(x, f.Invertf(x)) != f.One() {
				t.Fatalf("x * x^-1 != 1")
			}
		}
	}
}

func TestFieldScalarRoundTrip(t *testing.T) {
	f := NewFp256()
	for _, v := range []uint64{0, 1, 2, 112121, 1<<63 + 12345} {
		n := f.FromMontgomery(f.OfScalar(v))
		if n.Uint64() != v {
			t.Fatalf("scalar %d did not round trip", v)
		}
	}
}

func TestFieldOfStringErrors(t *testing.T) {
	f := MustField("4179340454199820289")
	for _, s := range []string{
		"",
		"0x123J",
		"wiejoifj",
		"123QWEOQWU",
		"0xx21312",
		"-17",
		"4179340454199820289", // the modulus itself is out of range
	} {
		if _, err := f.OfString(s); err == nil {
			t.Fatalf("OfString(%q) accepted a bad element", s)
		}
	}
	if _, err := f.OfString("0x10"); err != nil {
		t.Fatalf("hex element rejected: %v", err)
	}
}

func TestNewFieldErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"4",  // even
		"1",  // too small
		"0x", // malformed
	} {
		if _, err := NewField(s); err == nil {
			t.Fatalf("NewField(%q) accepted a bad modulus", s)
		}
	}
}
