package algebra

import "math/big"

// toFieldBig is the textbook reconstruction kept as a cross-check for
// ToField: Garner recomposition over big integers, then one reduction by
// the ambient modulus. Roughly 4x slower than the fused single-word path,
// so it only runs under tests.
func (c *CRT) toFieldBig(x CRTElt) Elt {
	u := new(big.Int).SetUint64(c.bf[0].FromMontgomery(x[0]))
	m := new(big.Int).SetUint64(Primes17[0])
	t := new(big.Int)
	for i := 1; i < c.vs; i++ {
		pi := new(big.Int).SetUint64(Primes17[i])
		t.SetUint64(c.bf[i].FromMontgomery(x[i]))
		t.Sub(t, u)
		t.Mod(t, pi)
		inv := new(big.Int).ModInverse(m, pi)
		t.Mul(t, inv)
		t.Mod(t, pi)
		u.Add(u, t.Mul(m, t))
		m.Mul(m, pi)
	}
	u.Mod(u, c.f.Modulus())
	n, err := natFromBig(u, c.f.Limbs())
	if err != nil {
		panic(err)
	}
	return c.f.OfNat(n)
}
