package algebra

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// RNG draws field elements from a SHAKE-128 stream seeded once, so test
// inputs are deterministic across runs and platforms.
type RNG struct {
	f *Field
	h sha3.ShakeHash
}

// NewRNG creates a sampler for f with the given seed.
func NewRNG(f *Field, seed int64) *RNG {
	h := sha3.NewShake128()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	h.Write(b[:])
	return &RNG{f: f, h: h}
}

// Next returns a uniform element, by rejection on the modulus bit width.
func (r *RNG) Next() Elt {
	kw := r.f.Limbs()
	mask := ^uint64(0) >> (uint(64*kw-r.f.ModBits()) % 64)
	buf := make([]byte, 8*kw)
	for {
		if _, err := r.h.Read(buf); err != nil {
			panic(err)
		}
		var n Nat
		for i := 0; i < kw; i++ {
			n[i] = binary.LittleEndian.Uint64(buf[8*i:])
		}
		n[kw-1] &= mask
		e := Elt(n)
		if r.f.ltMod(&e) {
			return r.f.toMont(e)
		}
	}
}

// NextExt returns a uniform element of the quadratic extension of the
// sampler's field.
func (r *RNG) NextExt() Elt2 {
	return Elt2{Re: r.Next(), Im: r.Next()}
}
