package algebra

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based coverage of the CRT homomorphisms: projection and Garner
// reconstruction commute with ambient arithmetic for arbitrary elements.
func TestCRTHomomorphismProperties(t *testing.T) {
	f := NewFp256()
	crt := NewCRT256(f)

	// spread three words across the field so elements are not tiny
	elt := func(a, b, c uint64) Elt {
		return f.Addf(f.Mulf(f.Mulf(f.OfScalar(a), f.OfScalar(b)), f.OfScalar(c)), f.OfScalar(a^c))
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("to_field inverts to_crt", prop.ForAll(
		func(a, b, c uint64) bool {
			x := elt(a, b, c)
			return crt.ToField(crt.ToCRT(x)) == x
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64()))

	properties.Property("addition commutes with projection", prop.ForAll(
		func(a, b, c, d uint64) bool {
			x, y := elt(a, b, c), elt(b, c, d)
			got := crt.ToField(crt.Addf(crt.ToCRT(x), crt.ToCRT(y)))
			return got == f.Addf(x, y)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64()))

	properties.Property("multiplication commutes with projection", prop.ForAll(
		func(a, b, c, d uint64) bool {
			x, y := elt(a, b, c), elt(b, c, d)
			got := crt.ToField(crt.Mulf(crt.ToCRT(x), crt.ToCRT(y)))
			return got == f.Mulf(x, y)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64()))

	properties.Property("add then sub returns the first operand", prop.ForAll(
		func(a, b, c, d uint64) bool {
			x, y := elt(a, b, c), elt(b, c, d)
			yc := crt.ToCRT(y)
			got := crt.ToField(crt.Subf(crt.Addf(crt.ToCRT(x), yc), yc))
			return got == x
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64()))

	properties.TestingRun(t)
}
