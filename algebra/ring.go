package algebra

// Ring is the operation set the field-agnostic convolutions need. Both the
// ambient field and its quadratic extension satisfy it.
type Ring[E comparable] interface {
	Zero() E
	One() E
	Half() E
	Add(*E, E)
	Sub(*E, E)
	Mul(*E, E)
	Neg(*E)
	Addf(E, E) E
	Subf(E, E) E
	Mulf(E, E) E
	Negf(E) E
}

// fftField is the smaller set the transforms need; the CRT engine satisfies
// it as well.
type fftField[E comparable] interface {
	Zero() E
	One() E
	Add(*E, E)
	Sub(*E, E)
	Mul(*E, E)
	Mulf(E, E) E
}

var (
	_ Ring[Elt]  = (*Field)(nil)
	_ Ring[Elt2] = (*Fp2)(nil)

	_ fftField[Elt]    = (*Field)(nil)
	_ fftField[Elt2]   = (*Fp2)(nil)
	_ fftField[CRTElt] = (*CRT)(nil)
)
