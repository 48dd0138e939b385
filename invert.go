package gf2

import "github.com/binaryfield/gf2/limb"

// Inverse returns b such that a*b = 1, via the polynomial extended
// Euclidean algorithm (GtECC Algorithm 2.48). It fails with a
// *DivideByZeroError if a is zero.
func Inverse[T Params](a Element[T]) (Element[T], error) {
	if a.IsZero() {
		return Element[T]{}, &DivideByZeroError{Op: "invert"}
	}
	L := limbsOf[T]()

	u := a.v.ChangeLength(L + 1)
	v := reductionPoly[T]()
	g1 := limb.New(L + 1)
	g1.SetBit(0)
	g2 := limb.New(L + 1)

	one := limb.New(L + 1)
	one.SetBit(0)

	for !u.Equal(one) {
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}

		shiftedV := v.Clone()
		shiftedV.LeftShift(uint(j))
		u.Xor(shiftedV)

		// g1 stays a polynomial of degree < D throughout — an invariant of
		// the algorithm, not something this shift needs to re-check — so
		// L+1 limbs of headroom during the shift is always enough.
		shiftedG2 := g2.Clone()
		shiftedG2.LeftShift(uint(j))
		g1.Xor(shiftedG2)
	}

	return Element[T]{v: g1.ChangeLength(L)}, nil
}

// Div returns a/b = a * inv(b). It fails with a *DivideByZeroError if b is
// zero.
func Div[T Params](a, b Element[T]) (Element[T], error) {
	if b.IsZero() {
		return Element[T]{}, &DivideByZeroError{Op: "divide"}
	}
	inv, err := Inverse(b)
	if err != nil {
		return Element[T]{}, err
	}
	return Mul(a, inv), nil
}
