package gf2

// Pow returns a^n via right-to-left square-and-multiply. n must be
// non-negative; a negative exponent is a *UnsupportedExponentError.
func Pow[T Params](a Element[T], n int64) (Element[T], error) {
	if n < 0 {
		return Element[T]{}, &UnsupportedExponentError{Exponent: n}
	}
	c := One[T]()
	s := a
	for nn := uint64(n); nn > 0; nn >>= 1 {
		if nn&1 == 1 {
			c = Mul(c, s)
		}
		s = Square(s)
	}
	return c, nil
}

// Sqrt returns the unique square root of a, computed as a^(2^(D-1)) via
// D-1 repeated squarings: x -> x^2 is the Frobenius endomorphism on
// GF(2^D), so its inverse is D-1 further applications of itself.
func Sqrt[T Params](a Element[T]) Element[T] {
	d := degreeOf[T]()
	r := a
	for i := uint(1); i < d; i++ {
		r = Square(r)
	}
	return r
}
