// Package gf2 implements arithmetic in the binary extension fields GF(2^D)
// standardized for elliptic curves over binary fields (SEC 2 v1/v2 table 3,
// D in {113, 131, 163, 193, 233, 239, 283, 409, 571}). An element is a
// polynomial of degree < D over GF(2), reduced modulo a fixed irreducible
// polynomial f(x) = x^D + r(x).
//
// The field is selected as a Go type parameter (F163, F233, ...) implementing
// Params, the same technique gnark's std/math/emulated package uses for its
// non-native fields: the parameters live on a zero-size type so the limb
// count is fixed once per instantiation rather than threaded through every
// call.
//
//	a := gf2.FromUint64[gf2.F163](2)
//	b := gf2.FromUint64[gf2.F163](3)
//	gf2.Add(a, b) // == gf2.FromUint64[gf2.F163](1)
//
// Every operation here is pure, total (aside from the documented
// MalformedInputError / DivideByZeroError / UnsupportedExponentError) and
// allocates fresh results — values are never mutated after construction, so
// Element[T] is safe to share across goroutines without synchronization.
//
// Hazard: no operation here claims constant-time execution. Multiplication
// branches on bits of the multiplier and inversion branches on bit_length
// comparisons; both can leak secret material through timing. A
// constant-time rendition is left to callers that need one.
package gf2
