package gf2

import "github.com/binaryfield/gf2/limb"

// Params describes one binary extension field GF(2^D), fixed as a
// zero-size Go type so that it can be used as the type parameter of
// Element[T]. D is the field degree; Terms lists the exponents of the
// nonzero coefficients of r(x), where the reduction polynomial is
// f(x) = x^D + r(x). Terms is sorted in descending order and always
// contains 0 (the constant term every table 3 field carries).
//
// Values are fixed per SEC 2 table 3; implementers of a new Params only need
// to supply these two methods, following the pattern gnark uses for
// std/math/emulated.FieldParams (e.g. Secp256k1, BN254Fp).
type Params interface {
	Degree() uint
	Terms() []uint
}

func nbLimbs(degree uint) int {
	return int((degree + limb.WordBits - 1) / limb.WordBits)
}

// reductionPoly returns f(x) = x^D + r(x) as a LimbVec of nbLimbs(D)+1
// limbs — one more than an element's own representation, since f has
// degree D itself.
func reductionPoly[T Params]() limb.LimbVec {
	var zero T
	d := zero.Degree()
	v := limb.New(nbLimbs(d) + 1)
	v.SetBit(d)
	for _, t := range zero.Terms() {
		v.SetBit(t)
	}
	return v
}

// F113 is GF(2^113), r(x) = x^9 + 1. SEC 2 v1 only; kept for backward
// compatibility.
type F113 struct{}

func (F113) Degree() uint  { return 113 }
func (F113) Terms() []uint { return []uint{9, 0} }

// F131 is GF(2^131), r(x) = x^8 + x^3 + x^2 + 1. SEC 2 v1 only.
type F131 struct{}

func (F131) Degree() uint  { return 131 }
func (F131) Terms() []uint { return []uint{8, 3, 2, 0} }

// F163 is GF(2^163), r(x) = x^7 + x^6 + x^3 + 1.
type F163 struct{}

func (F163) Degree() uint  { return 163 }
func (F163) Terms() []uint { return []uint{7, 6, 3, 0} }

// F193 is GF(2^193), r(x) = x^15 + 1. SEC 2 v1 only.
type F193 struct{}

func (F193) Degree() uint  { return 193 }
func (F193) Terms() []uint { return []uint{15, 0} }

// F233 is GF(2^233), r(x) = x^74 + 1.
type F233 struct{}

func (F233) Degree() uint  { return 233 }
func (F233) Terms() []uint { return []uint{74, 0} }

// F239 is GF(2^239), r(x) = x^36 + 1.
type F239 struct{}

func (F239) Degree() uint  { return 239 }
func (F239) Terms() []uint { return []uint{36, 0} }

// F283 is GF(2^283), r(x) = x^12 + x^7 + x^5 + 1.
type F283 struct{}

func (F283) Degree() uint  { return 283 }
func (F283) Terms() []uint { return []uint{12, 7, 5, 0} }

// F409 is GF(2^409), r(x) = x^87 + 1.
type F409 struct{}

func (F409) Degree() uint  { return 409 }
func (F409) Terms() []uint { return []uint{87, 0} }

// F571 is GF(2^571), r(x) = x^10 + x^5 + x^2 + 1.
type F571 struct{}

func (F571) Degree() uint  { return 571 }
func (F571) Terms() []uint { return []uint{10, 5, 2, 0} }
