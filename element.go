package gf2

import (
	"io"
	"math/big"
	"strings"

	"github.com/binaryfield/gf2/limb"
)

// Element is an immutable value of GF(2^T.Degree()). The zero value is not
// meaningful; use Zero[T]() instead.
type Element[T Params] struct {
	v limb.LimbVec
}

func degreeOf[T Params]() uint {
	var zero T
	return zero.Degree()
}

func limbsOf[T Params]() int {
	return nbLimbs(degreeOf[T]())
}

// Zero returns the additive identity of GF(2^D).
func Zero[T Params]() Element[T] {
	return Element[T]{v: limb.New(limbsOf[T]())}
}

// One returns the multiplicative identity of GF(2^D).
func One[T Params]() Element[T] {
	v := limb.New(limbsOf[T]())
	v.SetBit(0)
	return Element[T]{v: v}
}

// FromUint64 stores n as a field element, least-significant bit first. The
// caller guarantees n < 2^D; if not, the result is equivalent to taking n
// mod 2^D (the high bits are simply not stored).
func FromUint64[T Params](n uint64) Element[T] {
	v := limb.New(limbsOf[T]())
	v[0] = n
	maskToDegree(v, degreeOf[T]())
	return Element[T]{v: v}
}

// FromBigInt stores n as a field element, little-endian. As with FromUint64,
// n is expected to satisfy 0 <= n < 2^D; out-of-range input is silently
// reduced mod 2^D — bits at position >= D are simply never read.
func FromBigInt[T Params](n *big.Int) Element[T] {
	d := degreeOf[T]()
	v := limb.New(limbsOf[T]())
	for i := uint(0); i < d; i++ {
		if n.Bit(int(i)) == 1 {
			v.SetBit(i)
		}
	}
	return Element[T]{v: v}
}

// FromHex parses a big-endian hex string into a field element. s must have
// exactly 2*ceil(D/8) hex characters once whitespace is stripped; any other
// length, or a non-hex character, is a *MalformedInputError.
func FromHex[T Params](s string) (Element[T], error) {
	d := degreeOf[T]()
	want := 2 * ((int(d) + 7) / 8)
	clean := stripWhitespace(s)
	if len(clean) != want {
		return Element[T]{}, &MalformedInputError{Expected: want, Got: len(clean)}
	}
	n, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		return Element[T]{}, &MalformedInputError{Expected: want, Got: len(clean)}
	}
	return FromBigInt[T](n), nil
}

// Random draws an element uniformly from GF(2^D), consuming entropy from r.
func Random[T Params](r io.Reader) (Element[T], error) {
	v, err := limb.Random(r, limbsOf[T](), degreeOf[T]())
	if err != nil {
		return Element[T]{}, err
	}
	return Element[T]{v: v}, nil
}

// Equal reports whether a and b hold the same canonical representative.
// Because representation is canonical (§3), this is exactly bit-for-bit limb
// equality.
func (a Element[T]) Equal(b Element[T]) bool {
	return a.v.Equal(b.v)
}

// IsZero reports whether a is the additive identity.
func (a Element[T]) IsZero() bool {
	return a.v.IsZero()
}

// ToBigInt re-assembles the element's limbs into the unsigned integer
// sum a_i * 2^i (SEC 1 v2 §2.3.9).
func (a Element[T]) ToBigInt() *big.Int {
	out := new(big.Int)
	tmp := new(big.Int)
	for i := len(a.v) - 1; i >= 0; i-- {
		out.Lsh(out, limb.WordBits)
		tmp.SetUint64(a.v[i])
		out.Or(out, tmp)
	}
	return out
}

// ToHex renders the element as ceil(D/8) bytes of big-endian, zero-padded,
// lowercase hex (SEC 1 v2 §2.3.5).
func (a Element[T]) ToHex() string {
	d := degreeOf[T]()
	nbytes := (int(d) + 7) / 8
	b := a.ToBigInt().Bytes()
	out := make([]byte, nbytes)
	copy(out[nbytes-len(b):], b)
	return hexEncode(out)
}

func (a Element[T]) String() string {
	return a.ToHex()
}

// clone returns a private copy of a's limbs, for internal routines that
// would otherwise mutate a shared buffer in place.
func (a Element[T]) clone() limb.LimbVec {
	return a.v.Clone()
}

func maskToDegree(v limb.LimbVec, degree uint) {
	n := nbLimbs(degree)
	if degree%limb.WordBits != 0 {
		top := degree / limb.WordBits
		keep := uint64(1)<<(degree%limb.WordBits) - 1
		v[top] &= keep
		for i := int(top) + 1; i < n; i++ {
			v[i] = 0
		}
	}
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

func hexEncode(b []byte) string {
	out := make([]byte, 2*len(b))
	for i, c := range b {
		out[2*i] = hexDigits[c>>4]
		out[2*i+1] = hexDigits[c&0xF]
	}
	return string(out)
}
