package gf2

import "github.com/binaryfield/gf2/limb"

// squareWindowSize is the window size used by the default squaring routine.
const squareWindowSize = 4

// Square returns a*a mod f(x). Squaring in GF(2) is linear — (sum a_i x^i)^2
// = sum a_i x^(2i) — so the default implementation spreads 4-bit chunks of a
// through a small lookup table rather than multiplying (§4.6).
func Square[T Params](a Element[T]) Element[T] {
	return squareWindowed(a, squareWindowSize)
}

// SquareGeneric is the table-free fallback: it sets bit 2i of the result for
// every set bit i of a, with no precomputed table.
func SquareGeneric[T Params](a Element[T]) Element[T] {
	L := limbsOf[T]()
	out := limb.New(2 * L)
	top := L * int(limb.WordBits)
	for i := 0; i < top; i++ {
		if a.v.GetBit(uint(i)) == 1 {
			out.SetBit(uint(2 * i))
		}
	}
	return reduce[T](out)
}

// squareWindowed builds spread[u], the integer whose bit 2i is set iff bit i
// of u is set, for every u in [0, 2^window), then XORs spread[u] into the
// output at bit offset 2i for each window-sized chunk u of a at offset i.
// window must divide 64 evenly so every chunk stays within one limb of a.
func squareWindowed[T Params](a Element[T], window uint) Element[T] {
	L := limbsOf[T]()
	tableSize := 1 << window
	spread := make([]uint64, tableSize)
	for u := 0; u < tableSize; u++ {
		var s uint64
		for i := 0; i < int(window); i++ {
			if (u>>i)&1 == 1 {
				s |= 1 << (2 * i)
			}
		}
		spread[u] = s
	}

	out := limb.New(2 * L)
	top := L * int(limb.WordBits)
	for i := 0; i < top; i += int(window) {
		u := a.v.GetBits(uint(i), window)
		limb.ShiftedXor(out, limb.LimbVec{spread[u]}, uint(2*i))
	}
	return reduce[T](out)
}
