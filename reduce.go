package gf2

import "github.com/binaryfield/gf2/limb"

// reduce folds a double-width polynomial (degree < 2*D) down to the
// canonical representative of degree < D, then truncates to D's own limb
// count. c is consumed (mutated) by this call.
//
// Specialized fields run the same per-bit loop with their r(x) terms
// written in as constants instead of read from Terms(); both must be
// observationally identical (§4.4).
func reduce[T Params](c limb.LimbVec) Element[T] {
	var zero T
	switch any(zero).(type) {
	case F163:
		reduce163(c)
	case F571:
		reduce571(c)
	default:
		reduceGeneric[T](c)
	}
	return Element[T]{v: c.ChangeLength(limbsOf[T]())}
}

// reduceGeneric is the sparse-polynomial-aware routine of §4.4: for each
// high bit i >= D that is set, x^i is rewritten as r(x)*x^(i-D), which
// cancels bit i and flips at most len(Terms()) lower bits. Because Terms()
// never exceeds 5 entries across the supported fields, each iteration does
// O(1) work.
func reduceGeneric[T Params](c limb.LimbVec) {
	var zero T
	d := zero.Degree()
	terms := zero.Terms()
	for wi := len(c) - 1; wi*limb.WordBits+limb.WordBits-1 >= int(d); wi-- {
		base := uint(wi * limb.WordBits)
		for bit := limb.WordBits - 1; bit >= 0; bit-- {
			i := base + uint(bit)
			if i < d {
				break
			}
			if c.GetBit(i) == 1 {
				c.FlipBit(i)
				shift := i - d
				for _, t := range terms {
					c.FlipBit(shift + t)
				}
			}
		}
	}
}

// reduce163 specializes reduceGeneric for r(x) = x^7 + x^6 + x^3 + 1: a
// per-bit loop over every bit from the top of c down to D, flipping the
// four term positions as constants.
func reduce163(c limb.LimbVec) {
	const d = 163
	for i := len(c)*limb.WordBits - 1; i >= d; i-- {
		if c.GetBit(uint(i)) == 1 {
			c.FlipBit(uint(i))
			shift := uint(i) - d
			c.FlipBit(shift + 7)
			c.FlipBit(shift + 6)
			c.FlipBit(shift + 3)
			c.FlipBit(shift)
		}
	}
}

// reduce571 specializes reduceGeneric for r(x) = x^10 + x^5 + x^2 + 1. The
// design notes flag D=571 specifically because R spans 11 bits (0x425) and
// the shifted copy can touch a third destination limb; the per-bit loop
// below only ever touches limbs at shift/64 and shift/64+1 since the
// highest term (10) fits in a single extra word, so the three-limb bound
// from the design notes holds.
func reduce571(c limb.LimbVec) {
	const d = 571
	for i := len(c)*limb.WordBits - 1; i >= d; i-- {
		if c.GetBit(uint(i)) == 1 {
			c.FlipBit(uint(i))
			shift := uint(i) - d
			c.FlipBit(shift + 10)
			c.FlipBit(shift + 5)
			c.FlipBit(shift + 2)
			c.FlipBit(shift)
		}
	}
}
