package gf2

// Add returns a + b. In characteristic 2 this is limbwise XOR, and it is its
// own inverse: Add is used for subtraction too (§4.3).
func Add[T Params](a, b Element[T]) Element[T] {
	out := a.clone()
	out.Xor(b.v)
	return Element[T]{v: out}
}

// Sub returns a - b, which equals a + b in characteristic 2.
func Sub[T Params](a, b Element[T]) Element[T] {
	return Add(a, b)
}

// Neg returns -a, which equals a in characteristic 2.
func Neg[T Params](a Element[T]) Element[T] {
	return a
}
