package q32

// Returns 1/x, using Newton-Raphson on f(u) = 1/u - x:
//   u' = u*(2 - x*u)
// Each iteration doubles the number of correct bits. The initial
// guess is 2^k with x*2^k in [0.5, 1), so six iterations are always
// enough to converge to the last bit. Zero is not checked.
func (self Fixed) Inv() Fixed {
	value := self
	negative := (value < 0)
	if negative { value = -value }

	// initial approximation: one less bit for each bit in value
	guess := ^uint64(0)
	for u := uint64(value); u != 0; u >>= 1 { guess >>= 1 }

	u := Fixed(guess)
	for i := 0; i < 6; i++ {
		u = u.Mul(Two - value.Mul(u))
	}

	if negative { return -u }
	return u
}
