package q32

// Fixed point type representing a signed 32.32 value.
//
// The upper 32 bits are the two's complement integer part, while the
// lower 32 bits are the unsigned fractional part. In other words, the
// value is the raw int64 divided by 2^32: One is 1 << 32, Half is
// 1 << 31 and -Half is the same bit pattern as -1 + 0.5.
//
// Overflows wrap around silently, like they do with regular ints.
type Fixed int64

// Returns x + y.
func (self Fixed) Add(other Fixed) Fixed { return self + other }

// Returns x - y.
func (self Fixed) Sub(other Fixed) Fixed { return self - other }

// Returns -x. Notice that -MinFixed == MinFixed.
func (self Fixed) Neg() Fixed { return -self }

// Returns the absolute value. Like [Fixed.Neg](), MinFixed stays negative.
func (self Fixed) Abs() Fixed {
	if self >= 0 { return self }
	return -self
}

// Fast multiplication by 2.
func (self Fixed) Mul2() Fixed { return self << 1 }

// Fast multiplication by 4.
func (self Fixed) Mul4() Fixed { return self << 2 }

// Fast multiplication by 2^n, with 0 <= n <= 31.
func (self Fixed) Mul2n(n int) Fixed { return self << uint(n) }

// Fast division by 2. Like all divisions, it chops
// toward negative infinity.
func (self Fixed) Div2() Fixed { return self >> 1 }

// Fast division by 4.
func (self Fixed) Div4() Fixed { return self >> 2 }

// Fast division by 2^n, with 0 <= n <= 31.
func (self Fixed) Div2n(n int) Fixed { return self >> uint(n) }

// Returns x / y. The division is computed as x * (1/y), so
// it's not exact even when both operands are whole numbers,
// and dividing by zero returns garbage instead of panicking.
func (self Fixed) Div(divisor Fixed) Fixed {
	return self.Mul(divisor.Inv())
}

// Returns whether the value has no fractional part.
func (self Fixed) IsWhole() bool {
	return self & 0xFFFFFFFF == 0
}

// Returns only the fractional part of the value. The result is always
// in [0, 1), as the fraction bits are unsigned: (-1.25).Fract() == 0.75.
func (self Fixed) Fract() Fixed {
	return self & 0xFFFFFFFF
}

// Returns the largest whole value <= x.
func (self Fixed) Floor() Fixed {
	return self & ^0xFFFFFFFF
}

// Returns the smallest whole value >= x.
func (self Fixed) Ceil() Fixed {
	return (self + 0xFFFFFFFF).Floor()
}

// Rounds to the closest whole value, rounding up in case of ties.
// This is provided for convenience, but no operation in the package
// rounds on its own.
func (self Fixed) Round() Fixed {
	return (self + Half).Floor()
}
