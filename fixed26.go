package q32

import "golang.org/x/image/math/fixed"

// Conversions to and from the [golang.org/x/image/math/fixed] types
// used by most Golang font and vector packages. Widening conversions
// are exact. Narrowing conversions chop the extra fraction bits and
// wrap if the integer part doesn't fit.

// Converts the value to a 26.6 fixed point value.
func (self Fixed) ToInt26_6() fixed.Int26_6 {
	return fixed.Int26_6(self >> 26)
}

// Converts a 26.6 fixed point value to Fixed.
func FromInt26_6(value fixed.Int26_6) Fixed {
	return Fixed(int64(value) << 26)
}

// Converts the value to a 52.12 fixed point value.
func (self Fixed) ToInt52_12() fixed.Int52_12 {
	return fixed.Int52_12(self >> 20)
}

// Converts a 52.12 fixed point value to Fixed.
func FromInt52_12(value fixed.Int52_12) Fixed {
	return Fixed(int64(value) << 20)
}
