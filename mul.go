//go:build !q32wide

package q32

// Returns x * y.
//
// The full product of two 32.32 values has 128 bits: 64 integer bits
// and 64 fraction bits. Only the middle 64 bits are kept. The top 32
// bits would be overflow anyways, and the bottom 32 bits are chopped.
//
// Splitting each operand in a signed high half and an unsigned low half:
//   x*y = (xh*yh) << 32   only the low 32 bits survive the int64 wrap
//       + xh*yl + xl*yh   all 64 bits needed
//       + (xl*yl) >> 32   only the high 32 bits needed
// The result is the same as widening to 128 bits, shifting right by 32
// and truncating, but without needing 128 bit integers. See the q32wide
// build tag for a backend doing exactly that with [bits.Mul64]().
//
// [bits.Mul64]: https://pkg.go.dev/math/bits#Mul64
func (self Fixed) Mul(other Fixed) Fixed {
	xh, xl := int64(self) >> 32, int64(uint32(self))
	yh, yl := int64(other) >> 32, int64(uint32(other))
	lowProduct := uint64(xl)*uint64(yl)
	return Fixed((xh*yh) << 32 + xh*yl + xl*yh + int64(lowProduct >> 32))
}
