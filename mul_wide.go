//go:build q32wide

package q32

import "math/bits"

// Returns x * y. This version computes the full 128 bit product
// and keeps the middle 64 bits. The results are identical to the
// default backend, so it's only a matter of which one is faster
// on the target architecture.
func (self Fixed) Mul(other Fixed) Fixed {
	hi, lo := bits.Mul64(uint64(self), uint64(other))

	// bits.Mul64 is unsigned, two's complement correction for the high word
	if self  < 0 { hi -= uint64(other) }
	if other < 0 { hi -= uint64(self)  }
	return Fixed(hi << 32 | lo >> 32)
}
