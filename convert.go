package q32

import "math"
import "math/bits"

// Transient decomposition of an IEEE-754 binary64 value.
type float64View struct {
	negative bool
	exponent int    // biased, 11 bits
	significand uint64 // 52 bits, implicit leading one excluded
}

func viewFloat64(value float64) float64View {
	raw := math.Float64bits(value)
	return float64View{
		negative: raw >> 63 != 0,
		exponent: int(raw >> 52) & 0x7FF,
		significand: raw & (1 << 52 - 1),
	}
}

func (self float64View) float64() float64 {
	raw := uint64(self.exponent & 0x7FF) << 52 | self.significand & (1 << 52 - 1)
	if self.negative { raw |= 1 << 63 }
	return math.Float64frombits(raw)
}

// Exponent for which the leading significand bit, placed at
// bit 62 of the int64, ends up at bit 32 (the units bit).
const float64Alignment = 1023 + 30

// Converts a float64 to its truncated Fixed value, chopping the bits
// that don't fit. Zero and subnormal values become exactly zero.
// Values outside the representable range wrap, and NaN or infinities
// return garbage. See [Parse]() if you need validation.
func FromFloat64(value float64) Fixed {
	view := viewFloat64(value)
	if view.exponent == 0 { return 0 }

	// restore the implicit leading one, place it at bit 62 and align
	raw := (view.significand | 1 << 52) << 10
	shift := float64Alignment - view.exponent
	if shift >= 0 {
		raw >>= uint(shift)
	} else {
		raw <<= uint(-shift)
	}

	if view.negative { return -Fixed(raw) }
	return Fixed(raw)
}

// Converts the value to float64. Conversion is exact for any value
// with at most 53 significant bits, otherwise the lowest bits are chopped.
func (self Fixed) ToFloat64() float64 {
	if self == 0 { return 0 }

	var view float64View
	magnitude := uint64(self)
	if self < 0 {
		view.negative = true
		magnitude = uint64(-self)
	}

	// normalize so the leading one sits at bit 63, then drop it
	shift := bits.LeadingZeros64(magnitude)
	magnitude <<= uint(shift)
	view.exponent = float64Alignment + 1 - shift
	view.significand = (magnitude << 1) >> 12
	return view.float64()
}

// Converts an int to Fixed. Values outside [MinInt, MaxInt] wrap.
func FromInt(value int) Fixed { return Fixed(int64(value) << 32) }

// Returns the integer part of the value, chopping toward negative
// infinity: FromFloat64(-0.5).ToInt() == -1. See [Fixed.Round]() if
// you need rounding.
func (self Fixed) ToInt() int { return int(self >> 32) }
