package q32

// Limits and conversion constants.
const (
	MaxFixed Fixed = +0x7FFFFFFFFFFFFFFF
	MinFixed Fixed = -0x7FFFFFFFFFFFFFFF - 1
	MaxInt int = +2147483647
	MinInt int = -2147483648
	Delta float64 = 1.0/4294967296.0 // 2^-32, the value of a single raw unit
)

// Common mathematical constants. All values are chopped, not rounded,
// so they are all within [Delta] of the real value and never above it.
const (
	One      Fixed = 0x0000000100000000
	Two      Fixed = 0x0000000200000000
	Half     Fixed = 0x0000000080000000
	E        Fixed = 0x00000002b7e15162 // e
	InvE     Fixed = 0x000000005e2d58d8 // 1/e
	SqrtE    Fixed = 0x00000001a61298e1 // sqrt(e)
	InvSqrtE Fixed = 0x000000009b4597e3 // 1/sqrt(e)
	Log2E    Fixed = 0x0000000171547652 // log2(e)
	Log10E   Fixed = 0x000000006f2dec54 // log10(e)
	Ln2      Fixed = 0x00000000b17217f7 // ln(2)
	Ln10     Fixed = 0x000000024d763776 // ln(10)
	Pi       Fixed = 0x00000003243f6a88 // pi
	HalfPi   Fixed = 0x00000001921fb544 // pi/2
	QuarterPi Fixed = 0x00000000c90fdaa2 // pi/4
	InvPi    Fixed = 0x00000000517cc1b7 // 1/pi
	TwoInvPi Fixed = 0x00000000a2f9836e // 2/pi
	TwoInvSqrtPi Fixed = 0x0000000120dd7504 // 2/sqrt(pi)
	Sqrt2    Fixed = 0x000000016a09e667 // sqrt(2)
	InvSqrt2 Fixed = 0x00000000b504f333 // 1/sqrt(2)
)

// Reciprocals used by the power series. Each Horner step divides by
// the ratio between consecutive factorials (e.g. 12 = 4!/2!), never
// by a full factorial.
const (
	three  Fixed = 0x0000000300000000
	four   Fixed = 0x0000000400000000
	inv3   Fixed = 0x0000000055555555 // 1/3
	inv4   Fixed = 0x0000000040000000 // 1/4
	inv5   Fixed = 0x0000000033333333 // 1/5
	inv6   Fixed = 0x000000002aaaaaaa // 1/6
	inv7   Fixed = 0x0000000024924924 // 1/7
	inv8   Fixed = 0x0000000020000000 // 1/8
	inv9   Fixed = 0x000000001c71c71c // 1/9
	inv10  Fixed = 0x0000000019999999 // 1/10
	inv11  Fixed = 0x000000001745d174 // 1/11
	inv12  Fixed = 0x0000000015555555 // 1/12
	inv20  Fixed = 0x000000000ccccccc // 1/20
	inv30  Fixed = 0x0000000008888888 // 1/30
	inv42  Fixed = 0x0000000006186186 // 1/42
	inv56  Fixed = 0x0000000004924924 // 1/56
	inv72  Fixed = 0x00000000038e38e3 // 1/72
	inv90  Fixed = 0x0000000002d82d82 // 1/90
	inv110 Fixed = 0x000000000253c825 // 1/110
	inv132 Fixed = 0x0000000001f07c1f // 1/132
	inv156 Fixed = 0x0000000001a41a41 // 1/156
)

// Horner coefficients, outermost first.
var (
	// cos x = 1 - x^2/2 (1 - x^2/12 (1 - x^2/30 (...)))
	cosSeries = [6]Fixed{ Half, inv12, inv30, inv56, inv90, inv132 }

	// sin x = x (1 - x^2/6 (1 - x^2/20 (1 - x^2/42 (...))))
	sinSeries = [6]Fixed{ inv6, inv20, inv42, inv72, inv110, inv156 }

	// e^x = 1 + x (1 + x/2 (1 + x/3 (...))), 1/1 is handled apart
	expSeries = [10]Fixed{ Half, inv3, inv4, inv5, inv6, inv7, inv8, inv9, inv10, inv11 }
)
