package q32

// e^x for x in [-0.5, 0.5], 11 terms of the Maclaurin series.
// 0.5^12/12! is already below the format's resolution.
func calcExp(x Fixed) Fixed {
	result := One
	for i := len(expSeries) - 1; i >= 0; i-- {
		result = One + result.Mul(x.Mul(expSeries[i]))
	}
	return One + result.Mul(x)
}

// Returns e^x. The argument is split as x = i + r, with i the nearest
// integer, and e^i is computed by binary exponentiation of e (or 1/e).
// Results above ~21.48 overflow.
func Exp(x Fixed) Fixed {
	i := (x + Half).ToInt()
	result := calcExp(x - FromInt(i))

	base, n := E, uint(i)
	if i < 0 {
		base, n = InvE, uint(-i)
	}
	for ; n != 0; n >>= 1 {
		if n & 1 != 0 { result = result.Mul(base) }
		base = base.Mul(base)
	}
	return result
}

// Returns the natural logarithm of x. For x <= 0, the result is zero.
//
// The value is first scaled into [e^-0.5, e^0.5], and then three
// Newton-Raphson style corrections are applied:
//   d = (x - 1)(x - 3)/2; ln -= d; x *= e^d
// The last iteration doesn't need to update x.
func Log(x Fixed) Fixed {
	if x <= 0 { return 0 } // the scaling loop would never end

	var ln Fixed
	for x < InvSqrtE {
		ln -= One
		x = x.Mul(E)
	}
	for x > SqrtE {
		ln += One
		x = x.Mul(InvE)
	}

	for i := 0; i < 3; i++ {
		delta := (x - One).Mul((x - three).Div2())
		ln -= delta
		if i < 2 { x = x.Mul(calcExp(delta)) }
	}
	return ln
}

// Returns x^y, computed as e^(y*ln(x)). If y is zero the result is
// exactly One, even for x = 0. Otherwise x must be positive.
func Pow(x, y Fixed) Fixed {
	if y == 0 { return One }
	return Exp(y.Mul(Log(x)))
}

// Returns the square root of x. For x <= 0 and x == 1, the result is
// x itself (so negative values are returned unchanged, not an error).
//
// x is scaled by powers of 4 into [0.5, 2), where four Newton-Raphson
// iterations of u' = u - (u - x/u)/2 starting from u = 1 converge from
// either end. The result is then scaled back by the matching power of 2.
func Sqrt(x Fixed) Fixed {
	if x <= 0 || x == One { return x }

	scale := One
	for x >= Two {
		x = x.Div4()
		scale = scale.Mul2()
	}
	for x < Half {
		x = x.Mul4()
		scale = scale.Div2()
	}
	if x == One { return scale } // x was 4^n

	u := One
	for i := 0; i < 4; i++ {
		u = u - (u - x.Div(u)).Div2()
	}
	return scale.Mul(u)
}
