package q32

// Two term approximation of asin(x), x + x^3/6.
func asinSeries(x Fixed) Fixed {
	return x.Mul(One + x.Mul(x).Mul(inv6))
}

// Two term approximation of atan(x), x - x^3/3.
func atanSeries(x Fixed) Fixed {
	return x.Mul(One - x.Mul(x.Mul(inv3)))
}

// asin(x) for x in [0, 1].
//
// With a = x + x^3/6, asin(x) = a + asin(d), where d is the sine of the
// remaining angle:
//   d = sin(asin(x) - a) = x*cos(a) - sqrt(1 - x^2)*sin(a)
// Each pass applies the same approximation to d. The worst case is
// x = 1, which needs two refinement passes.
func calcAsin(x Fixed) Fixed {
	a := asinSeries(x)
	result := a
	for pass := 0; pass < 2; pass++ {
		x = x.Mul(calcCos(a)) - Sqrt(One - x.Mul(x)).Mul(calcSin(a))
		a = asinSeries(x)
		result += a
	}
	return result
}

// atan(x) for x in [-1, 1].
//
// With a = x - x^3/3, atan(x) = a + atan(d), where d is the tangent of
// the remaining angle. Using t = tan(a):
//   d = tan(atan(x) - a) = (x - t)/(1 + x*t)
// Like with asin, x = 1 is the worst case and needs two passes.
func calcAtan(x Fixed) Fixed {
	a := atanSeries(x)
	result := a
	for pass := 0; pass < 2; pass++ {
		t := calcSin(a).Div(calcCos(a))
		x = (x - t).Div(One + t.Mul(x))
		a = atanSeries(x)
		result += a
	}
	return result
}

// Returns the arc sine of x, in radians. If x is outside [-1, 1]
// the result is zero.
func Asin(x Fixed) Fixed {
	if x < 0 {
		if x < -One { return 0 }
		return -calcAsin(-x)
	}
	if x > One { return 0 }
	return calcAsin(x)
}

// Returns the arc cosine of x, in radians, as pi/2 - asin(x). If x is
// outside [-1, 1] the result is zero, like with [Asin]().
func Acos(x Fixed) Fixed {
	if x < -One || x > One { return 0 }
	return HalfPi - Asin(x)
}

// Returns the arc tangent of x, in radians. For |x| > 1, the identity
// atan(x) = ±pi/2 - atan(1/x) is used.
func Atan(x Fixed) Fixed {
	if x > One  { return  HalfPi - calcAtan(x.Inv()) }
	if x < -One { return -HalfPi - calcAtan(x.Inv()) }
	return calcAtan(x)
}

// Returns the arc tangent of y/x, using the signs of both to determine
// the quadrant. The result is in [-pi, pi]. Atan2(0, 0) returns zero.
func Atan2(y, x Fixed) Fixed {
	if x == 0 {
		if y > 0 { return  HalfPi }
		if y < 0 { return -HalfPi }
		return 0
	}

	// keep the atan argument in [-1, 1] so the division can't overflow
	if y.Abs() > x.Abs() {
		if y > 0 { return HalfPi - calcAtan(x.Div(y)) }
		return -HalfPi - calcAtan(x.Div(y))
	}
	angle := calcAtan(y.Div(x))
	if x > 0 { return angle }
	if y >= 0 { return angle + Pi }
	return angle - Pi
}
