package q32

// Evaluates 1 - x2*c[0]*(1 - x2*c[1]*(1 - ...)) from the innermost term.
func alternatingSeries(x2 Fixed, coefficients *[6]Fixed) Fixed {
	result := One
	for i := len(coefficients) - 1; i >= 0; i-- {
		result = One - x2.Mul(result).Mul(coefficients[i])
	}
	return result
}

// Cosine for x in [-pi/4, pi/4]. The first omitted term,
// (pi/4)^14/14!, is already below the format's resolution.
func calcCos(x Fixed) Fixed {
	return alternatingSeries(x.Mul(x), &cosSeries)
}

// Sine for x in [-pi/4, pi/4]. The first omitted term,
// (pi/4)^15/15!, is already below the format's resolution.
func calcSin(x Fixed) Fixed {
	return x.Mul(alternatingSeries(x.Mul(x), &sinSeries))
}

// Returns the residual r = x - i*pi/2, with r in [-pi/4, pi/4]
// (give or take a few units), and the quadrant index i & 3.
func reduceQuadrant(x Fixed) (Fixed, int) {
	i := (x.Mul(TwoInvPi) + Half).ToInt()
	return x - FromInt(i).Mul(HalfPi), i & 3
}

// Returns the sine of x, in radians.
func Sin(x Fixed) Fixed {
	r, quadrant := reduceQuadrant(x)
	switch quadrant {
	case 0: return calcSin(r)
	case 1: return calcCos(r)
	case 2: return -calcSin(r)
	default:
		return -calcCos(r)
	}
}

// Returns the cosine of x, in radians.
func Cos(x Fixed) Fixed {
	r, quadrant := reduceQuadrant(x)
	switch quadrant {
	case 0: return calcCos(r)
	case 1: return -calcSin(r)
	case 2: return -calcCos(r)
	default:
		return calcSin(r)
	}
}

// Returns the tangent of x, in radians. The argument is reduced only
// once: tan(r + pi/2) is computed directly as -cos(r)/sin(r).
// Close to the asymptotes the result is huge or garbage.
func Tan(x Fixed) Fixed {
	r, quadrant := reduceQuadrant(x)
	if quadrant & 1 == 0 {
		return calcSin(r).Div(calcCos(r))
	}
	return -calcCos(r).Div(calcSin(r))
}

// Returns the cotangent of x, 1/tan(x). Same reduction as [Tan]().
func Cot(x Fixed) Fixed {
	r, quadrant := reduceQuadrant(x)
	if quadrant & 1 == 0 {
		return calcCos(r).Div(calcSin(r))
	}
	return -calcSin(r).Div(calcCos(r))
}

// Returns the secant of x, 1/cos(x). The secant family is computed
// directly from the reciprocals, so it's the least accurate one.
func Sec(x Fixed) Fixed { return Cos(x).Inv() }

// Returns the cosecant of x, 1/sin(x).
func Csc(x Fixed) Fixed { return Sin(x).Inv() }
