package q32

// Hyperbolic functions, from their definitions in terms of e^x. The
// odd and even symmetries are used so e^x is always computed for
// x >= 0, which keeps the reciprocals of tiny values out of the way.
// Results overflow for |x| above ~21.4 (~10.7 for Tanh and Coth).

// Returns the hyperbolic cosine of x, (e^x + e^-x)/2.
func Cosh(x Fixed) Fixed {
	ex := Exp(x.Abs())
	return (ex + ex.Inv()).Div2()
}

// Returns the hyperbolic sine of x, (e^x - e^-x)/2.
func Sinh(x Fixed) Fixed {
	ex := Exp(x.Abs())
	sinh := (ex - ex.Inv()).Div2()
	if x < 0 { return -sinh }
	return sinh
}

// Returns the hyperbolic tangent of x, (e^2x - 1)/(e^2x + 1),
// evaluated as 1 - 2/(e^2x + 1).
func Tanh(x Fixed) Fixed {
	e2x := Exp(x.Mul2())
	return One - (e2x + One).Inv().Mul2()
}

// Returns the hyperbolic cotangent of x, (e^2x + 1)/(e^2x - 1),
// evaluated as 1 + 2/(e^2x - 1). Zero is not checked.
func Coth(x Fixed) Fixed {
	e2x := Exp(x.Mul2())
	return One + (e2x - One).Inv().Mul2()
}

// Returns the hyperbolic secant of x, 2/(e^x + e^-x).
func Sech(x Fixed) Fixed {
	ex := Exp(x.Abs())
	return (ex + ex.Inv()).Inv().Mul2()
}

// Returns the hyperbolic cosecant of x, 2/(e^x - e^-x).
// Zero is not checked.
func Csch(x Fixed) Fixed {
	ex := Exp(x.Abs())
	csch := (ex - ex.Inv()).Inv().Mul2()
	if x < 0 { return -csch }
	return csch
}
