// q32 is a fixed point math package for Golang built around the
// [Fixed] type, a signed 32.32 value stored in an int64: the upper 32
// bits hold the integer part and the lower 32 bits hold the fraction.
//
// Besides the basic arithmetic, the package implements the common
// elementary functions (trigonometric, inverse trigonometric, hyperbolic,
// exponential, logarithmic, power and square root) using only integer
// operations. This makes results deterministic across platforms, which
// is the main reason to use the package at all.
//
// Usage is straightforward:
//   angle := q32.FromFloat64(0.75)
//   x, y  := q32.Cos(angle), q32.Sin(angle)
//   dist  := q32.Sqrt(x.Mul(x).Add(y.Mul(y)))
//   fmt.Print(dist) // 1 (or very very close)
//
// Some important notes:
//  - No argument checks are done. Division by zero, overflows and domain
//    errors (like asin(2) or log(-1)) won't panic, but the results will
//    be garbage. If you care, bound your inputs.
//  - All operations chop instead of rounding. Errors of a few units in
//    the last place are expected, particularly for the functions that
//    depend on [Fixed.Inv]().
//  - The [Parse]() function is the only place where values are validated.
//
// For 2D helpers built on top of this package, see the geom subpackage.
package q32
