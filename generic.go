package q32

import "golang.org/x/exp/constraints"

// Generic version of [FromInt]() for any integer type.
func FromInteger[T constraints.Integer](value T) Fixed {
	return Fixed(int64(value) << 32)
}

// Generic version of [FromFloat64]() for float32 and float64.
// float32 values are converted exactly before the conversion.
func FromFloat[T constraints.Float](value T) Fixed {
	return FromFloat64(float64(value))
}

// Converts the value to the given float type. For float32
// the value is first converted to float64 and then rounded.
func ToFloat[T constraints.Float](value Fixed) T {
	return T(value.ToFloat64())
}
