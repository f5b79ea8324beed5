package q32

import "math"
import "errors"
import "strconv"

var ErrSyntax = errors.New("invalid fixed point value syntax")
var ErrRange  = errors.New("value out of fixed point range")

// Returns a textual representation of the value (e.g.: "-2.5"),
// using the shortest float64 representation that converts back
// to the same float64 value.
func (self Fixed) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}

// Parses a decimal or float literal (anything accepted by
// [strconv.ParseFloat]()) into a Fixed value. Unlike every other
// function in the package, the input is validated: NaN, infinities
// and values that would wrap return [ErrRange].
func Parse(str string) (Fixed, error) {
	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) { return 0, ErrRange }
		return 0, ErrSyntax
	}
	if math.IsNaN(value) || value >= 2147483648.0 || value < -2147483648.0 {
		return 0, ErrRange
	}
	return FromFloat64(value), nil
}
