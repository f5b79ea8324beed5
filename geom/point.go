package geom

import "image"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/q32"

// A pair of [q32.Fixed] coordinates.
type Point struct {
	X q32.Fixed
	Y q32.Fixed
}

// Creates a point from a pair of fixed point values.
func Pt(x, y q32.Fixed) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: q32.FromInt(x), Y: q32.FromInt(y) }
}

// Creates a point from a pair of float64s. See [q32.FromFloat64]().
func Float64sToPoint(x, y float64) Point {
	return Point{ X: q32.FromFloat64(x), Y: q32.FromFloat64(y) }
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns the point coordinates as a pair of ints, chopped
// toward negative infinity.
func (self Point) ToInts() (x, y int) {
	return self.X.ToInt(), self.Y.ToInt()
}

// Same as [Point.ToInts](), but returned as an [image.Point].
func (self Point) ImagePoint() image.Point {
	return image.Pt(self.ToInts())
}

// Converts the point to a [fixed.Point26_6], chopping the
// extra fraction bits.
func (self Point) Point26_6() fixed.Point26_6 {
	return fixed.Point26_6{ X: self.X.ToInt26_6(), Y: self.Y.ToInt26_6() }
}

// Creates a point from a [fixed.Point26_6]. The conversion is exact.
func FromPoint26_6(point fixed.Point26_6) Point {
	return Point{ X: q32.FromInt26_6(point.X), Y: q32.FromInt26_6(point.Y) }
}

func (self Point) Add(other Point) Point {
	self.X += other.X
	self.Y += other.Y
	return self
}

func (self Point) Sub(other Point) Point {
	self.X -= other.X
	self.Y -= other.Y
	return self
}

// Returns the point with both coordinates multiplied by factor.
func (self Point) Scale(factor q32.Fixed) Point {
	return Point{ X: self.X.Mul(factor), Y: self.Y.Mul(factor) }
}

// Returns the dot product of both points, seen as vectors.
func (self Point) Dot(other Point) q32.Fixed {
	return self.X.Mul(other.X) + self.Y.Mul(other.Y)
}

// Returns the distance from the origin to the point.
func (self Point) Length() q32.Fixed {
	return q32.Sqrt(self.Dot(self))
}

// Returns the angle of the vector from the origin to the point,
// in radians, within [-pi, pi]. See [q32.Atan2]().
func (self Point) Angle() q32.Fixed {
	return q32.Atan2(self.Y, self.X)
}

// Returns the point rotated around the origin by the given angle,
// in radians. Positive angles go from +X toward +Y.
func (self Point) Rotate(angle q32.Fixed) Point {
	return Rotation(angle).Apply(self)
}

// Returns whether the point is inside the given [Rect].
func (self Point) In(rect Rect) bool {
	return self.X >= rect.Min.X && self.X < rect.Max.X && self.Y >= rect.Min.Y && self.Y < rect.Max.Y
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}
