package geom

import "image"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/q32"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle. Rects with Min >= Max on any axis are
// considered empty.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four fixed point values.
func FixedToRect(minX, minY, maxX, maxY q32.Fixed) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from a set of four integers.
func IntsToRect(minX, minY, maxX, maxY int) Rect {
	return Rect{ Min: IntsToPoint(minX, minY), Max: IntsToPoint(maxX, maxY) }
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return IntsToRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
}

// Converts the rect to an [image.Rectangle]. Min is chopped and
// Max is rounded up, so the result always contains the rect.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToInt(), self.Min.Y.ToInt(),
		self.Max.X.Ceil().ToInt(), self.Max.Y.Ceil().ToInt(),
	)
}

// Converts the rect to a [fixed.Rectangle26_6], chopping the extra
// fraction bits.
func (self Rect) Rect26_6() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{ Min: self.Min.Point26_6(), Max: self.Max.Point26_6() }
}

func (self Rect) Width() q32.Fixed {
	return self.Max.X - self.Min.X
}

func (self Rect) Height() q32.Fixed {
	return self.Max.Y - self.Min.Y
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns whether the rect contains the given point or not.
// Like with [image.Rectangle], point == Rect.Min is included,
// but point == Rect.Max is not.
func (self Rect) Contains(point Point) bool {
	return point.In(self)
}

// Returns the result of translating the rect by the given offset.
func (self Rect) Add(offset Point) Rect {
	return Rect{ Min: self.Min.Add(offset), Max: self.Max.Add(offset) }
}

// Returns the smallest rect containing both rects. Empty
// rects are ignored.
func (self Rect) Union(other Rect) Rect {
	if self.Empty() { return other }
	if other.Empty() { return self }
	if other.Min.X < self.Min.X { self.Min.X = other.Min.X }
	if other.Min.Y < self.Min.Y { self.Min.Y = other.Min.Y }
	if other.Max.X > self.Max.X { self.Max.X = other.Max.X }
	if other.Max.Y > self.Max.Y { self.Max.Y = other.Max.Y }
	return self
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
