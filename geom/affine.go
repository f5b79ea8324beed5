package geom

import "golang.org/x/image/math/f64"

import "github.com/tinne26/q32"

// A 2x3 affine transformation matrix, in row major order
// and with the same layout as [f64.Aff3]:
//   x' = m[0]*x + m[1]*y + m[2]
//   y' = m[3]*x + m[4]*y + m[5]
type Affine [6]q32.Fixed

// The transformation that leaves points unchanged.
func Identity() Affine {
	return Affine{ q32.One, 0, 0, 0, q32.One, 0 }
}

func Translation(offset Point) Affine {
	return Affine{ q32.One, 0, offset.X, 0, q32.One, offset.Y }
}

func Scaling(sx, sy q32.Fixed) Affine {
	return Affine{ sx, 0, 0, 0, sy, 0 }
}

// Rotation around the origin by the given angle, in radians.
func Rotation(angle q32.Fixed) Affine {
	sin, cos := q32.Sin(angle), q32.Cos(angle)
	return Affine{ cos, -sin, 0, sin, cos, 0 }
}

// Returns the composition self * other: the resulting transform
// applies other first and then self.
func (self Affine) Mul(other Affine) Affine {
	return Affine{
		self[0].Mul(other[0]) + self[1].Mul(other[3]),
		self[0].Mul(other[1]) + self[1].Mul(other[4]),
		self[0].Mul(other[2]) + self[1].Mul(other[5]) + self[2],
		self[3].Mul(other[0]) + self[4].Mul(other[3]),
		self[3].Mul(other[1]) + self[4].Mul(other[4]),
		self[3].Mul(other[2]) + self[4].Mul(other[5]) + self[5],
	}
}

// Applies the transformation to the given point.
func (self Affine) Apply(point Point) Point {
	return Point{
		X: self[0].Mul(point.X) + self[1].Mul(point.Y) + self[2],
		Y: self[3].Mul(point.X) + self[4].Mul(point.Y) + self[5],
	}
}

// Returns the bounding box of the transformed rect. Empty
// rects are returned unchanged.
func (self Affine) ApplyRect(rect Rect) Rect {
	if rect.Empty() { return rect }

	corners := [4]Point{
		self.Apply(rect.Min),
		self.Apply(Pt(rect.Max.X, rect.Min.Y)),
		self.Apply(Pt(rect.Min.X, rect.Max.Y)),
		self.Apply(rect.Max),
	}
	bounds := Rect{ Min: corners[0], Max: corners[0] }
	for _, corner := range corners[1 : ] {
		if corner.X < bounds.Min.X { bounds.Min.X = corner.X }
		if corner.Y < bounds.Min.Y { bounds.Min.Y = corner.Y }
		if corner.X > bounds.Max.X { bounds.Max.X = corner.X }
		if corner.Y > bounds.Max.Y { bounds.Max.Y = corner.Y }
	}
	return bounds
}

// Returns the determinant of the linear part of the matrix.
func (self Affine) Det() q32.Fixed {
	return self[0].Mul(self[4]) - self[1].Mul(self[3])
}

// Returns the inverse transformation. If the matrix is singular,
// the identity is returned along with false.
func (self Affine) Invert() (Affine, bool) {
	det := self.Det()
	if det == 0 { return Identity(), false }

	invDet := det.Inv()
	a, b := self[4].Mul(invDet), -self[1].Mul(invDet)
	d, e := -self[3].Mul(invDet), self[0].Mul(invDet)
	return Affine{
		a, b, -(a.Mul(self[2]) + b.Mul(self[5])),
		d, e, -(d.Mul(self[2]) + e.Mul(self[5])),
	}, true
}

// Converts the matrix to an [f64.Aff3].
func (self Affine) Aff3() f64.Aff3 {
	var aff f64.Aff3
	for i, value := range self {
		aff[i] = value.ToFloat64()
	}
	return aff
}

// Creates a matrix from an [f64.Aff3]. See [q32.FromFloat64]().
func FromAff3(aff f64.Aff3) Affine {
	var affine Affine
	for i, value := range aff {
		affine[i] = q32.FromFloat64(value)
	}
	return affine
}
