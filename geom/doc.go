// Package geom provides 2D geometry helpers built on top of the
// 32.32 [q32.Fixed] type: the [Point] and [Rect] types, and the
// [Affine] transformation matrix.
//
// Like the q32 package itself, nothing here checks for overflows:
// coordinates are expected to stay well within the int32 range,
// and lengths, dot products and determinants must also fit.
//
// Conversions are provided to the [golang.org/x/image/math/fixed]
// and [golang.org/x/image/math/f64] types, and, unless the noebiten
// build tag is used, to Ebitengine's GeoM.
package geom
