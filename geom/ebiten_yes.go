//go:build !noebiten

package geom

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/q32"

// Ebitengine-related conversions. Use the noebiten build
// tag to drop the dependency.

// Converts the matrix to an [ebiten.GeoM].
func (self Affine) GeoM() ebiten.GeoM {
	var geom ebiten.GeoM
	for i, value := range self {
		geom.SetElement(i/3, i%3, value.ToFloat64())
	}
	return geom
}

// Creates a matrix from an [ebiten.GeoM]. Values are chopped
// as explained in [q32.FromFloat64]().
func FromGeoM(geom ebiten.GeoM) Affine {
	var affine Affine
	for i := range affine {
		affine[i] = q32.FromFloat64(geom.Element(i/3, i%3))
	}
	return affine
}
