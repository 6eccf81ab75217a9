// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an axis-aligned bounding box. The zero Box is a valid box at the
// origin; use EmptyBox to start an accumulation.
type Box struct {
	Min r3.Vec
	Max r3.Vec
}

// EmptyBox returns an inverted box that any Include call replaces.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether nothing has been included.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Include returns the box grown to contain p.
func (b Box) Include(p r3.Vec) Box {
	b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	return b
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	return b.Include(o.Min).Include(o.Max)
}

// Center returns the box midpoint.
func (b Box) Center() r3.Vec {
	return Midpoint(b.Min, b.Max)
}

// Size returns the box extents.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Overlaps reports whether the boxes intersect, allowing a gap up to tol.
func (b Box) Overlaps(o Box, tol float64) bool {
	return b.Min.X <= o.Max.X+tol && o.Min.X <= b.Max.X+tol &&
		b.Min.Y <= o.Max.Y+tol && o.Min.Y <= b.Max.Y+tol &&
		b.Min.Z <= o.Max.Z+tol && o.Min.Z <= b.Max.Z+tol
}

// SolidBox returns the bounds reported by a solid.
func SolidBox(s Solid) Box {
	return Box{Min: fromCoord(s.Min()), Max: fromCoord(s.Max())}
}
