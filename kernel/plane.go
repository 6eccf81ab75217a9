// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is an oriented, orthonormal frame: an origin and three unit axes with
// ZAxis = XAxis × YAxis.
type Plane struct {
	Origin r3.Vec
	XAxis  r3.Vec
	YAxis  r3.Vec
	ZAxis  r3.Vec
}

// WorldXY is the world frame at the origin.
var WorldXY = Plane{XAxis: UnitX, YAxis: UnitY, ZAxis: UnitZ}

// NewPlane builds a frame from an origin, a desired X direction and a vector
// lying in the plane. X keeps its direction; Y is re-orthogonalised against it.
// Returns ErrDegenerateFrame when x is zero or y is parallel to x.
func NewPlane(origin, x, y r3.Vec) (Plane, error) {
	ux, ok := Unit(x)
	if !ok {
		return Plane{}, fmt.Errorf("NewPlane: zero x direction: %w", ErrDegenerateFrame)
	}
	uz, ok := Unit(r3.Cross(ux, y))
	if !ok {
		return Plane{}, fmt.Errorf("NewPlane: y parallel to x: %w", ErrDegenerateFrame)
	}
	return Plane{Origin: origin, XAxis: ux, YAxis: r3.Cross(uz, ux), ZAxis: uz}, nil
}

// PlaneFromNormal builds a frame with the given normal. The X axis is world X
// projected into the plane, or world Y when the normal is parallel to world X.
func PlaneFromNormal(origin, normal r3.Vec) (Plane, error) {
	uz, ok := Unit(normal)
	if !ok {
		return Plane{}, fmt.Errorf("PlaneFromNormal: zero normal: %w", ErrDegenerateFrame)
	}
	ref := UnitX
	if abs(r3.Dot(ref, uz)) > 0.999 {
		ref = UnitY
	}
	ux, _ := Unit(r3.Sub(ref, r3.Scale(r3.Dot(ref, uz), uz)))
	return Plane{Origin: origin, XAxis: ux, YAxis: r3.Cross(uz, ux), ZAxis: uz}, nil
}

// tangentFrame returns the frame used for stations along a curve: X along the
// tangent, Y the horizontal side normal (world Z × X), Z completing the frame.
// A vertical tangent falls back to world Y as the side normal.
func tangentFrame(origin, tangent r3.Vec) Plane {
	ux, ok := Unit(tangent)
	if !ok {
		return Plane{Origin: origin, XAxis: UnitX, YAxis: UnitY, ZAxis: UnitZ}
	}
	uy, ok := Unit(r3.Cross(UnitZ, ux))
	if !ok {
		uy = UnitY
	}
	return Plane{Origin: origin, XAxis: ux, YAxis: uy, ZAxis: r3.Cross(ux, uy)}
}

// perpendicularFrame returns a frame whose normal is the tangent, with a
// horizontal X axis and Y pointing up as far as the tangent allows.
func perpendicularFrame(origin, tangent r3.Vec) Plane {
	uz, ok := Unit(tangent)
	if !ok {
		return Plane{Origin: origin, XAxis: UnitX, YAxis: UnitZ, ZAxis: r3.Scale(-1, UnitY)}
	}
	ux, ok := Unit(r3.Cross(UnitZ, uz))
	if !ok {
		ux = UnitX
	}
	return Plane{Origin: origin, XAxis: ux, YAxis: r3.Cross(uz, ux), ZAxis: uz}
}

// PointAt returns Origin + u·XAxis + v·YAxis.
func (p Plane) PointAt(u, v float64) r3.Vec {
	return r3.Add(p.Origin, r3.Add(r3.Scale(u, p.XAxis), r3.Scale(v, p.YAxis)))
}

// Local returns the coordinates of pt in this frame.
func (p Plane) Local(pt r3.Vec) (u, v, w float64) {
	d := r3.Sub(pt, p.Origin)
	return r3.Dot(d, p.XAxis), r3.Dot(d, p.YAxis), r3.Dot(d, p.ZAxis)
}

// Translate returns the plane moved by v.
func (p Plane) Translate(v r3.Vec) Plane {
	p.Origin = r3.Add(p.Origin, v)
	return p
}

// Rotate returns the plane with its axes rotated by angle radians about axis.
// The origin is unchanged.
func (p Plane) Rotate(angle float64, axis r3.Vec) Plane {
	p.XAxis = r3.Rotate(p.XAxis, angle, axis)
	p.YAxis = r3.Rotate(p.YAxis, angle, axis)
	p.ZAxis = r3.Rotate(p.ZAxis, angle, axis)
	return p
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
