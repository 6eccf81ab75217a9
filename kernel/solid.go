// SPDX-License-Identifier: MIT
// Package: motley/kernel
//
// solid.go — solid and surface-piece representations of the reference kernel.
//
// Design:
//   • A Solid is a point-membership classifier with finite bounds
//     (github.com/unixpickle/model3d/model3d.Solid). Booleans compose
//     classifiers (JoinedSolid, SubtractedSolid) instead of trimming faces,
//     so they are exact for membership and never leave slivers.
//   • Surface pieces mirror the cap / side-wall / join workflow of a B-rep
//     modeller: a Wall is the open side surface of an extrusion, loft or
//     sweep and remembers the volume it encloses once both of its end loops
//     are closed by Caps; Join performs that check.

package kernel

import (
	"github.com/ctessum/geom"
	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is a closed volume with finite bounds.
type Solid = model3d.Solid

// Piece is a surface piece accepted by Kernel.Join: a *Cap or a *Wall.
type Piece interface {
	piece()
}

// Cap is a planar face bounded by a closed loop.
type Cap struct {
	Plane Plane
	Loop  *Polyline
}

func (*Cap) piece() {}

// WallKind names the construction that produced a Wall.
type WallKind string

const (
	WallExtrusion WallKind = "extrusion"
	WallLoft      WallKind = "loft"
	WallSweep     WallKind = "sweep"
)

// Wall is an open side surface with two boundary loops.
type Wall struct {
	Kind WallKind
	// Ends holds the start and end boundary loops.
	Ends [2]*Polyline
	body Solid
}

func (*Wall) piece() {}

// prism is the volume swept by a planar outline translated along dir.
type prism struct {
	plane    Plane
	outline  geom.Polygon
	dir      r3.Vec
	ndot     float64
	min, max model3d.Coord3D
}

func newPrism(pl Plane, pts []r3.Vec, dir r3.Vec) *prism {
	b := EmptyBox()
	for _, p := range pts {
		b = b.Include(p).Include(r3.Add(p, dir))
	}
	return &prism{
		plane:   pl,
		outline: localPolygon(pl, pts),
		dir:     dir,
		ndot:    r3.Dot(dir, pl.ZAxis),
		min:     toCoord(b.Min),
		max:     toCoord(b.Max),
	}
}

func (p *prism) Min() model3d.Coord3D { return p.min }
func (p *prism) Max() model3d.Coord3D { return p.max }

func (p *prism) Contains(c model3d.Coord3D) bool {
	q := fromCoord(c)
	t := r3.Dot(r3.Sub(q, p.plane.Origin), p.plane.ZAxis) / p.ndot
	if t < 0 || t > 1 {
		return false
	}
	u, v, _ := p.plane.Local(r3.Sub(q, r3.Scale(t, p.dir)))
	return inside(p.outline, u, v)
}

// straightLoft interpolates linearly between two parallel sections with the
// same vertex count.
type straightLoft struct {
	plane    Plane
	a, b     []geom.Point
	span     float64
	min, max model3d.Coord3D
}

func (l *straightLoft) Min() model3d.Coord3D { return l.min }
func (l *straightLoft) Max() model3d.Coord3D { return l.max }

func (l *straightLoft) Contains(c model3d.Coord3D) bool {
	u, v, w := l.plane.Local(fromCoord(c))
	t := w / l.span
	if t < 0 || t > 1 {
		return false
	}
	path := make(geom.Path, len(l.a))
	for i := range l.a {
		path[i] = geom.Point{
			X: l.a[i].X + t*(l.b[i].X-l.a[i].X),
			Y: l.a[i].Y + t*(l.b[i].Y-l.a[i].Y),
		}
	}
	return inside(geom.Polygon{path}, u, v)
}

// translatedSolid offsets another solid.
type translatedSolid struct {
	inner  Solid
	offset model3d.Coord3D
}

func (t *translatedSolid) Min() model3d.Coord3D { return t.inner.Min().Add(t.offset) }
func (t *translatedSolid) Max() model3d.Coord3D { return t.inner.Max().Add(t.offset) }

func (t *translatedSolid) Contains(c model3d.Coord3D) bool {
	return t.inner.Contains(c.Sub(t.offset))
}

// Translate returns s moved by v. A zero offset returns s itself.
func Translate(s Solid, v r3.Vec) Solid {
	if s == nil || v == (r3.Vec{}) {
		return s
	}
	if ts, ok := s.(*translatedSolid); ok {
		return &translatedSolid{inner: ts.inner, offset: ts.offset.Add(toCoord(v))}
	}
	return &translatedSolid{inner: s, offset: toCoord(v)}
}

// Mesh triangulates a solid with marching cubes at the given grid resolution.
func Mesh(s Solid, resolution float64) *model3d.Mesh {
	return model3d.MarchingCubesSearch(s, resolution, 8)
}
