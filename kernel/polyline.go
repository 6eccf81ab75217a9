// SPDX-License-Identifier: MIT
// Package: motley/kernel
//
// polyline.go — the kernel's only curve type.
//
// Contract:
//   • A Polyline is an ordered list of points; it is closed when its last point
//     coincides with its first (within tolerance) and it has ≥ 4 points.
//   • Curve parameters are arc lengths measured from Start (0 … Length()).
//   • Every transforming method returns a new Polyline; receivers are never
//     mutated, so curves stored in a manifest can be shared freely.
//
// Complexity: point/length queries are O(n) in the number of segments.

package kernel

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline is a piecewise-linear curve.
type Polyline struct {
	Points []r3.Vec
}

// NewPolyline copies pts into a new polyline.
func NewPolyline(pts ...r3.Vec) *Polyline {
	cp := make([]r3.Vec, len(pts))
	copy(cp, pts)
	return &Polyline{Points: cp}
}

// ClosedPolyline copies pts and appends the first point when the list does
// not already end on it.
func ClosedPolyline(pts ...r3.Vec) *Polyline {
	c := NewPolyline(pts...)
	if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		c.Points = append(c.Points, pts[0])
	}
	return c
}

// Line returns the two-point polyline a→b.
func Line(a, b r3.Vec) *Polyline {
	return &Polyline{Points: []r3.Vec{a, b}}
}

// Clone returns a deep copy.
func (c *Polyline) Clone() *Polyline {
	return NewPolyline(c.Points...)
}

// Len returns the number of points.
func (c *Polyline) Len() int {
	return len(c.Points)
}

// Start returns the first point (zero vector when empty).
func (c *Polyline) Start() r3.Vec {
	if len(c.Points) == 0 {
		return r3.Vec{}
	}
	return c.Points[0]
}

// End returns the last point (zero vector when empty).
func (c *Polyline) End() r3.Vec {
	if len(c.Points) == 0 {
		return r3.Vec{}
	}
	return c.Points[len(c.Points)-1]
}

// IsClosed reports whether the polyline has at least four points and its
// ends coincide within tol.
func (c *Polyline) IsClosed(tol float64) bool {
	return len(c.Points) >= 4 && Distance(c.Start(), c.End()) <= tol
}

// SegmentLengths returns the length of every segment, in order.
func (c *Polyline) SegmentLengths() []float64 {
	if len(c.Points) < 2 {
		return nil
	}
	out := make([]float64, len(c.Points)-1)
	for i := 1; i < len(c.Points); i++ {
		out[i-1] = Distance(c.Points[i-1], c.Points[i])
	}
	return out
}

// Length returns the total arc length.
func (c *Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(c.Points); i++ {
		total += Distance(c.Points[i-1], c.Points[i])
	}
	return total
}

// locate maps an arc length to (segment index, fraction within segment).
// Lengths are clamped to [0, Length()]; a length exactly on an interior
// vertex resolves to the start of the following segment.
func (c *Polyline) locate(s float64) (int, float64) {
	n := len(c.Points) - 1
	if n < 1 {
		return 0, 0
	}
	if s <= 0 {
		return 0, 0
	}
	var acc float64
	for i := 0; i < n; i++ {
		l := Distance(c.Points[i], c.Points[i+1])
		if s < acc+l {
			return i, (s - acc) / l
		}
		acc += l
	}
	return n - 1, 1
}

// PointAtLength returns the point at arc length s (clamped).
func (c *Polyline) PointAtLength(s float64) r3.Vec {
	switch len(c.Points) {
	case 0:
		return r3.Vec{}
	case 1:
		return c.Points[0]
	}
	i, t := c.locate(s)
	return Lerp(c.Points[i], c.Points[i+1], t)
}

// PointAtNormalizedLength returns the point at fraction f ∈ [0,1] of the length.
func (c *Polyline) PointAtNormalizedLength(f float64) r3.Vec {
	return c.PointAtLength(f * c.Length())
}

// TangentAtLength returns the unit tangent at arc length s. Zero-length
// segments are skipped; a curve without length yields the zero vector.
func (c *Polyline) TangentAtLength(s float64) r3.Vec {
	if len(c.Points) < 2 {
		return r3.Vec{}
	}
	i, _ := c.locate(s)
	for k := i; k < len(c.Points)-1; k++ {
		if u, ok := Unit(r3.Sub(c.Points[k+1], c.Points[k])); ok {
			return u
		}
	}
	for k := i - 1; k >= 0; k-- {
		if u, ok := Unit(r3.Sub(c.Points[k+1], c.Points[k])); ok {
			return u
		}
	}
	return r3.Vec{}
}

// FrameAtLength returns the station frame at s: X along the tangent, Y the
// horizontal side normal, Z up.
func (c *Polyline) FrameAtLength(s float64) Plane {
	return tangentFrame(c.PointAtLength(s), c.TangentAtLength(s))
}

// PerpendicularFrameAtLength returns a frame at s whose normal is the
// tangent, with a horizontal X axis and an upward Y axis.
func (c *Polyline) PerpendicularFrameAtLength(s float64) Plane {
	return perpendicularFrame(c.PointAtLength(s), c.TangentAtLength(s))
}

// ClosestPoint returns the point on the curve nearest to p and its arc length.
func (c *Polyline) ClosestPoint(p r3.Vec) (r3.Vec, float64) {
	if len(c.Points) == 0 {
		return r3.Vec{}, 0
	}
	best, bestS := c.Points[0], 0.0
	bestD := Distance(p, best)
	var acc float64
	for i := 0; i+1 < len(c.Points); i++ {
		a, b := c.Points[i], c.Points[i+1]
		ab := r3.Sub(b, a)
		l2 := r3.Dot(ab, ab)
		t := 0.0
		if l2 > 0 {
			t = clamp01(r3.Dot(r3.Sub(p, a), ab) / l2)
		}
		q := Lerp(a, b, t)
		if d := Distance(p, q); d < bestD {
			best, bestD, bestS = q, d, acc+t*r3.Norm(ab)
		}
		acc += r3.Norm(ab)
	}
	return best, bestS
}

// DivideByCount splits the curve into n equal-length parts and returns the
// division points; includeEnds adds the start and end points.
func (c *Polyline) DivideByCount(n int, includeEnds bool) []r3.Vec {
	if n < 1 || len(c.Points) < 2 {
		return nil
	}
	l := c.Length()
	out := make([]r3.Vec, 0, n+1)
	if includeEnds {
		out = append(out, c.Start())
	}
	for i := 1; i < n; i++ {
		out = append(out, c.PointAtLength(l*float64(i)/float64(n)))
	}
	if includeEnds {
		out = append(out, c.End())
	}
	return out
}

// Extend lengthens both ends by d along the end segments.
func (c *Polyline) Extend(d float64) *Polyline {
	out := c.Clone()
	n := len(out.Points)
	if n < 2 {
		return out
	}
	if u, ok := Unit(r3.Sub(out.Points[0], out.Points[1])); ok {
		out.Points[0] = r3.Add(out.Points[0], r3.Scale(d, u))
	}
	if u, ok := Unit(r3.Sub(out.Points[n-1], out.Points[n-2])); ok {
		out.Points[n-1] = r3.Add(out.Points[n-1], r3.Scale(d, u))
	}
	return out
}

// Reverse returns the curve traversed end to start.
func (c *Polyline) Reverse() *Polyline {
	n := len(c.Points)
	out := make([]r3.Vec, n)
	for i, p := range c.Points {
		out[n-1-i] = p
	}
	return &Polyline{Points: out}
}

// SubCurve returns the portion between arc lengths s0 and s1 (s0 ≤ s1 after
// clamping). The result keeps the original vertices strictly inside the range.
func (c *Polyline) SubCurve(s0, s1 float64) *Polyline {
	l := c.Length()
	s0, s1 = clamp(s0, 0, l), clamp(s1, 0, l)
	if s1 < s0 {
		s0, s1 = s1, s0
	}
	pts := []r3.Vec{c.PointAtLength(s0)}
	var acc float64
	for i := 1; i < len(c.Points); i++ {
		acc += Distance(c.Points[i-1], c.Points[i])
		if acc > s0 && acc < s1 {
			pts = append(pts, c.Points[i])
		}
	}
	pts = append(pts, c.PointAtLength(s1))
	return &Polyline{Points: pts}
}

// Transform returns a copy with fn applied to every point.
func (c *Polyline) Transform(fn func(r3.Vec) r3.Vec) *Polyline {
	out := make([]r3.Vec, len(c.Points))
	for i, p := range c.Points {
		out[i] = fn(p)
	}
	return &Polyline{Points: out}
}

// Translate returns a copy moved by v.
func (c *Polyline) Translate(v r3.Vec) *Polyline {
	return c.Transform(func(p r3.Vec) r3.Vec { return r3.Add(p, v) })
}

// Scale returns a copy scaled uniformly by f about center.
func (c *Polyline) Scale(center r3.Vec, f float64) *Polyline {
	return c.Transform(func(p r3.Vec) r3.Vec {
		return r3.Add(center, r3.Scale(f, r3.Sub(p, center)))
	})
}

// Rotate returns a copy rotated by angle radians about the axis through center.
func (c *Polyline) Rotate(angle float64, axis, center r3.Vec) *Polyline {
	if angle == 0 {
		return c.Clone()
	}
	return c.Transform(func(p r3.Vec) r3.Vec {
		return r3.Add(center, r3.Rotate(r3.Sub(p, center), angle, axis))
	})
}

// BoundingBox returns the world-aligned bounds of the points.
func (c *Polyline) BoundingBox() Box {
	b := EmptyBox()
	for _, p := range c.Points {
		b = b.Include(p)
	}
	return b
}

// vertices returns the points without the closing duplicate of a closed curve.
func (c *Polyline) vertices(tol float64) []r3.Vec {
	if c.IsClosed(tol) {
		return c.Points[:len(c.Points)-1]
	}
	return c.Points
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x float64) float64 { return clamp(x, 0, 1) }

// Split cuts the curve at the given arc lengths and returns the pieces in
// order. Lengths outside (0, Length()) are ignored.
func (c *Polyline) Split(lengths ...float64) []*Polyline {
	l := c.Length()
	cuts := make([]float64, 0, len(lengths)+2)
	cuts = append(cuts, 0)
	for _, s := range lengths {
		if s > 0 && s < l {
			cuts = append(cuts, s)
		}
	}
	cuts = append(cuts, l)
	sort.Float64s(cuts)
	out := make([]*Polyline, 0, len(cuts)-1)
	for i := 0; i+1 < len(cuts); i++ {
		if cuts[i+1] > cuts[i] {
			out = append(out, c.SubCurve(cuts[i], cuts[i+1]))
		}
	}
	return out
}

// Segments returns every segment as a two-point polyline.
func (c *Polyline) Segments() []*Polyline {
	if len(c.Points) < 2 {
		return nil
	}
	out := make([]*Polyline, len(c.Points)-1)
	for i := range out {
		out[i] = Line(c.Points[i], c.Points[i+1])
	}
	return out
}
