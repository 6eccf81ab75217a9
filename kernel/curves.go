// SPDX-License-Identifier: MIT

package kernel

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Intersection is a point shared by two curves, with its arc length on each.
type Intersection struct {
	Point   r3.Vec
	LengthA float64
	LengthB float64
}

// JoinCurves chains curves whose ends meet within tol into as few polylines
// as possible. Chains that return to their start are snapped closed.
// Input curves are not modified. Order of the result follows the first
// unused input curve of each chain.
func JoinCurves(curves []*Polyline, tol float64) []*Polyline {
	used := make([]bool, len(curves))
	var out []*Polyline
	for i, seed := range curves {
		if used[i] || seed == nil || seed.Len() == 0 {
			used[i] = true
			continue
		}
		used[i] = true
		chain := append([]r3.Vec(nil), seed.Points...)
		for grown := true; grown; {
			grown = false
			for j, c := range curves {
				if used[j] || c == nil || c.Len() == 0 {
					continue
				}
				head, tail := chain[0], chain[len(chain)-1]
				switch {
				case Distance(tail, c.Start()) <= tol:
					chain = append(chain, c.Points[1:]...)
				case Distance(tail, c.End()) <= tol:
					chain = append(chain, c.Reverse().Points[1:]...)
				case Distance(head, c.End()) <= tol:
					chain = append(append([]r3.Vec(nil), c.Points[:c.Len()-1]...), chain...)
				case Distance(head, c.Start()) <= tol:
					rev := c.Reverse().Points
					chain = append(append([]r3.Vec(nil), rev[:len(rev)-1]...), chain...)
				default:
					continue
				}
				used[j] = true
				grown = true
			}
		}
		chain = dedupe(chain, tol)
		if len(chain) >= 4 && Distance(chain[0], chain[len(chain)-1]) <= tol {
			chain[len(chain)-1] = chain[0]
		}
		out = append(out, &Polyline{Points: chain})
	}
	return out
}

// dedupe drops consecutive points closer than tol.
func dedupe(pts []r3.Vec, tol float64) []r3.Vec {
	if len(pts) == 0 {
		return pts
	}
	out := []r3.Vec{pts[0]}
	for _, p := range pts[1:] {
		if Distance(p, out[len(out)-1]) > tol {
			out = append(out, p)
		}
	}
	return out
}

// IntersectCurves returns the points where segments of a and b pass within
// tol of each other, ordered by arc length along a. Collinear overlaps are
// not reported. Hits closer than tol to an earlier hit are merged.
func IntersectCurves(a, b *Polyline, tol float64) []Intersection {
	var hits []Intersection
	var accA float64
	for i := 0; i+1 < a.Len(); i++ {
		p0, p1 := a.Points[i], a.Points[i+1]
		la := Distance(p0, p1)
		var accB float64
		for j := 0; j+1 < b.Len(); j++ {
			q0, q1 := b.Points[j], b.Points[j+1]
			lb := Distance(q0, q1)
			s, t, ok := closestSegmentParams(p0, p1, q0, q1)
			if ok {
				pa, pb := Lerp(p0, p1, s), Lerp(q0, q1, t)
				if Distance(pa, pb) <= tol {
					hits = append(hits, Intersection{
						Point:   Midpoint(pa, pb),
						LengthA: accA + s*la,
						LengthB: accB + t*lb,
					})
				}
			}
			accB += lb
		}
		accA += la
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].LengthA < hits[j].LengthA })
	merged := hits[:0]
	for _, h := range hits {
		dup := false
		for _, m := range merged {
			if Distance(m.Point, h.Point) <= tol {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, h)
		}
	}
	return merged
}

// closestSegmentParams returns the parameters of the closest points between
// segments p0p1 and q0q1. ok is false for parallel or degenerate segments.
func closestSegmentParams(p0, p1, q0, q1 r3.Vec) (s, t float64, ok bool) {
	d1, d2, r := r3.Sub(p1, p0), r3.Sub(q1, q0), r3.Sub(p0, q0)
	a, e := r3.Dot(d1, d1), r3.Dot(d2, d2)
	if a < 1e-18 || e < 1e-18 {
		return 0, 0, false
	}
	b, c, f := r3.Dot(d1, d2), r3.Dot(d1, r), r3.Dot(d2, r)
	denom := a*e - b*b
	if denom <= 1e-12*a*e {
		return 0, 0, false
	}
	s = clamp01((b*f - c*e) / denom)
	t = (b*s + f) / e
	if t < 0 {
		t, s = 0, clamp01(-c/a)
	} else if t > 1 {
		t, s = 1, clamp01((b-c)/a)
	}
	return s, t, true
}

// SplitClosed cuts a closed curve at arc lengths s0 and s1 and returns the
// piece running forward from s0 to s1 and the piece running from s1 around
// through the seam back to s0.
func SplitClosed(c *Polyline, s0, s1 float64) (*Polyline, *Polyline) {
	l := c.Length()
	if s1 < s0 {
		s0, s1 = s1, s0
	}
	inner := c.SubCurve(s0, s1)
	tail := c.SubCurve(s1, l)
	head := c.SubCurve(0, s0)
	outer := &Polyline{Points: dedupe(append(append([]r3.Vec(nil), tail.Points...), head.Points...), 1e-9)}
	return inner, outer
}
