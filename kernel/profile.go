// SPDX-License-Identifier: MIT
// Package: motley/kernel
//
// profile.go — planar-region helpers backed by github.com/ctessum/geom.
//
// Profiles handed to these helpers are closed polylines lying in a plane
// parallel to world XY (plan profiles). The 2D work (containment, area,
// centroid, Boolean difference) is delegated to geom's polygon clipper; the
// Z coordinate of the first input point is restored on the way out.

package kernel

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// planPolygon projects a closed profile onto XY.
func planPolygon(c *Polyline, tol float64) geom.Polygon {
	vs := c.vertices(tol)
	path := make(geom.Path, len(vs))
	for i, p := range vs {
		path[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return geom.Polygon{path}
}

// localPolygon expresses the vertices of c in the (u,v) coordinates of pl.
func localPolygon(pl Plane, pts []r3.Vec) geom.Polygon {
	path := make(geom.Path, len(pts))
	for i, p := range pts {
		u, v, _ := pl.Local(p)
		path[i] = geom.Point{X: u, Y: v}
	}
	return geom.Polygon{path}
}

// inside reports whether (u,v) lies inside or on the boundary of poly.
func inside(poly geom.Polygon, u, v float64) bool {
	return geom.Point{X: u, Y: v}.Within(poly) != geom.Outside
}

// ContainsXY reports whether the plan projection of p lies inside the closed
// plan profile region.
func ContainsXY(region *Polyline, p r3.Vec, tol float64) bool {
	if !region.IsClosed(tol) {
		return false
	}
	return geom.Point{X: p.X, Y: p.Y}.Within(planPolygon(region, tol)) == geom.Inside
}

// AreaXY returns the unsigned plan area enclosed by a closed profile.
func AreaXY(c *Polyline, tol float64) float64 {
	if !c.IsClosed(tol) {
		return 0
	}
	return math.Abs(planPolygon(c, tol).Area())
}

// CentroidXY returns the area centroid of a closed plan profile at the Z of
// its first point. Open or zero-area profiles fall back to the box centre.
func CentroidXY(c *Polyline, tol float64) r3.Vec {
	if AreaXY(c, tol) <= tol*tol {
		return c.BoundingBox().Center()
	}
	g := planPolygon(c, tol).Centroid()
	return r3.Vec{X: g.X, Y: g.Y, Z: c.Start().Z}
}

// profileDifference subtracts the plan region of b from that of a and returns
// the resulting boundary rings, largest area first. An empty slice means the
// subtraction consumed a entirely.
func profileDifference(a, b *Polyline, tol float64) ([]*Polyline, error) {
	if !a.IsClosed(tol) {
		return nil, fmt.Errorf("ProfileDifference: minuend: %w", ErrOpenProfile)
	}
	if !b.IsClosed(tol) {
		return nil, fmt.Errorf("ProfileDifference: subtrahend: %w", ErrOpenProfile)
	}
	z := a.Start().Z
	diff := planPolygon(a, tol).Difference(planPolygon(b, tol))

	type ring struct {
		curve *Polyline
		area  float64
	}
	var rings []ring
	for _, poly := range diff.Polygons() {
		for _, path := range poly {
			if len(path) < 3 {
				continue
			}
			pts := make([]r3.Vec, 0, len(path)+1)
			for _, p := range path {
				pts = append(pts, r3.Vec{X: p.X, Y: p.Y, Z: z})
			}
			c := ClosedPolyline(pts...)
			if area := AreaXY(c, tol); area > tol*tol {
				rings = append(rings, ring{curve: c, area: area})
			}
		}
	}
	sort.SliceStable(rings, func(i, j int) bool { return rings[i].area > rings[j].area })

	out := make([]*Polyline, len(rings))
	for i, r := range rings {
		out[i] = r.curve
	}
	return out, nil
}

// selfIntersects reports whether two non-adjacent edges of the closed ring
// path touch or cross.
func selfIntersects(path geom.Path) bool {
	n := len(path)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := path[i], path[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsTouch(a, b, path[j], path[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// segmentsTouch reports whether segments ab and cd share a point.
func segmentsTouch(a, b, c, d geom.Point) bool {
	o1, o2 := orient(a, b, c), orient(a, b, d)
	o3, o4 := orient(c, d, a), orient(c, d, b)
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	return (o1 == 0 && onSegment(a, b, c)) || (o2 == 0 && onSegment(a, b, d)) ||
		(o3 == 0 && onSegment(c, d, a)) || (o4 == 0 && onSegment(c, d, b))
}

// orient returns the sign of the turn a→b→c: +1 left, -1 right, 0 collinear.
func orient(a, b, c geom.Point) int {
	cr := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	scale := math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y) + math.Abs(c.X-a.X) + math.Abs(c.Y-a.Y)
	switch {
	case cr > 1e-12*scale*scale:
		return 1
	case cr < -1e-12*scale*scale:
		return -1
	}
	return 0
}

// onSegment reports whether collinear point p lies within the bounds of ab.
func onSegment(a, b, p geom.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
