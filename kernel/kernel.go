// SPDX-License-Identifier: MIT
// Package: motley/kernel
//
// kernel.go — the Kernel contract and its reference implementation, CSG.
//
// Contract (what the massing pipeline relies on):
//   • CapPlanar / Extrude / Loft / Sweep validate their profiles and return a
//     sentinel-wrapped error instead of a partial result.
//   • Join succeeds only when the pieces form a closed shell.
//   • Difference may fail or return zero pieces; callers that must not abort
//     use SafeDifference.
//
// Determinism: every operation is a pure function of its inputs and the
// kernel options; no randomness, no shared mutable state. A CSG value is safe
// for concurrent use.

package kernel

import (
	"fmt"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kernel is the set of solid-modelling operations the generator needs from
// its host geometry engine.
type Kernel interface {
	// Tolerance is the absolute modelling tolerance.
	Tolerance() float64
	// CapPlanar builds a planar face bounded by a closed profile.
	CapPlanar(profile *Polyline) (*Cap, error)
	// Extrude sweeps a closed planar profile straight along dir.
	Extrude(profile *Polyline, dir r3.Vec) (*Wall, error)
	// Loft connects two closed sections with a straight ruled surface.
	Loft(a, b *Polyline) (*Wall, error)
	// Sweep moves a closed profile along a rail, keeping it perpendicular.
	Sweep(rail, profile *Polyline) (*Wall, error)
	// Join combines walls and caps into one closed solid.
	Join(pieces ...Piece) (Solid, error)
	// Union merges solids into one.
	Union(solids ...Solid) (Solid, error)
	// Difference removes every removal from a. Zero pieces is a valid outcome.
	Difference(a Solid, removals ...Solid) ([]Solid, error)
	// ProfileDifference subtracts plan region b from plan region a.
	ProfileDifference(a, b *Polyline) ([]*Polyline, error)
}

// Defaults of the reference kernel.
const (
	DefaultTolerance     = 0.1
	DefaultSampleDensity = 4
)

// Option customises a CSG kernel.
type Option func(*CSG)

// WithTolerance sets the modelling tolerance. Panics on tol ≤ 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("kernel: WithTolerance(tol<=0)")
	}
	return func(k *CSG) { k.tol = tol }
}

// WithSampleDensity sets how many grid steps per axis Difference samples when
// checking whether the removals consume the whole solid. Panics on n < 1.
func WithSampleDensity(n int) Option {
	if n < 1 {
		panic("kernel: WithSampleDensity(n<1)")
	}
	return func(k *CSG) { k.density = n }
}

// CSG is the reference Kernel: solids are exact membership classifiers
// composed with constructive solid geometry.
type CSG struct {
	tol     float64
	density int
}

var _ Kernel = (*CSG)(nil)

// New returns a CSG kernel with defaults overridden by opts, applied in order.
func New(opts ...Option) *CSG {
	k := &CSG{tol: DefaultTolerance, density: DefaultSampleDensity}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Tolerance implements Kernel.
func (k *CSG) Tolerance() float64 { return k.tol }

// CapPlanar implements Kernel.
func (k *CSG) CapPlanar(profile *Polyline) (*Cap, error) {
	pl, _, err := k.fitProfile(profile)
	if err != nil {
		return nil, fmt.Errorf("CapPlanar: %w", err)
	}
	return &Cap{Plane: pl, Loop: profile.Clone()}, nil
}

// Extrude implements Kernel.
func (k *CSG) Extrude(profile *Polyline, dir r3.Vec) (*Wall, error) {
	pl, verts, err := k.fitProfile(profile)
	if err != nil {
		return nil, fmt.Errorf("Extrude: %w", err)
	}
	if r3.Norm(dir) <= k.tol {
		return nil, fmt.Errorf("Extrude: |dir|=%g: %w", r3.Norm(dir), ErrParallelExtrusion)
	}
	if u, _ := Unit(dir); abs(r3.Dot(u, pl.ZAxis)) < 1e-6 {
		return nil, fmt.Errorf("Extrude: direction in profile plane: %w", ErrParallelExtrusion)
	}
	return &Wall{
		Kind: WallExtrusion,
		Ends: [2]*Polyline{profile.Clone(), profile.Translate(dir)},
		body: newPrism(pl, verts, dir),
	}, nil
}

// Loft implements Kernel. Sections must be parallel and have equal vertex
// counts; vertices are paired by index.
func (k *CSG) Loft(a, b *Polyline) (*Wall, error) {
	pa, va, err := k.fitProfile(a)
	if err != nil {
		return nil, fmt.Errorf("Loft: section a: %w", err)
	}
	pb, vb, err := k.fitProfile(b)
	if err != nil {
		return nil, fmt.Errorf("Loft: section b: %w", err)
	}
	if len(va) != len(vb) {
		return nil, fmt.Errorf("Loft: %d vs %d vertices: %w", len(va), len(vb), ErrLoftMismatch)
	}
	if abs(r3.Dot(pa.ZAxis, pb.ZAxis)) < 1-1e-6 {
		return nil, fmt.Errorf("Loft: sections not parallel: %w", ErrLoftMismatch)
	}
	_, _, span := pa.Local(vb[0])
	if abs(span) <= k.tol {
		return nil, fmt.Errorf("Loft: coplanar sections: %w", ErrLoftMismatch)
	}
	loft := &straightLoft{
		plane: pa,
		a:     localPolygon(pa, va)[0],
		b:     localPolygon(pa, vb)[0],
		span:  span,
	}
	box := a.BoundingBox().Union(b.BoundingBox())
	loft.min, loft.max = toCoord(box.Min), toCoord(box.Max)
	return &Wall{Kind: WallLoft, Ends: [2]*Polyline{a.Clone(), b.Clone()}, body: loft}, nil
}

// Sweep implements Kernel. The profile is expressed in the perpendicular
// frame at the rail start and re-placed at every rail vertex; each rail
// segment contributes one straight prism.
func (k *CSG) Sweep(rail, profile *Polyline) (*Wall, error) {
	pts := dedupe(append([]r3.Vec(nil), rail.Points...), k.tol)
	if len(pts) < 2 {
		return nil, fmt.Errorf("Sweep: %d distinct rail points: %w", len(pts), ErrShortRail)
	}
	if _, _, err := k.fitProfile(profile); err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	start := perpendicularFrame(pts[0], r3.Sub(pts[1], pts[0]))
	verts := profile.vertices(k.tol)
	uv := make([][2]float64, len(verts))
	for i, p := range verts {
		u, v, _ := start.Local(p)
		uv[i] = [2]float64{u, v}
	}
	place := func(fr Plane) []r3.Vec {
		out := make([]r3.Vec, len(uv))
		for i, c := range uv {
			out[i] = fr.PointAt(c[0], c[1])
		}
		return out
	}

	parts := make(model3d.JoinedSolid, 0, len(pts)-1)
	var last Plane
	for i := 0; i+1 < len(pts); i++ {
		dir := r3.Sub(pts[i+1], pts[i])
		fr := perpendicularFrame(pts[i], dir)
		parts = append(parts, newPrism(fr, place(fr), dir))
		last = perpendicularFrame(pts[i+1], dir)
	}
	var body Solid = parts
	if len(parts) == 1 {
		body = parts[0]
	}
	return &Wall{
		Kind: WallSweep,
		Ends: [2]*Polyline{profile.Clone(), ClosedPolyline(place(last)...)},
		body: body,
	}, nil
}

// Join implements Kernel. Every wall end must be matched by exactly one cap
// whose loop coincides with it within tolerance, and every cap must be used.
func (k *CSG) Join(pieces ...Piece) (Solid, error) {
	var walls []*Wall
	var caps []*Cap
	for i, p := range pieces {
		switch v := p.(type) {
		case *Wall:
			if v == nil {
				return nil, fmt.Errorf("Join: nil wall at %d: %w", i, ErrOpenShell)
			}
			walls = append(walls, v)
		case *Cap:
			if v == nil {
				return nil, fmt.Errorf("Join: nil cap at %d: %w", i, ErrOpenShell)
			}
			caps = append(caps, v)
		default:
			return nil, fmt.Errorf("Join: unsupported piece at %d: %w", i, ErrOpenShell)
		}
	}
	if len(walls) == 0 {
		return nil, fmt.Errorf("Join: no side walls: %w", ErrOpenShell)
	}
	used := make([]bool, len(caps))
	for wi, w := range walls {
		for e, loop := range w.Ends {
			matched := false
			for ci, c := range caps {
				if !used[ci] && k.loopsCoincide(c.Loop, loop) {
					used[ci], matched = true, true
					break
				}
			}
			if !matched {
				return nil, fmt.Errorf("Join: %s wall %d end %d left open: %w", w.Kind, wi, e, ErrOpenShell)
			}
		}
	}
	for ci, u := range used {
		if !u {
			return nil, fmt.Errorf("Join: cap %d matches no wall: %w", ci, ErrOpenShell)
		}
	}
	if len(walls) == 1 {
		return walls[0].body, nil
	}
	bodies := make(model3d.JoinedSolid, len(walls))
	for i, w := range walls {
		bodies[i] = w.body
	}
	return bodies, nil
}

// Union implements Kernel.
func (k *CSG) Union(solids ...Solid) (Solid, error) {
	if len(solids) == 0 {
		return nil, fmt.Errorf("Union: %w", ErrEmptyUnion)
	}
	for i, s := range solids {
		if s == nil {
			return nil, fmt.Errorf("Union: operand %d: %w", i, ErrNilSolid)
		}
	}
	if len(solids) == 1 {
		return solids[0], nil
	}
	return append(model3d.JoinedSolid(nil), solids...), nil
}

// Difference implements Kernel.
//
// Outcomes:
//   - no removal overlaps a's bounds → []Solid{a} (a untouched);
//   - every sampled interior point of a lies in a removal → zero pieces;
//   - otherwise one SubtractedSolid.
func (k *CSG) Difference(a Solid, removals ...Solid) ([]Solid, error) {
	if a == nil {
		return nil, fmt.Errorf("Difference: minuend: %w", ErrNilSolid)
	}
	box := SolidBox(a)
	var hits model3d.JoinedSolid
	for i, r := range removals {
		if r == nil {
			return nil, fmt.Errorf("Difference: removal %d: %w", i, ErrNilSolid)
		}
		if box.Overlaps(SolidBox(r), 0) {
			hits = append(hits, r)
		}
	}
	if len(hits) == 0 {
		return []Solid{a}, nil
	}
	var neg Solid = hits
	if len(hits) == 1 {
		neg = hits[0]
	}
	if k.consumed(a, neg, box) {
		return nil, nil
	}
	return []Solid{&model3d.SubtractedSolid{Positive: a, Negative: neg}}, nil
}

// consumed samples a grid over box and reports whether every sample inside
// a is also inside neg. A solid with no interior samples is never consumed.
func (k *CSG) consumed(a, neg Solid, box Box) bool {
	n := k.density
	size := box.Size()
	seen := false
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			for l := 0; l <= n; l++ {
				p := model3d.XYZ(
					box.Min.X+size.X*(float64(i)+0.5)/float64(n+1),
					box.Min.Y+size.Y*(float64(j)+0.5)/float64(n+1),
					box.Min.Z+size.Z*(float64(l)+0.5)/float64(n+1),
				)
				if !a.Contains(p) {
					continue
				}
				seen = true
				if !neg.Contains(p) {
					return false
				}
			}
		}
	}
	return seen
}

// ProfileDifference implements Kernel.
func (k *CSG) ProfileDifference(a, b *Polyline) ([]*Polyline, error) {
	return profileDifference(a, b, k.tol)
}

// fitProfile validates a closed planar profile and returns its plane and its
// vertices without the closing duplicate.
func (k *CSG) fitProfile(c *Polyline) (Plane, []r3.Vec, error) {
	if c == nil || !c.IsClosed(k.tol) {
		return Plane{}, nil, ErrOpenProfile
	}
	verts := dedupe(append([]r3.Vec(nil), c.vertices(k.tol)...), k.tol*1e-3)
	if len(verts) < 3 {
		return Plane{}, nil, fmt.Errorf("%d distinct vertices: %w", len(verts), ErrZeroArea)
	}

	// Newell normal and vertex average.
	var normal, center r3.Vec
	for i, p := range verts {
		q := verts[(i+1)%len(verts)]
		normal.X += (p.Y - q.Y) * (p.Z + q.Z)
		normal.Y += (p.Z - q.Z) * (p.X + q.X)
		normal.Z += (p.X - q.X) * (p.Y + q.Y)
		center = r3.Add(center, p)
	}
	center = r3.Scale(1/float64(len(verts)), center)
	uz, ok := Unit(normal)
	if !ok {
		return Plane{}, nil, ErrZeroArea
	}
	var ux r3.Vec
	for i := range verts {
		d := r3.Sub(verts[(i+1)%len(verts)], verts[i])
		if u, ok := Unit(r3.Sub(d, r3.Scale(r3.Dot(d, uz), uz))); ok {
			ux = u
			break
		}
	}
	pl := Plane{Origin: center, XAxis: ux, YAxis: r3.Cross(uz, ux), ZAxis: uz}

	for _, p := range verts {
		if _, _, w := pl.Local(p); abs(w) > k.tol {
			return Plane{}, nil, fmt.Errorf("vertex off plane by %g: %w", w, ErrNonPlanar)
		}
	}
	poly := localPolygon(pl, verts)
	if abs(poly.Area()) <= k.tol*k.tol {
		return Plane{}, nil, ErrZeroArea
	}
	if selfIntersects(poly[0]) {
		return Plane{}, nil, ErrSelfIntersecting
	}
	return pl, verts, nil
}

// loopsCoincide reports whether every vertex of each loop lies within
// tolerance of a vertex of the other.
func (k *CSG) loopsCoincide(a, b *Polyline) bool {
	va, vb := a.vertices(k.tol), b.vertices(k.tol)
	covered := func(xs, ys []r3.Vec) bool {
		for _, x := range xs {
			hit := false
			for _, y := range ys {
				if Distance(x, y) <= k.tol {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		}
		return true
	}
	return covered(va, vb) && covered(vb, va)
}
