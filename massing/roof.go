// SPDX-License-Identifier: MIT

package massing

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
)

// Roof constants.
const (
	RoofElevation  = 9.0
	RoofThickness  = 7.0
	roofScale      = 1.25
	longAxisExtend = 10.0
	longAxisParts  = 8
	// MinStations is the fewest stations a roof with a long axis needs.
	MinStations = 3
	// closeEps is the gap above which a flank end is pulled onto the boundary.
	closeEps = 1e-9
)

// GenerateRoof closes the region between the two innermost tiers against the
// boundary, builds a slab from it and derives the short and long roof axes.
func GenerateRoof(m *Manifest, cfg Config) error {
	const stage = "roof"
	k := cfg.kernel
	tol := k.Tolerance()

	if len(m.Stations) < MinStations {
		return stageErr(stage, "path", -1, fmt.Errorf("%d stations: %w", len(m.Stations), ErrTooFewStations))
	}
	leftPts, rightPts := m.LeftFlanks[0].Points, m.RightFlanks[0].Points
	leftCrv, rightCrv := kernel.NewPolyline(leftPts...), kernel.NewPolyline(rightPts...)

	curves := []*kernel.Polyline{leftCrv, rightCrv, kernel.Line(leftCrv.Start(), rightCrv.Start())}
	leftEnd, lc := pullToBoundary(leftCrv.End(), m.Boundary)
	rightEnd, rc := pullToBoundary(rightCrv.End(), m.Boundary)
	if lc != nil {
		curves = append(curves, lc)
	}
	if rc != nil {
		curves = append(curves, rc)
	}
	curves = append(curves, kernel.Line(leftEnd, rightEnd))

	profiles := kernel.JoinCurves(curves, tol)
	slabs := make([]kernel.Solid, 0, len(profiles))
	m.RoofProfiles = m.RoofProfiles[:0]
	for i, p := range profiles {
		p = p.Scale(p.BoundingBox().Center(), roofScale)
		slab, err := kernel.ExtrudeCapped(k, p, r3.Vec{Z: RoofThickness})
		if err != nil {
			return stageErr(stage, "roof", i, err)
		}
		m.RoofProfiles = append(m.RoofProfiles, p)
		slabs = append(slabs, slab)
	}
	roof, err := k.Union(slabs...)
	if err != nil {
		return stageErr(stage, "roof", -1, err)
	}
	m.RoofMass = kernel.Translate(roof, r3.Vec{Z: RoofElevation})
	m.SculptedRoofMass = m.RoofMass

	// Axes: one short axis per pair of adjacent stations, right to left.
	n := len(rightPts)
	if len(leftPts) < n {
		n = len(leftPts)
	}
	m.ShortAxes = make([]*kernel.Polyline, 0, n-1)
	mids := make([]r3.Vec, 0, n-1)
	for i := 0; i+1 < n; i++ {
		ra := kernel.Midpoint(rightPts[i], rightPts[i+1])
		la := kernel.Midpoint(leftPts[i], leftPts[i+1])
		m.ShortAxes = append(m.ShortAxes, kernel.Line(ra, la))
		mids = append(mids, kernel.Midpoint(ra, la))
	}
	long := kernel.NewPolyline(mids...).Extend(longAxisExtend)
	m.LongAxis = kernel.NewPolyline(long.DivideByCount(longAxisParts, true)...).Translate(r3.Vec{Z: RoofElevation})

	cfg.log.Debug("roof generated",
		zap.Int("profiles", len(profiles)),
		zap.Int("short_axes", len(m.ShortAxes)),
		zap.Float64("long_axis_length", m.LongAxis.Length()),
	)
	return nil
}

// pullToBoundary returns the closest boundary point to p and the correction
// segment reaching it, or p itself and nil when p already lies on the boundary.
func pullToBoundary(p r3.Vec, boundary *kernel.Polyline) (r3.Vec, *kernel.Polyline) {
	q, _ := boundary.ClosestPoint(p)
	if kernel.Distance(p, q) <= closeEps {
		return p, nil
	}
	return q, kernel.Line(p, q)
}

// CollectMasses gathers the roof and every cell volume.
func CollectMasses(m *Manifest, cfg Config) error {
	m.AllMasses = make([]kernel.Solid, 0, len(m.Cells)+1)
	m.AllMasses = append(m.AllMasses, m.RoofMass)
	for _, c := range m.Cells {
		m.AllMasses = append(m.AllMasses, c.Volume)
	}
	cfg.log.Debug("masses collected", zap.Int("masses", len(m.AllMasses)))
	return nil
}
