// SPDX-License-Identifier: MIT

package massing

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/noise"
)

// Flank layout constants.
const (
	regionScale     = 1.25 // boundary enlargement before the region split
	dividerOverhang = 50.0 // path extension on both ends for the split
	tierStep        = 0.3  // drift noise per extra tier
	tierContraction = 0.4  // fraction of stations dropped per tier beyond 1
	firstTierBase   = 6.5
	outerTierBase   = 12.0
	outerTierInset  = 7.0
	flankNoiseGain  = 4.0
)

// GenerateFlanks splits the enlarged site into left and right regions along
// the path, resolves each station's left and right directions and builds the
// offset tiers on both sides.
func GenerateFlanks(m *Manifest, cfg Config) error {
	const stage = "flanks"
	tol := cfg.kernel.Tolerance()

	left, right, err := splitRegions(m.Boundary, m.Path, tol)
	if err != nil {
		return stageErr(stage, "path", -1, err)
	}
	m.LeftRegion, m.RightRegion = left, right

	// Side directions: tested once per station, reused by every tier.
	m.LeftVectors = make([]r3.Vec, len(m.Stations))
	m.RightVectors = make([]r3.Vec, len(m.Stations))
	for j, st := range m.Stations {
		a := st.Frame.YAxis
		b := r3.Scale(-1, a)
		if kernel.ContainsXY(left, r3.Add(st.Frame.Origin, a), tol) {
			m.LeftVectors[j], m.RightVectors[j] = a, b
		} else {
			m.LeftVectors[j], m.RightVectors[j] = b, a
		}
	}

	tiers := TierCount(m.DriftNoise)
	r := noise.NewStream(cfg.seed)
	m.LeftFlanks = buildFlanks(Left, tiers, m.Stations, m.LeftVectors, m.SegmentNoise, r)
	m.RightFlanks = buildFlanks(Right, tiers, m.Stations, m.RightVectors, m.SegmentNoise, r)

	cfg.log.Debug("flanks generated",
		zap.Int("tiers_per_side", tiers),
		zap.Int("stations", len(m.Stations)),
	)
	return nil
}

// TierCount returns the number of flank tiers on each side for a drift noise
// range: two, plus one per 0.3 of drift noise (rounded half to even).
func TierCount(drift noise.Range) int {
	return 2 + int(math.RoundToEven(drift.Max/tierStep))
}

// TierStations returns how many stations tier i of n keeps: all of them for
// tiers 0 and 1, then 40% fewer per tier (rounded half to even, never < 0).
func TierStations(i, n int) int {
	if i <= 1 {
		return n
	}
	k := int(math.RoundToEven(float64(n) * (1 - float64(i-1)*tierContraction)))
	if k < 0 {
		return 0
	}
	return k
}

// FlankOffset returns the lateral distance of tier i for a noise term.
func FlankOffset(i int, jitter float64) float64 {
	if i == 0 {
		return firstTierBase + jitter
	}
	return (outerTierBase+jitter)*float64(i+1) - outerTierInset
}

func buildFlanks(side Side, tiers int, stations []PathStation, dirs []r3.Vec, seg noise.Range, r *rand.Rand) []Flank {
	out := make([]Flank, tiers)
	for i := range out {
		n := TierStations(i, len(stations))
		pts := make([]r3.Vec, n)
		for j := 0; j < n; j++ {
			dir, _ := kernel.Unit(dirs[j])
			jitter := flankNoiseGain * r.Float64() * seg.Max
			pts[j] = r3.Add(stations[j].Frame.Origin, r3.Scale(FlankOffset(i, jitter), dir))
		}
		out[i] = Flank{Side: side, Tier: i, Points: pts, Curve: kernel.NewPolyline(pts...)}
	}
	return out
}

// splitRegions cuts the boundary, enlarged about its box centre, with the
// path extended past both ends. The half whose outer arc has the higher
// midpoint Y is the left region.
func splitRegions(boundary, path *kernel.Polyline, tol float64) (left, right *kernel.Polyline, err error) {
	outer := boundary.Scale(boundary.BoundingBox().Center(), regionScale)
	divider := path.Extend(dividerOverhang)

	hits := kernel.IntersectCurves(outer, divider, tol)
	if len(hits) < 2 {
		return nil, nil, fmt.Errorf("splitRegions: %d crossings: %w", len(hits), ErrNoDivider)
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].LengthB < hits[j].LengthB })
	first, last := hits[0], hits[len(hits)-1]

	arcA, arcB := kernel.SplitClosed(outer, first.LengthA, last.LengthA)
	cut := divider.SubCurve(first.LengthB, last.LengthB)
	if arcA.PointAtNormalizedLength(0.5).Y < arcB.PointAtNormalizedLength(0.5).Y {
		arcA, arcB = arcB, arcA
	}
	left = closeRegion(arcA, cut, tol)
	right = closeRegion(arcB, cut, tol)
	if left == nil || right == nil {
		return nil, nil, fmt.Errorf("splitRegions: open region: %w", ErrNoDivider)
	}
	return left, right, nil
}

func closeRegion(arc, cut *kernel.Polyline, tol float64) *kernel.Polyline {
	for _, c := range kernel.JoinCurves([]*kernel.Polyline{arc, cut}, tol) {
		if c.IsClosed(tol) {
			return c
		}
	}
	return nil
}
