// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/motley/kernel"
)

// DriftSamples is the number of equal parts the path is divided into when
// measuring drift; the division yields DriftSamples−1 interior samples.
const DriftSamples = 10

// distinctTol is the distance below which consecutive vertices are merged.
const distinctTol = 1e-9

// ProfileStats describes a cell cross-section profile.
type ProfileStats struct {
	Width             float64 // plan extent along world X
	Depth             float64 // plan extent along world Y
	Center            r3.Vec  // plan bounding-box centre
	SegmentVolatility float64
	CornerVolatility  float64
}

// SegmentVolatility returns the population standard deviation of the segment
// lengths of c.
func SegmentVolatility(c *kernel.Polyline) (float64, error) {
	pts, err := distinct(c, "SegmentVolatility")
	if err != nil {
		return 0, err
	}
	lengths := make([]float64, 0, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		lengths = append(lengths, kernel.Distance(pts[i], pts[i+1]))
	}
	return stat.PopStdDev(lengths, nil), nil
}

// CornerAngleVolatility returns the population standard deviation, in degrees,
// of the angles between consecutive segments at each corner. Closed curves
// contribute every vertex (the seam included); open curves only interior
// vertices. Curves without corners measure 0.
func CornerAngleVolatility(c *kernel.Polyline) (float64, error) {
	pts, err := distinct(c, "CornerAngleVolatility")
	if err != nil {
		return 0, err
	}
	closed := c.IsClosed(distinctTol)
	if closed {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	var angles []float64
	corner := func(prev, at, next r3.Vec) {
		angles = append(angles, kernel.VectorAngle(r3.Sub(prev, at), r3.Sub(next, at))*180/math.Pi)
	}
	if closed {
		for i := 0; i < n; i++ {
			corner(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
	} else {
		for i := 1; i+1 < n; i++ {
			corner(pts[i-1], pts[i], pts[i+1])
		}
	}
	if len(angles) == 0 {
		return 0, nil
	}
	return stat.PopStdDev(angles, nil), nil
}

// PathDrift returns the mean distance between the interior division points of
// path and their closest points on the segment joining its start and end.
func PathDrift(path *kernel.Polyline) (float64, error) {
	if _, err := distinct(path, "PathDrift"); err != nil {
		return 0, err
	}
	base := kernel.Line(path.Start(), path.End())
	samples := path.DivideByCount(DriftSamples, false)
	dists := make([]float64, len(samples))
	for i, p := range samples {
		q, _ := base.ClosestPoint(p)
		dists[i] = kernel.Distance(p, q)
	}
	return stat.Mean(dists, nil), nil
}

// Profile measures a cell cross-section: its plan bounding box and both
// volatilities.
func Profile(c *kernel.Polyline) (ProfileStats, error) {
	seg, err := SegmentVolatility(c)
	if err != nil {
		return ProfileStats{}, err
	}
	corner, err := CornerAngleVolatility(c)
	if err != nil {
		return ProfileStats{}, err
	}
	xs := make([]float64, c.Len())
	ys := make([]float64, c.Len())
	for i, p := range c.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	box := c.BoundingBox()
	return ProfileStats{
		Width:             floats.Max(xs) - floats.Min(xs),
		Depth:             floats.Max(ys) - floats.Min(ys),
		Center:            box.Center(),
		SegmentVolatility: seg,
		CornerVolatility:  corner,
	}, nil
}

// distinct returns the points of c with consecutive duplicates removed, or
// ErrDegenerateCurve when fewer than two remain.
func distinct(c *kernel.Polyline, op string) ([]r3.Vec, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: nil curve: %w", op, ErrDegenerateCurve)
	}
	pts := make([]r3.Vec, 0, c.Len())
	for _, p := range c.Points {
		if len(pts) == 0 || kernel.Distance(p, pts[len(pts)-1]) > distinctTol {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("%s: %d distinct points: %w", op, len(pts), ErrDegenerateCurve)
	}
	return pts, nil
}
