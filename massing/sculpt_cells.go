// SPDX-License-Identifier: MIT

package massing

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/motif"
	"github.com/katalvlaran/motley/noise"
)

// Cell carving constants.
const (
	entranceHeight     = 8.5
	entrancePinch      = 7.0
	entranceShallow    = 1.25
	entranceDrop       = 0.5
	noiseGate          = 0.1 // noise above which optional variations apply
	interiorSideInset  = 1.25
	interiorEndInset   = 2.0
	partitionThickness = 0.9
	primaryHeight      = 8.5
	removalDrop        = 0.25
)

// SculptEntrances carves a pointed-arch recess behind the front edge of every
// cell. Widths, depths and shifts come from the drift noise on one stream
// opened at stage start.
func SculptEntrances(m *Manifest, cfg Config) error {
	const stage = "entrances"
	k := cfg.kernel
	r := noise.NewStream(cfg.seed)
	deep := len(m.LeftFlanks) > 2

	for i := range m.Cells {
		cell := &m.Cells[i]
		edge := cell.Front
		pl, err := kernel.NewPlane(edge.PointAtNormalizedLength(0.5), r3.Sub(edge.End(), edge.Start()), kernel.UnitZ)
		if err != nil {
			return stageErr(stage, "cell", cell.Index, err)
		}
		prof, err := motif.Gothic(pl, noise.Value(r, 6, 8, m.DriftNoise), entranceHeight, entrancePinch)
		if err != nil {
			return stageErr(stage, "cell", cell.Index, err)
		}
		depth := entranceShallow
		if deep {
			depth = noise.Value(r, 8, 25, m.DriftNoise)
		}
		recess, err := kernel.ExtrudeCapped(k, prof, r3.Scale(-depth, cell.Plane.YAxis))
		if err != nil {
			return stageErr(stage, "cell", cell.Index, err)
		}
		shift := r3.Vec{Z: -entranceDrop}
		if m.DriftNoise.Max > noiseGate {
			shift = r3.Add(shift, r3.Scale(noise.Value(r, 0, 7, m.DriftNoise), pl.XAxis))
		}
		cell.EntranceRemoval = kernel.Translate(recess, shift)
		carveCell(m, cfg, stage, i, cell.EntranceRemoval)
	}
	cfg.log.Debug("entrances carved", zap.Int("cells", len(m.Cells)), zap.Bool("deep", deep))
	return nil
}

// SculptInteriors derives each cell's interior and partition profiles, clips
// every interior against every partition (its own included, once more at the
// end), and carves all interior removals out of every cell.
func SculptInteriors(m *Manifest, cfg Config) error {
	const stage = "interiors"
	k := cfg.kernel
	r := noise.NewStream(cfg.seed)

	for i := range m.Cells {
		cell := &m.Cells[i]
		interior, partition, err := interiorProfiles(cell)
		if err != nil {
			return stageErr(stage, "cell", cell.Index, err)
		}
		if m.CornerNoise.Max > noiseGate {
			angle := noise.Value(r, -0.2, 0.2, m.CornerNoise)
			partition = partition.Rotate(angle, kernel.UnitZ, partition.BoundingBox().Center())
		}
		cell.InteriorProfile, cell.PartitionProfile = interior, partition
	}

	for i := range m.Cells {
		cell := &m.Cells[i]
		for j := range m.Cells {
			cell.InteriorProfile = clipProfile(k, cell.InteriorProfile, m.Cells[j].PartitionProfile)
		}
		cell.InteriorProfile = clipProfile(k, cell.InteriorProfile, cell.PartitionProfile)
		center := cell.InteriorProfile.BoundingBox().Center()

		primary, err := kernel.ExtrudeCapped(k, cell.InteriorProfile, r3.Vec{Z: primaryHeight})
		if err != nil {
			return stageErr(stage, "cell", cell.Index, err)
		}
		cell.PrimaryRemoval = kernel.Translate(primary, r3.Vec{Z: -removalDrop})

		second := cell.InteriorProfile.Scale(center, noise.Value(r, 1, 1.2, m.SegmentNoise))
		if m.CornerNoise.Max > noiseGate {
			second = second.Rotate(noise.Value(r, -0.25, 0.25, m.CornerNoise), kernel.UnitZ, center)
		}
		height := noise.Value(r, 5, 9, m.DriftNoise)
		secondary, err := kernel.ExtrudeCapped(k, second, r3.Vec{Z: height})
		if err != nil {
			return stageErr(stage, "cell", cell.Index, err)
		}
		push := r3.Scale(-noise.Value(r, 0, 5, m.SegmentNoise), cell.Plane.YAxis)
		cell.SecondaryRemoval = kernel.Translate(secondary, r3.Add(r3.Vec{Z: -removalDrop}, push))
	}

	removals := make([]kernel.Solid, 0, 2*len(m.Cells))
	for _, c := range m.Cells {
		removals = append(removals, c.PrimaryRemoval)
	}
	for _, c := range m.Cells {
		removals = append(removals, c.SecondaryRemoval)
	}
	for i := range m.Cells {
		carveCell(m, cfg, stage, i, removals...)
	}
	cfg.log.Debug("interiors carved", zap.Int("cells", len(m.Cells)), zap.Int("removals", len(removals)))
	return nil
}

// interiorProfiles returns the inset interior footprint and the partition
// strip along the right edge.
func interiorProfiles(c *MarketCell) (*kernel.Polyline, *kernel.Polyline, error) {
	a, b := c.Left.End(), c.Left.Start()
	cc, d := c.Right.Start(), c.Right.End()
	uR, okR := kernel.Unit(r3.Sub(d, cc))
	uL, okL := kernel.Unit(r3.Sub(a, b))
	if !okR || !okL {
		return nil, nil, fmt.Errorf("interior: %w", kernel.ErrDegenerateCurve)
	}
	x := r3.Scale(interiorSideInset, c.Plane.XAxis)
	inset := func(p, u r3.Vec, along float64, side r3.Vec) r3.Vec {
		return r3.Add(r3.Add(p, r3.Scale(along, u)), side)
	}
	interior := kernel.ClosedPolyline(
		inset(cc, uR, interiorEndInset, x),
		inset(d, uR, -interiorEndInset, x),
		inset(a, uL, -interiorEndInset, r3.Scale(-1, x)),
		inset(b, uL, interiorEndInset, r3.Scale(-1, x)),
	)
	half := r3.Scale(partitionThickness/2, c.Plane.XAxis)
	partition := kernel.ClosedPolyline(
		r3.Add(cc, half), r3.Sub(cc, half), r3.Sub(d, half), r3.Add(d, half),
	)
	return interior, partition, nil
}

// clipProfile subtracts cut from p and keeps the largest remaining ring. The
// profile is kept unchanged when the subtraction fails or leaves nothing.
func clipProfile(k kernel.Kernel, p, cut *kernel.Polyline) *kernel.Polyline {
	rings, err := k.ProfileDifference(p, cut)
	if err != nil || len(rings) == 0 {
		return p
	}
	return rings[0]
}

// carveCell subtracts removals from one cell's sculpted solid.
func carveCell(m *Manifest, cfg Config, pass string, i int, removals ...kernel.Solid) {
	cell := &m.Cells[i]
	c := kernel.SafeDifference(cfg.kernel, cell.Sculpted, removals...)
	cell.Sculpted = c.Solid
	m.record(pass, "cell", cell.Index, len(removals), c)
	if c.Err != nil {
		cfg.log.Debug("cell carve skipped", zap.String("pass", pass), zap.Int("cell", cell.Index), zap.Error(c.Err))
	}
}
