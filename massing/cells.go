// SPDX-License-Identifier: MIT

package massing

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/noise"
)

// Cell height interval.
const (
	cellHeightMin = 9.0
	cellHeightMax = 13.0
)

// GenerateCells builds one cell for every pair of adjacent stations between
// every pair of adjacent tiers, left side first, outermost tiers first. One
// stream, opened at stage start, draws every cell height.
func GenerateCells(m *Manifest, cfg Config) error {
	r := noise.NewStream(cfg.seed)
	m.Cells = m.Cells[:0]
	for _, flanks := range [][]Flank{m.LeftFlanks, m.RightFlanks} {
		for i := len(flanks) - 1; i > 0; i-- {
			outer, inner := flanks[i], flanks[i-1]
			for j := 0; j+1 < len(outer.Points); j++ {
				cell := MarketCell{
					Index:   len(m.Cells),
					Side:    outer.Side,
					Tier:    i,
					Station: j,
					Height:  noise.Value(r, cellHeightMin, cellHeightMax, m.SegmentNoise),
				}
				if err := buildCell(&cell, inner.Points[j+1], outer.Points[j+1], outer.Points[j], inner.Points[j], m.Path, cfg.kernel); err != nil {
					return stageErr("cells", "cell", cell.Index, err)
				}
				m.Cells = append(m.Cells, cell)
			}
		}
	}
	cfg.log.Debug("cells generated", zap.Int("cells", len(m.Cells)))
	return nil
}

// buildCell lays out the footprint A-B-C-D, its edges and plane, and extrudes
// the closed volume. A and D lie on the inner tier; B and C on the outer.
func buildCell(c *MarketCell, a, b, cc, d r3.Vec, path *kernel.Polyline, k kernel.Kernel) error {
	tol := k.Tolerance()
	c.Footprint = kernel.ClosedPolyline(a, b, cc, d)
	c.Back = kernel.Line(cc, b)
	c.Front = kernel.Line(d, a)
	c.Right = kernel.Line(cc, d)
	c.Left = kernel.Line(b, a)

	ctr := kernel.CentroidXY(c.Footprint, tol)
	onPath, _ := path.ClosestPoint(ctr)
	toPath := r3.Sub(onPath, ctr)
	toPath.Z = 0
	rotA := kernel.RotateZ(toPath, math.Pi/2)
	rotB := kernel.RotateZ(toPath, -math.Pi/2)
	toNext := rotB
	if kernel.Distance(r3.Add(ctr, rotA), b) < kernel.Distance(r3.Add(ctr, rotB), b) {
		toNext = rotA
	}
	pl, err := kernel.NewPlane(ctr, toNext, toPath)
	if err != nil {
		return fmt.Errorf("cell plane: %w", err)
	}
	c.Plane = pl

	vol, err := kernel.ExtrudeCapped(k, c.Footprint, r3.Vec{Z: c.Height})
	if err != nil {
		return fmt.Errorf("cell volume: %w", err)
	}
	c.Volume = vol
	c.Sculpted = vol
	return nil
}
