// SPDX-License-Identifier: MIT

package massing

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/motif"
)

// Roof carving constants.
const (
	archHeight      = 15.0
	archPinch       = 9.0
	archMargin      = 2.0 // taken off each flank segment for a short arch
	archMinWidth    = 2.0
	windowHalfWidth = 1.0
	windowHalfRise  = 1.75
	windowLift      = 11.5
	windowPullback  = 10.0
	windowReach     = 50.0
	skylightHalf    = 0.75
	skylightReach   = 35.0
)

// SculptLongArch sweeps a pointed arch along the long axis and carves it out
// of the roof. The arch spans the first short axis and stands on grade.
func SculptLongArch(m *Manifest, cfg Config) error {
	const stage = "long-arch"
	k := cfg.kernel
	width := m.ShortAxes[0].Length()
	drop := r3.Vec{Z: -RoofElevation}

	startFrame := m.LongAxis.PerpendicularFrameAtLength(0)
	start, err := motif.Gothic(startFrame, width, archHeight, archPinch)
	if err != nil {
		return stageErr(stage, "roof", -1, err)
	}
	start = start.Translate(drop)
	endFrame := m.LongAxis.PerpendicularFrameAtLength(m.LongAxis.Length())
	end, err := motif.Gothic(endFrame, width, archHeight, archPinch)
	if err != nil {
		return stageErr(stage, "roof", -1, err)
	}
	end = end.Translate(drop)

	removal, err := closedSweep(k, m.LongAxis, start, end)
	if err != nil {
		return stageErr(stage, "roof", -1, err)
	}
	m.LongAxisRemoval = removal
	carveRoof(m, cfg, stage, removal)
	return nil
}

func closedSweep(k kernel.Kernel, rail, start, end *kernel.Polyline) (kernel.Solid, error) {
	wall, err := k.Sweep(rail, start)
	if err != nil {
		return nil, err
	}
	capA, err := k.CapPlanar(start)
	if err != nil {
		return nil, err
	}
	capB, err := k.CapPlanar(end)
	if err != nil {
		return nil, err
	}
	return k.Join(wall, capA, capB)
}

// SculptShortArches lofts a pointed arch across every short axis and carves
// all of them out of the roof at once. An axis is skipped when either arch
// would be narrower than 2 units or any solid operation fails.
func SculptShortArches(m *Manifest, cfg Config) error {
	const stage = "short-arches"
	k := cfg.kernel
	right, left := m.RightFlanks[0].Points, m.LeftFlanks[0].Points

	m.ShortAxisRemovals = m.ShortAxisRemovals[:0]
	for i, axis := range m.ShortAxes {
		rw := kernel.Distance(right[i], right[i+1]) - archMargin
		lw := kernel.Distance(left[i], left[i+1]) - archMargin
		removal, err := shortArch(k, axis, rw, lw)
		if err != nil {
			cfg.log.Debug("short arch skipped", zap.Int("axis", i), zap.Error(err))
			continue
		}
		m.ShortAxisRemovals = append(m.ShortAxisRemovals, removal)
	}
	carveRoof(m, cfg, stage, m.ShortAxisRemovals...)
	return nil
}

func shortArch(k kernel.Kernel, axis *kernel.Polyline, rightWidth, leftWidth float64) (kernel.Solid, error) {
	if rightWidth < archMinWidth || leftWidth < archMinWidth {
		return nil, fmt.Errorf("widths %.3g/%.3g below %g: %w", rightWidth, leftWidth, archMinWidth, motif.ErrSpanTooNarrow)
	}
	a, err := motif.Gothic(axis.PerpendicularFrameAtLength(0), rightWidth, archHeight, archPinch)
	if err != nil {
		return nil, err
	}
	b, err := motif.Gothic(axis.PerpendicularFrameAtLength(axis.Length()), leftWidth, archHeight, archPinch)
	if err != nil {
		return nil, err
	}
	wall, err := k.Loft(a, b)
	if err != nil {
		return nil, err
	}
	capA, err := k.CapPlanar(a)
	if err != nil {
		return nil, err
	}
	capB, err := k.CapPlanar(b)
	if err != nil {
		return nil, err
	}
	return k.Join(wall, capA, capB)
}

// SculptWindows carves a rectangular slot through the roof along every short
// axis.
func SculptWindows(m *Manifest, cfg Config) error {
	const stage = "windows"
	m.WindowRemovals = m.WindowRemovals[:0]
	for i, axis := range m.ShortAxes {
		frame := axis.PerpendicularFrameAtLength(0)
		prof, err := motif.Rectangle(frame, -windowHalfWidth, windowHalfWidth, -windowHalfRise, windowHalfRise)
		if err != nil {
			return stageErr(stage, "axis", i, err)
		}
		prof = prof.Translate(r3.Vec{Z: windowLift}).Translate(r3.Scale(-windowPullback, frame.ZAxis))
		slot, err := kernel.ExtrudeCapped(cfg.kernel, prof, r3.Scale(windowReach, frame.ZAxis))
		if err != nil {
			return stageErr(stage, "axis", i, err)
		}
		m.WindowRemovals = append(m.WindowRemovals, slot)
	}
	carveRoof(m, cfg, stage, m.WindowRemovals...)
	return nil
}

// SculptSkylights carves a square shaft where each short axis, lifted to roof
// level, crosses the long axis. The shaft is turned to follow its own axis.
func SculptSkylights(m *Manifest, cfg Config) error {
	const stage = "skylights"
	k := cfg.kernel
	lift := r3.Vec{Z: RoofElevation}

	m.SkylightRemovals = m.SkylightRemovals[:0]
	for i, axis := range m.ShortAxes {
		hits := kernel.IntersectCurves(axis.Translate(lift), m.LongAxis, k.Tolerance())
		if len(hits) == 0 {
			continue
		}
		pl, err := kernel.PlaneFromNormal(hits[0].Point, kernel.UnitZ)
		if err != nil {
			return stageErr(stage, "axis", i, err)
		}
		pl = pl.Rotate(kernel.VectorAngle(kernel.UnitY, r3.Sub(axis.End(), axis.Start())), kernel.UnitZ)
		prof, err := motif.Rectangle(pl, -skylightHalf, skylightHalf, -skylightHalf, skylightHalf)
		if err != nil {
			return stageErr(stage, "axis", i, err)
		}
		shaft, err := kernel.ExtrudeCapped(k, prof, r3.Vec{Z: skylightReach})
		if err != nil {
			return stageErr(stage, "axis", i, err)
		}
		m.SkylightRemovals = append(m.SkylightRemovals, shaft)
	}
	carveRoof(m, cfg, stage, m.SkylightRemovals...)
	return nil
}

// carveRoof subtracts removals from the sculpted roof, tolerating failure.
func carveRoof(m *Manifest, cfg Config, pass string, removals ...kernel.Solid) {
	c := kernel.SafeDifference(cfg.kernel, m.SculptedRoofMass, removals...)
	m.SculptedRoofMass = c.Solid
	m.record(pass, "roof", -1, len(removals), c)
	if c.Err != nil {
		cfg.log.Debug("roof carve skipped", zap.String("pass", pass), zap.Error(c.Err))
	}
	cfg.log.Debug("roof carved",
		zap.String("pass", pass),
		zap.Int("removals", len(removals)),
		zap.Bool("applied", c.Applied),
	)
}
