// SPDX-License-Identifier: MIT

package massing

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/motley/measure"
	"github.com/katalvlaran/motley/noise"
)

// BoundsHeight is the top of the site volume.
const BoundsHeight = 100.0

// ParseInputs measures the three input curves and derives the noise ranges.
func ParseInputs(m *Manifest, cfg Config) error {
	const stage = "parse"
	tol := cfg.kernel.Tolerance()

	switch {
	case m.Boundary == nil:
		return stageErr(stage, "boundary", -1, ErrNilCurve)
	case m.CellProfile == nil:
		return stageErr(stage, "cell", -1, ErrNilCurve)
	case m.Path == nil:
		return stageErr(stage, "path", -1, ErrNilCurve)
	}

	// Boundary: closed site outline and its volume box.
	if !m.Boundary.IsClosed(tol) {
		return stageErr(stage, "boundary", -1, ErrOpenBoundary)
	}
	box := m.Boundary.BoundingBox()
	box.Max.Z = BoundsHeight
	m.VolumeBounds = box

	// Cell profile: plan size and irregularity.
	prof, err := measure.Profile(m.CellProfile)
	if err != nil {
		return stageErr(stage, "cell", -1, err)
	}
	m.CellWidth, m.CellDepth, m.CellCenter = prof.Width, prof.Depth, prof.Center
	m.SegmentVolatility, m.CornerVolatility = prof.SegmentVolatility, prof.CornerVolatility
	m.SegmentNoise = noise.FromVolatility(prof.SegmentVolatility, noise.SegmentSource)
	m.CornerNoise = noise.FromVolatility(prof.CornerVolatility, noise.CornerSource)

	// Path: drift from its baseline.
	drift, err := measure.PathDrift(m.Path)
	if err != nil {
		return stageErr(stage, "path", -1, err)
	}
	m.PathDrift = drift
	m.DriftNoise = noise.FromVolatility(drift, noise.DriftSource)

	cfg.log.Debug("inputs parsed",
		zap.Float64("cell_width", m.CellWidth),
		zap.Float64("segment_noise", m.SegmentNoise.Max),
		zap.Float64("corner_noise", m.CornerNoise.Max),
		zap.Float64("drift_noise", m.DriftNoise.Max),
	)
	return nil
}
