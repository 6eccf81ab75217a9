// SPDX-License-Identifier: MIT

package massing

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/motley/noise"
)

// SamplePath places stations along the path, one per cell width. Each offset
// carries a jitter drawn in whole hundredths from the segment noise range and
// truncated to whole units, scaled by twice the segment volatility. The first
// offset past the path end stops sampling.
func SamplePath(m *Manifest, cfg Config) error {
	const stage = "sample"
	length := m.Path.Length()
	if !(m.CellWidth > 0) {
		return stageErr(stage, "path", -1, ErrZeroCellWidth)
	}
	if !(length > 0) {
		return stageErr(stage, "path", -1, ErrTooFewStations)
	}

	r := noise.NewStream(cfg.seed)
	bays := int(math.RoundToEven(length / m.CellWidth))
	lo := int(math.RoundToEven(m.SegmentNoise.Min * 100))
	hi := int(math.RoundToEven(m.SegmentNoise.Max * 100))

	offsets := make([]float64, 0, bays+1)
	for i := 0; i <= bays; i++ {
		q := lo
		if hi > lo {
			q += r.Intn(hi - lo)
		}
		jitter := float64(q/100) * 2 * m.SegmentVolatility
		s := m.CellWidth*float64(i) + jitter
		if s > length {
			break
		}
		offsets = append(offsets, s)
	}
	if cfg.normalize && len(offsets) > 1 {
		offsets = noise.RemapAll(offsets, noise.Interval{Lo: 0, Hi: length})
	}
	norm := noise.RemapAll(offsets, noise.Unit)

	m.Stations = make([]PathStation, len(offsets))
	for i, s := range offsets {
		m.Stations[i] = PathStation{
			Index:      i,
			Distance:   s,
			Normalized: norm[i],
			Point:      m.Path.PointAtLength(s),
			Frame:      m.Path.FrameAtLength(s),
		}
	}

	cfg.log.Debug("path sampled",
		zap.Int("bays", bays),
		zap.Int("stations", len(m.Stations)),
		zap.Float64("path_length", length),
	)
	return nil
}
