// SPDX-License-Identifier: MIT

package massing

import (
	"github.com/katalvlaran/motley/kernel"
)

// Summary is a plain digest of a manifest: no solids, no pointers, safe to
// compare with == on its scalar parts and to serialise.
type Summary struct {
	JobID string `json:"job_id" yaml:"job_id"`

	CellWidth         float64 `json:"cell_width" yaml:"cell_width"`
	CellDepth         float64 `json:"cell_depth" yaml:"cell_depth"`
	SegmentVolatility float64 `json:"segment_volatility" yaml:"segment_volatility"`
	CornerVolatility  float64 `json:"corner_volatility" yaml:"corner_volatility"`
	PathDrift         float64 `json:"path_drift" yaml:"path_drift"`
	SegmentNoise      float64 `json:"segment_noise" yaml:"segment_noise"`
	CornerNoise       float64 `json:"corner_noise" yaml:"corner_noise"`
	DriftNoise        float64 `json:"drift_noise" yaml:"drift_noise"`

	Stations         []float64 `json:"stations" yaml:"stations"`
	TiersPerSide     int       `json:"tiers_per_side" yaml:"tiers_per_side"`
	Cells            int       `json:"cells" yaml:"cells"`
	CellHeights      []float64 `json:"cell_heights,omitempty" yaml:"cell_heights,omitempty"`
	RoofProfiles     int       `json:"roof_profiles" yaml:"roof_profiles"`
	ShortAxes        int       `json:"short_axes" yaml:"short_axes"`
	LongAxisLength   float64   `json:"long_axis_length" yaml:"long_axis_length"`
	Masses           int       `json:"masses" yaml:"masses"`
	Skylights        int       `json:"skylights" yaml:"skylights"`
	ShortArches      int       `json:"short_arches" yaml:"short_arches"`
	CarvesApplied    int       `json:"carves_applied" yaml:"carves_applied"`
	CarvesSkipped    int       `json:"carves_skipped" yaml:"carves_skipped"`
	RoofCarveApplied []bool    `json:"roof_carves" yaml:"roof_carves"`
}

// Summary digests m. It is valid on any manifest, including one produced by
// a stage prefix.
func (m *Manifest) Summary() Summary {
	s := Summary{
		JobID:             m.JobID.String(),
		CellWidth:         m.CellWidth,
		CellDepth:         m.CellDepth,
		SegmentVolatility: m.SegmentVolatility,
		CornerVolatility:  m.CornerVolatility,
		PathDrift:         m.PathDrift,
		SegmentNoise:      m.SegmentNoise.Max,
		CornerNoise:       m.CornerNoise.Max,
		DriftNoise:        m.DriftNoise.Max,
		TiersPerSide:      m.TiersPerSide(),
		Cells:             len(m.Cells),
		RoofProfiles:      len(m.RoofProfiles),
		ShortAxes:         len(m.ShortAxes),
		Masses:            len(m.AllMasses),
		Skylights:         len(m.SkylightRemovals),
		ShortArches:       len(m.ShortAxisRemovals),
	}
	s.Stations = make([]float64, len(m.Stations))
	for i, st := range m.Stations {
		s.Stations[i] = st.Distance
	}
	if len(m.Cells) > 0 {
		s.CellHeights = make([]float64, len(m.Cells))
		for i, c := range m.Cells {
			s.CellHeights[i] = c.Height
		}
	}
	if m.LongAxis != nil {
		s.LongAxisLength = m.LongAxis.Length()
	}
	for _, c := range m.Carves {
		if c.Applied {
			s.CarvesApplied++
		} else {
			s.CarvesSkipped++
		}
		if c.Target == "roof" {
			s.RoofCarveApplied = append(s.RoofCarveApplied, c.Applied)
		}
	}
	return s
}

// Solids returns every final solid: the sculpted roof first, then each
// sculpted cell in cell order. Nil solids are left out.
func (m *Manifest) Solids() []kernel.Solid {
	out := make([]kernel.Solid, 0, len(m.Cells)+1)
	if m.SculptedRoofMass != nil {
		out = append(out, m.SculptedRoofMass)
	}
	for _, c := range m.Cells {
		if c.Sculpted != nil {
			out = append(out, c.Sculpted)
		}
	}
	return out
}
