// SPDX-License-Identifier: MIT

package massing

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/noise"
)

// Side identifies one half of the hall.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// PathStation is a sampled position along the path with its frame: X along
// the tangent, Y the horizontal side normal, Z up.
type PathStation struct {
	Index      int
	Distance   float64 // arc length from the path start
	Normalized float64 // Distance remapped over all stations onto [0,1]
	Point      r3.Vec
	Frame      kernel.Plane
}

// Flank is one offset tier on one side. Tier 0 is nearest the path.
type Flank struct {
	Side   Side
	Tier   int
	Points []r3.Vec
	Curve  *kernel.Polyline
}

// MarketCell is one quadrilateral cell between two adjacent flank tiers.
type MarketCell struct {
	Index   int
	Side    Side
	Tier    int // outer tier bounding the cell
	Station int // index of the first of the two stations

	Footprint *kernel.Polyline
	Front     *kernel.Polyline // inner edge, nearer the path
	Back      *kernel.Polyline
	Left      *kernel.Polyline
	Right     *kernel.Polyline
	Plane     kernel.Plane // origin at the footprint centroid, Y toward the path
	Height    float64

	Volume          kernel.Solid
	EntranceRemoval kernel.Solid

	InteriorProfile  *kernel.Polyline
	PartitionProfile *kernel.Polyline
	PrimaryRemoval   kernel.Solid
	SecondaryRemoval kernel.Solid

	// Sculpted starts as Volume and is replaced by every cell carve.
	Sculpted kernel.Solid
}

// CarveRecord documents one failure-tolerant subtraction.
type CarveRecord struct {
	Pass     string // "long-arch", "short-arches", "windows", ...
	Target   string // "roof" or "cell"
	Index    int    // cell index, -1 for the roof
	Removals int
	Applied  bool
	Reason   string // why the carve was left out, empty when applied
}

// Manifest is the aggregate a run builds. Stages fill it strictly in order.
type Manifest struct {
	JobID uuid.UUID

	// Inputs.
	Boundary    *kernel.Polyline
	CellProfile *kernel.Polyline
	Path        *kernel.Polyline

	// Measurements.
	VolumeBounds      kernel.Box // site box lifted to BoundsHeight
	CellWidth         float64
	CellDepth         float64
	CellCenter        r3.Vec
	SegmentVolatility float64
	CornerVolatility  float64
	PathDrift         float64

	SegmentNoise noise.Range
	CornerNoise  noise.Range
	DriftNoise   noise.Range

	Stations []PathStation

	LeftRegion   *kernel.Polyline
	RightRegion  *kernel.Polyline
	LeftVectors  []r3.Vec
	RightVectors []r3.Vec
	LeftFlanks   []Flank
	RightFlanks  []Flank

	Cells []MarketCell

	RoofProfiles     []*kernel.Polyline
	RoofMass         kernel.Solid
	SculptedRoofMass kernel.Solid
	LongAxis         *kernel.Polyline
	ShortAxes        []*kernel.Polyline // at grade

	AllMasses []kernel.Solid

	LongAxisRemoval   kernel.Solid
	ShortAxisRemovals []kernel.Solid
	WindowRemovals    []kernel.Solid
	SkylightRemovals  []kernel.Solid

	Carves []CarveRecord
}

// TiersPerSide returns the number of flank tiers on each side.
func (m *Manifest) TiersPerSide() int {
	return len(m.LeftFlanks)
}

// record appends a carve outcome.
func (m *Manifest) record(pass, target string, index, removals int, c kernel.Carve) {
	rec := CarveRecord{Pass: pass, Target: target, Index: index, Removals: removals, Applied: c.Applied}
	if c.Err != nil {
		rec.Reason = c.Err.Error()
	}
	m.Carves = append(m.Carves, rec)
}
