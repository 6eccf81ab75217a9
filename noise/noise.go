// SPDX-License-Identifier: MIT

package noise

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Source intervals: the raw volatility that maps onto a full [0,1] range.
const (
	SegmentSource = 10.0
	CornerSource  = 10.0
	DriftSource   = 40.0
)

// DefaultSeed seeds every per-stage stream unless overridden.
const DefaultSeed int64 = 9

// Interval is a closed numeric interval [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// Unit is the interval [0,1].
var Unit = Interval{Lo: 0, Hi: 1}

// Range is a noise envelope [Min, Max]; Min is always 0 and Max lies in [0,1].
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Zero is the envelope that disables variation.
var Zero = Range{}

// Remap maps v linearly from one interval onto another. A degenerate source
// interval maps everything onto to.Lo.
func Remap(v float64, from, to Interval) float64 {
	span := from.Hi - from.Lo
	if span == 0 {
		return to.Lo
	}
	return to.Lo + (v-from.Lo)/span*(to.Hi-to.Lo)
}

// FromVolatility derives the envelope for a volatility measured against a
// source interval [0, sourceMax].
func FromVolatility(volatility, sourceMax float64) Range {
	m := Remap(volatility, Interval{Hi: sourceMax}, Unit)
	switch {
	case m < 0 || math.IsNaN(m):
		m = 0
	case m > 1:
		m = 1
	}
	return Range{Min: 0, Max: m}
}

// NewStream returns a deterministic pseudo-random stream.
func NewStream(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Value returns a value inside [lo, hi] centred on the midpoint and deviating
// from it by at most n.Max of the half-width. Exactly one draw is consumed.
func Value(r *rand.Rand, lo, hi float64, n Range) float64 {
	u := r.Float64()
	return lo + (hi-lo)*(0.5+(2*u-1)*n.Max/2)
}

// RemapAll maps values from their own [min, max] bounds onto to. The input
// slice is not modified.
func RemapAll(values []float64, to Interval) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	from := Interval{Lo: floats.Min(values), Hi: floats.Max(values)}
	for i, x := range values {
		out[i] = Remap(x, from, to)
	}
	return out
}
