// Package measure computes the scalar irregularity statistics ("volatility")
// that drive every randomized decision of the massing generator.
//
// What:
//
//   - SegmentVolatility:     population standard deviation of segment lengths.
//   - CornerAngleVolatility: population standard deviation of corner angles,
//     in degrees (every vertex of a closed curve, interior vertices of an
//     open one).
//   - PathDrift:             mean distance from 9 evenly spaced interior
//     samples of a path to the straight line joining its ends.
//   - Profile:               plan width, depth and centre of a cell profile
//     together with both volatilities.
//
// A regular polygon (equal sides, equal angles) measures 0 for both
// volatilities, and both grow with irregularity. A straight path drifts 0.
//
// Complexity: O(n) in the number of curve vertices.
//
// Statistics use gonum.org/v1/gonum/stat; no function mutates its input.
package measure
