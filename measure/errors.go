// SPDX-License-Identifier: MIT
// Package: motley/measure
//
// errors.go — sentinel errors for curve measurement.

package measure

import "errors"

// ErrDegenerateCurve indicates a curve with fewer than two distinct points
// or zero length; no statistic is defined for it.
var ErrDegenerateCurve = errors.New("measure: degenerate curve")
