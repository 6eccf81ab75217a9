// SPDX-License-Identifier: MIT
// Package: motley/kernel
//
// errors.go — sentinel errors for the geometry kernel.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Operations attach context with fmt.Errorf("<Op>: ...: %w", ErrX).
//   • Nothing in this package panics on caller-supplied geometry. Option
//     constructors (WithX) panic on meaningless values.

package kernel

import "errors"

var (
	// ErrDegenerateCurve indicates a curve with fewer than two distinct points
	// or zero length where a measurable curve is required.
	ErrDegenerateCurve = errors.New("kernel: degenerate curve")

	// ErrOpenProfile indicates that an operation requiring a closed profile
	// (cap, extrusion, loft, sweep, region Boolean) received an open one.
	ErrOpenProfile = errors.New("kernel: profile is not closed")

	// ErrNonPlanar indicates that a profile deviates from its best-fit plane
	// by more than the kernel tolerance.
	ErrNonPlanar = errors.New("kernel: profile is not planar")

	// ErrSelfIntersecting indicates that two non-adjacent edges of a profile cross.
	ErrSelfIntersecting = errors.New("kernel: profile is self-intersecting")

	// ErrZeroArea indicates a closed profile that encloses no area.
	ErrZeroArea = errors.New("kernel: profile encloses no area")

	// ErrDegenerateFrame indicates that the vectors supplied for a plane are
	// zero or parallel, so no orthonormal frame exists.
	ErrDegenerateFrame = errors.New("kernel: degenerate frame")

	// ErrParallelExtrusion indicates an extrusion direction lying in the
	// profile plane (or a zero-length direction).
	ErrParallelExtrusion = errors.New("kernel: extrusion direction parallel to profile")

	// ErrLoftMismatch indicates loft sections with different vertex counts or
	// non-parallel planes; the reference kernel lofts straight between
	// parallel sections only.
	ErrLoftMismatch = errors.New("kernel: loft sections are incompatible")

	// ErrShortRail indicates a sweep rail with fewer than two distinct points.
	ErrShortRail = errors.New("kernel: sweep rail too short")

	// ErrOpenShell indicates that Join could not close every wall end with a
	// matching cap, or received stray caps.
	ErrOpenShell = errors.New("kernel: pieces do not form a closed shell")

	// ErrEmptyUnion indicates a union over zero solids.
	ErrEmptyUnion = errors.New("kernel: union of no solids")

	// ErrNilSolid indicates a nil solid operand.
	ErrNilSolid = errors.New("kernel: nil solid")

	// ErrNoResult indicates a Boolean operation that produced zero pieces.
	ErrNoResult = errors.New("kernel: boolean operation produced no result")
)
