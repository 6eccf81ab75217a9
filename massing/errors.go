// SPDX-License-Identifier: MIT
// Package: motley/massing
//
// errors.go — sentinel errors and the fatal stage error.
//
// Error policy:
//   • A run either returns a complete manifest or a *StageError; there is no
//     partial manifest.
//   • StageError names the failing stage and the offending entity and wraps
//     the cause, so errors.Is reaches both massing and kernel sentinels.
//   • Failed Boolean subtractions are not errors: they are recorded as
//     skipped carves in Manifest.Carves.

package massing

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCurve indicates a missing input curve.
	ErrNilCurve = errors.New("massing: nil input curve")

	// ErrOpenBoundary indicates a site boundary that is not a closed curve.
	ErrOpenBoundary = errors.New("massing: boundary is not closed")

	// ErrZeroCellWidth indicates a cell profile without plan width, so no
	// station spacing can be derived.
	ErrZeroCellWidth = errors.New("massing: cell profile has zero width")

	// ErrTooFewStations indicates a path too short for the cell width to
	// produce the stations a roof needs.
	ErrTooFewStations = errors.New("massing: too few path stations")

	// ErrNoDivider indicates that the extended path does not cut the enlarged
	// boundary into two regions.
	ErrNoDivider = errors.New("massing: path does not divide the boundary")

	// ErrNilStage indicates a nil stage passed to SolveStages.
	ErrNilStage = errors.New("massing: nil stage")
)

// StageError reports a fatal failure of one pipeline stage.
type StageError struct {
	Stage  string // stage name, e.g. "cells"
	Entity string // offending entity: "boundary", "cell", "path", "flank", "roof", ...
	Index  int    // entity index, or -1 when not applicable
	Err    error
}

// Error implements error.
func (e *StageError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("massing: stage %s: %s %d: %v", e.Stage, e.Entity, e.Index, e.Err)
	}
	return fmt.Sprintf("massing: stage %s: %s: %v", e.Stage, e.Entity, e.Err)
}

// Unwrap returns the cause.
func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage, entity string, index int, err error) error {
	return &StageError{Stage: stage, Entity: entity, Index: index, Err: err}
}
