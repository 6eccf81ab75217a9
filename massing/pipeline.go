// SPDX-License-Identifier: MIT
// Package: motley/massing
//
// pipeline.go — the single entry point that runs stages over one manifest.
//
// Design contract:
//   • One orchestrator: SolveStages creates the manifest, resolves options and
//     applies stages in order. Solve runs DefaultStages.
//   • First error wins; the manifest is dropped, never returned half-built.
//   • Determinism: identical curves, options and kernel ⇒ identical manifests
//     (apart from a generated JobID; pin it with WithJobID).

package massing

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/motley/kernel"
)

// Stage fills one part of the manifest from what earlier stages wrote.
// Stages must return a *StageError for fatal failures and must not panic.
type Stage func(m *Manifest, cfg Config) error

// DefaultStages returns the full generation sequence.
func DefaultStages() []Stage {
	return []Stage{
		ParseInputs,
		SamplePath,
		GenerateFlanks,
		GenerateCells,
		GenerateRoof,
		CollectMasses,
		SculptLongArch,
		SculptShortArches,
		SculptWindows,
		SculptSkylights,
		SculptEntrances,
		SculptInteriors,
	}
}

// MeasureStages returns the stages that only read and measure the inputs.
func MeasureStages() []Stage {
	return []Stage{ParseInputs}
}

// Solve runs the full pipeline on the three input curves.
func Solve(boundary, cell, path *kernel.Polyline, opts ...Option) (*Manifest, error) {
	return SolveStages(boundary, cell, path, opts, DefaultStages()...)
}

// SolveStages runs the given stages, in order, on a fresh manifest.
func SolveStages(boundary, cell, path *kernel.Polyline, opts []Option, stages ...Stage) (*Manifest, error) {
	cfg := newConfig(opts...)
	m := &Manifest{
		JobID:       cfg.jobID,
		Boundary:    boundary,
		CellProfile: cell,
		Path:        path,
	}
	log := cfg.log.With(zap.Stringer("job", cfg.jobID))
	cfg.log = log

	for i, st := range stages {
		if st == nil {
			return nil, fmt.Errorf("SolveStages: stage %d: %w", i, ErrNilStage)
		}
		if err := st(m, cfg); err != nil {
			log.Debug("run aborted", zap.Int("stage", i), zap.Error(err))
			return nil, err
		}
	}
	log.Debug("run complete",
		zap.Int("stations", len(m.Stations)),
		zap.Int("cells", len(m.Cells)),
		zap.Int("carves", len(m.Carves)),
	)
	return m, nil
}
